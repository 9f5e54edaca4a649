package offer

import (
	"gorm.io/gorm"
)

// OfferRepository defines the interface for offer data operations.
type OfferRepository interface {
	List(filters ListFilters, page, limit int) ([]Offer, int64, error)
	GetByID(id uint) (*Offer, error)
	Create(o *Offer) error
	Update(o *Offer) error
	Delete(id uint) error
}

type offerRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) List(filters ListFilters, page, limit int) ([]Offer, int64, error) {
	var offers []Offer
	var total int64

	query := r.db.Model(&Offer{})

	if filters.Sport != "" {
		query = query.Where("sport = ?", filters.Sport)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filters.Location+"%")
	}
	if filters.City != "" {
		query = query.Where("city ILIKE ?", "%"+filters.City+"%")
	}
	if filters.Level != "" {
		query = query.Where("level = ?", filters.Level)
	}
	if filters.Position != "" {
		query = query.Where("position ILIKE ?", "%"+filters.Position+"%")
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.IsUrgent != nil {
		query = query.Where("is_urgent = ?", *filters.IsUrgent)
	}
	if filters.ClubID != 0 {
		query = query.Where("club_id = ?", filters.ClubID)
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Preload("Club").Offset(offset).Limit(limit).Order("created_at desc").Find(&offers).Error; err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}

func (r *offerRepository) GetByID(id uint) (*Offer, error) {
	var o Offer
	if err := r.db.Preload("Club").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *offerRepository) Create(o *Offer) error {
	return r.db.Create(o).Error
}

func (r *offerRepository) Update(o *Offer) error {
	return r.db.Save(o).Error
}

// Delete removes the offer and its applications in one transaction, so no
// application row can outlive its offer.
func (r *offerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"UPDATE applications SET deleted_at = NOW() WHERE offer_id = ? AND deleted_at IS NULL", id,
		).Error; err != nil {
			return err
		}
		return tx.Delete(&Offer{}, id).Error
	})
}

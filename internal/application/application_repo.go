package application

import (
	"errors"
	"fmt"

	"github.com/enzogallo/sportsmatch-api/internal/offer"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOfferNotActive is returned when applying to an offer that is paused,
// closed or filled.
var ErrOfferNotActive = errors.New("offer is not accepting applications")

// ErrOfferFull is returned when the offer already holds max_applications
// pending or accepted applications.
var ErrOfferFull = errors.New("offer has reached its application limit")

// ApplicationRepository defines the interface for application data
// operations.
type ApplicationRepository interface {
	CreateAndIncrement(a *Application) error
	WithdrawAndDecrement(a *Application) error
	GetByID(id uint) (*Application, error)
	ListByPlayer(playerID uint) ([]Application, error)
	ListByOffer(offerID uint) ([]Application, error)
	UpdateStatus(id uint, status ApplicationStatus) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// CreateAndIncrement inserts the application and bumps the offer's counter
// in one transaction. The offer row is locked first so the capacity check
// and the insert see the same count.
func (r *applicationRepository) CreateAndIncrement(a *Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var o offer.Offer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&o, a.OfferID).Error; err != nil {
			return err
		}
		if o.Status != offer.StatusActive {
			return ErrOfferNotActive
		}
		if o.MaxApplications != nil && o.CurrentApplications >= *o.MaxApplications {
			return ErrOfferFull
		}
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		return tx.Model(&offer.Offer{}).Where("id = ?", a.OfferID).
			Update("current_applications", gorm.Expr("current_applications + 1")).Error
	})
}

// WithdrawAndDecrement marks the application withdrawn and releases its slot
// in the same transaction. The counter never goes below zero.
func (r *applicationRepository) WithdrawAndDecrement(a *Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Application{}).
			Where("id = ? AND status = ?", a.ID, StatusPending).
			Update("status", StatusWithdrawn)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("application %d is no longer pending", a.ID)
		}
		return tx.Model(&offer.Offer{}).
			Where("id = ? AND current_applications > 0", a.OfferID).
			Update("current_applications", gorm.Expr("current_applications - 1")).Error
	})
}

func (r *applicationRepository) GetByID(id uint) (*Application, error) {
	var a Application
	if err := r.db.Preload("Offer").Preload("Offer.Club").First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepository) ListByPlayer(playerID uint) ([]Application, error) {
	var apps []Application
	err := r.db.Preload("Offer").Preload("Offer.Club").
		Where("player_id = ?", playerID).
		Order("created_at desc").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) ListByOffer(offerID uint) ([]Application, error) {
	var apps []Application
	err := r.db.Preload("Player").
		Where("offer_id = ?", offerID).
		Order("created_at asc").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) UpdateStatus(id uint, status ApplicationStatus) error {
	return r.db.Model(&Application{}).Where("id = ?", id).Update("status", status).Error
}

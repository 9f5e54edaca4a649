package favorite

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines the interface for favorite data operations.
type FavoriteRepository interface {
	Add(f *Favorite) error
	Remove(userID uint, itemType ItemType, itemID uint) (int64, error)
	Exists(userID uint, itemType ItemType, itemID uint) (bool, error)
	List(userID uint, itemType ItemType) ([]Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add is idempotent; a duplicate save hits the unique index and is dropped.
func (r *favoriteRepository) Add(f *Favorite) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *favoriteRepository) Remove(userID uint, itemType ItemType, itemID uint) (int64, error) {
	res := r.db.Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Delete(&Favorite{})
	return res.RowsAffected, res.Error
}

func (r *favoriteRepository) Exists(userID uint, itemType ItemType, itemID uint) (bool, error) {
	var count int64
	err := r.db.Model(&Favorite{}).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) List(userID uint, itemType ItemType) ([]Favorite, error) {
	var favs []Favorite
	query := r.db.Where("user_id = ?", userID)
	if itemType != "" {
		query = query.Where("item_type = ?", itemType)
	}
	err := query.Order("created_at desc").Find(&favs).Error
	return favs, err
}

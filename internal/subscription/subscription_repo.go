package subscription

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscriptionRepository defines the interface for subscription data
// operations.
type SubscriptionRepository interface {
	GetByUser(userID uint) (*Subscription, error)
	Upsert(s *Subscription) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetByUser(userID uint) (*Subscription, error) {
	var s Subscription
	if err := r.db.Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert keeps the one-row-per-user invariant via the unique index.
func (r *subscriptionRepository) Upsert(s *Subscription) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"plan", "renews_at", "canceled_at", "updated_at"}),
	}).Create(s).Error
}

package subscription

import (
	"time"

	"github.com/enzogallo/sportsmatch-api/internal/user"
	"gorm.io/gorm"
)

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPro     Plan = "pro"
	PlanElite   Plan = "elite"
	PlanClubPro Plan = "club_pro"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPro, PlanElite, PlanClubPro:
		return true
	}
	return false
}

// Subscription tracks one user's current plan. Every user has at most one
// row; absent row means the free plan.
type Subscription struct {
	gorm.Model
	UserID     uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	User       user.User  `gorm:"foreignKey:UserID" json:"-"`
	Plan       Plan       `gorm:"not null;default:free" json:"plan"`
	RenewsAt   *time.Time `json:"renews_at,omitempty"`
	CanceledAt *time.Time `json:"canceled_at,omitempty"`
}

type ChangePlanRequest struct {
	Plan Plan `json:"plan" binding:"required"`
}

type SubscriptionResponse struct {
	Plan      Plan       `json:"plan"`
	RenewsAt  *time.Time `json:"renews_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

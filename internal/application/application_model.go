package application

import (
	"time"

	"github.com/enzogallo/sportsmatch-api/internal/offer"
	"github.com/enzogallo/sportsmatch-api/internal/user"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
	StatusWithdrawn ApplicationStatus = "withdrawn"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Pending is the only non-terminal status.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:   {StatusAccepted, StatusRejected, StatusWithdrawn},
	StatusAccepted:  {},
	StatusRejected:  {},
	StatusWithdrawn: {},
}

// CanTransition reports whether an application may move between two statuses.
func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range applicationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Application links a player to an offer. The composite unique index makes a
// second application to the same offer a constraint violation rather than a
// race.
type Application struct {
	gorm.Model
	OfferID  uint        `gorm:"uniqueIndex:idx_offer_player;not null" json:"offer_id"`
	Offer    offer.Offer `gorm:"foreignKey:OfferID" json:"-"`
	PlayerID uint        `gorm:"uniqueIndex:idx_offer_player;index;not null" json:"player_id"`
	Player   user.User   `gorm:"foreignKey:PlayerID" json:"-"`

	Status  ApplicationStatus `gorm:"index;not null;default:pending" json:"status"`
	Message string            `gorm:"type:text" json:"message,omitempty"`
}

type ApplyRequest struct {
	OfferID uint   `json:"offer_id" binding:"required"`
	Message string `json:"message,omitempty"`
}

type UpdateStatusRequest struct {
	Status ApplicationStatus `json:"status" binding:"required"`
}

// OfferSummary is the offer projection embedded in a player's application
// list.
type OfferSummary struct {
	ID       uint              `json:"id"`
	Title    string            `json:"title"`
	Sport    user.Sport        `json:"sport"`
	Type     offer.OfferType   `json:"type"`
	Status   offer.OfferStatus `json:"status"`
	Location string            `json:"location,omitempty"`
	ClubID   uint              `json:"club_id"`
	ClubName string            `json:"club_name,omitempty"`
}

// PlayerSummary is what a club sees about each applicant. No email or
// contact details.
type PlayerSummary struct {
	ID              uint               `json:"id"`
	Name            string             `json:"name"`
	Age             *int               `json:"age,omitempty"`
	City            string             `json:"city,omitempty"`
	Position        string             `json:"position,omitempty"`
	Level           string             `json:"level,omitempty"`
	ProfileImageURL string             `json:"profile_image_url,omitempty"`
	Status          user.PlayerStatus  `json:"status,omitempty"`
	PerformanceCV   user.PerformanceCV `json:"performance_cv,omitempty"`
}

// ApplicationResponse is returned to the applying player.
type ApplicationResponse struct {
	ID        uint              `json:"id"`
	OfferID   uint              `json:"offer_id"`
	PlayerID  uint              `json:"player_id"`
	Status    ApplicationStatus `json:"status"`
	Message   string            `json:"message,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Offer     *OfferSummary     `json:"offer,omitempty"`
}

// OfferApplicationResponse is one row of a club's applicant list.
type OfferApplicationResponse struct {
	ID        uint              `json:"id"`
	OfferID   uint              `json:"offer_id"`
	Status    ApplicationStatus `json:"status"`
	Message   string            `json:"message,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Player    PlayerSummary     `json:"player"`
}

func filterApplicationRecord(a *Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:        a.ID,
		OfferID:   a.OfferID,
		PlayerID:  a.PlayerID,
		Status:    a.Status,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Offer.ID != 0 {
		resp.Offer = &OfferSummary{
			ID:       a.Offer.ID,
			Title:    a.Offer.Title,
			Sport:    a.Offer.Sport,
			Type:     a.Offer.Type,
			Status:   a.Offer.Status,
			Location: a.Offer.Location,
			ClubID:   a.Offer.ClubID,
			ClubName: a.Offer.Club.ClubName,
		}
	}
	return resp
}

func filterOfferApplicationRecord(a *Application) OfferApplicationResponse {
	return OfferApplicationResponse{
		ID:        a.ID,
		OfferID:   a.OfferID,
		Status:    a.Status,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Player: PlayerSummary{
			ID:              a.Player.ID,
			Name:            a.Player.Name,
			Age:             a.Player.Age,
			City:            a.Player.City,
			Position:        a.Player.Position,
			Level:           a.Player.Level,
			ProfileImageURL: a.Player.ProfileImageURL,
			Status:          a.Player.Status,
			PerformanceCV:   a.Player.PerformanceCV,
		},
	}
}

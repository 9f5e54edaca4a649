package offer

import (
	"time"

	"github.com/enzogallo/sportsmatch-api/internal/user"
	"gorm.io/gorm"
)

type OfferType string

const (
	TypeRecruitment OfferType = "recruitment"
	TypeTournament  OfferType = "tournament"
	TypeTraining    OfferType = "training"
	TypeReplacement OfferType = "replacement"
)

func (t OfferType) Valid() bool {
	switch t {
	case TypeRecruitment, TypeTournament, TypeTraining, TypeReplacement:
		return true
	}
	return false
}

type OfferStatus string

const (
	StatusActive OfferStatus = "active"
	StatusPaused OfferStatus = "paused"
	StatusClosed OfferStatus = "closed"
	StatusFilled OfferStatus = "filled"
)

func (s OfferStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusClosed, StatusFilled:
		return true
	}
	return false
}

// offerTransitions enumerates the allowed status moves. Closed and filled
// are terminal.
var offerTransitions = map[OfferStatus][]OfferStatus{
	StatusActive: {StatusPaused, StatusClosed, StatusFilled},
	StatusPaused: {StatusActive, StatusClosed},
	StatusClosed: {},
	StatusFilled: {},
}

// CanTransition reports whether an offer may move from one status to another.
func CanTransition(from, to OfferStatus) bool {
	for _, next := range offerTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Offer is a club's published opening. CurrentApplications is denormalized
// and only ever written inside the same transaction as the application row
// it counts.
type Offer struct {
	gorm.Model
	ClubID uint      `gorm:"index;not null" json:"club_id"`
	Club   user.User `gorm:"foreignKey:ClubID" json:"-"`

	Title       string      `gorm:"not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Sport       user.Sport  `gorm:"index;not null" json:"sport"`
	Position    string      `json:"position,omitempty"`
	Level       string      `json:"level,omitempty"`
	Location    string      `json:"location,omitempty"`
	City        string      `gorm:"index" json:"city,omitempty"`
	Type        OfferType   `gorm:"index;not null" json:"type"`
	Status      OfferStatus `gorm:"index;not null;default:active" json:"status"`
	Salary      string      `json:"salary,omitempty"`

	MinAge   *int `json:"min_age,omitempty"`
	MaxAge   *int `json:"max_age,omitempty"`
	IsUrgent bool `json:"is_urgent"`

	MaxApplications     *int `json:"max_applications,omitempty"`
	CurrentApplications int  `gorm:"not null;default:0" json:"current_applications"`

	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ClubSummary is the club projection embedded in offer list items.
type ClubSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ClubName    string `json:"club_name,omitempty"`
	ClubLogoURL string `json:"club_logo_url,omitempty"`
	City        string `json:"city,omitempty"`
	Location    string `json:"location,omitempty"`
}

// ClubContact extends the summary with contact details, shown on the offer
// detail only.
type ClubContact struct {
	ClubSummary
	ClubDescription string `json:"club_description,omitempty"`
	ContactEmail    string `json:"contact_email,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty"`
}

// OfferResponse is an offer list item. FilterOfferRecord is the only way an
// offer row reaches the wire outside the detail endpoint.
type OfferResponse struct {
	ID                  uint        `json:"id"`
	ClubID              uint        `json:"club_id"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	Sport               user.Sport  `json:"sport"`
	Position            string      `json:"position,omitempty"`
	Level               string      `json:"level,omitempty"`
	Location            string      `json:"location,omitempty"`
	City                string      `json:"city,omitempty"`
	Type                OfferType   `json:"type"`
	Status              OfferStatus `json:"status"`
	Salary              string      `json:"salary,omitempty"`
	MinAge              *int        `json:"min_age,omitempty"`
	MaxAge              *int        `json:"max_age,omitempty"`
	IsUrgent            bool        `json:"is_urgent"`
	MaxApplications     *int        `json:"max_applications,omitempty"`
	CurrentApplications int         `json:"current_applications"`
	ExpiresAt           *time.Time  `json:"expires_at,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
	Club                ClubSummary `json:"club"`
}

// OfferDetailResponse is the single-offer projection with club contact.
type OfferDetailResponse struct {
	OfferResponse
	Club ClubContact `json:"club"`
}

type CreateOfferRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description" binding:"required"`
	Sport           user.Sport `json:"sport" binding:"required"`
	Position        string     `json:"position,omitempty"`
	Level           string     `json:"level,omitempty"`
	Location        string     `json:"location" binding:"required"`
	City            string     `json:"city" binding:"required"`
	Type            OfferType  `json:"type" binding:"required"`
	Salary          string     `json:"salary,omitempty"`
	MinAge          *int       `json:"min_age,omitempty" binding:"omitempty,gte=0,lte=120"`
	MaxAge          *int       `json:"max_age,omitempty" binding:"omitempty,gte=0,lte=120"`
	IsUrgent        bool       `json:"is_urgent,omitempty"`
	MaxApplications *int       `json:"max_applications,omitempty" binding:"omitempty,gte=1"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

// UpdateOfferRequest carries partial updates; nil fields are left untouched.
type UpdateOfferRequest struct {
	Title           *string      `json:"title,omitempty"`
	Description     *string      `json:"description,omitempty"`
	Sport           *user.Sport  `json:"sport,omitempty"`
	Position        *string      `json:"position,omitempty"`
	Level           *string      `json:"level,omitempty"`
	Location        *string      `json:"location,omitempty"`
	City            *string      `json:"city,omitempty"`
	Type            *OfferType   `json:"type,omitempty"`
	Status          *OfferStatus `json:"status,omitempty"`
	Salary          *string      `json:"salary,omitempty"`
	MinAge          *int         `json:"min_age,omitempty" binding:"omitempty,gte=0,lte=120"`
	MaxAge          *int         `json:"max_age,omitempty" binding:"omitempty,gte=0,lte=120"`
	IsUrgent        *bool        `json:"is_urgent,omitempty"`
	MaxApplications *int         `json:"max_applications,omitempty" binding:"omitempty,gte=1"`
	ExpiresAt       *time.Time   `json:"expires_at,omitempty"`
}

// ListFilters narrows the offer feed; all predicates are ANDed. Status
// defaults to active in the controller.
type ListFilters struct {
	Sport    string
	Type     string
	Location string
	City     string
	Level    string
	Position string
	Status   string
	IsUrgent *bool
	ClubID   uint
}

func FilterOfferRecord(o *Offer) OfferResponse {
	return OfferResponse{
		ID:                  o.ID,
		ClubID:              o.ClubID,
		Title:               o.Title,
		Description:         o.Description,
		Sport:               o.Sport,
		Position:            o.Position,
		Level:               o.Level,
		Location:            o.Location,
		City:                o.City,
		Type:                o.Type,
		Status:              o.Status,
		Salary:              o.Salary,
		MinAge:              o.MinAge,
		MaxAge:              o.MaxAge,
		IsUrgent:            o.IsUrgent,
		MaxApplications:     o.MaxApplications,
		CurrentApplications: o.CurrentApplications,
		ExpiresAt:           o.ExpiresAt,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
		Club: ClubSummary{
			ID:          o.Club.ID,
			Name:        o.Club.Name,
			ClubName:    o.Club.ClubName,
			ClubLogoURL: o.Club.ClubLogoURL,
			City:        o.Club.City,
			Location:    o.Club.Location,
		},
	}
}

func filterOfferDetail(o *Offer) OfferDetailResponse {
	base := FilterOfferRecord(o)
	return OfferDetailResponse{
		OfferResponse: base,
		Club: ClubContact{
			ClubSummary:     base.Club,
			ClubDescription: o.Club.ClubDescription,
			ContactEmail:    o.Club.ContactEmail,
			ContactPhone:    o.Club.ContactPhone,
		},
	}
}

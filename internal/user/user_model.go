package user

import (
	"time"

	"github.com/enzogallo/sportsmatch-api/internal/models"
	"gorm.io/gorm"
)

type Role string

const (
	RolePlayer Role = "player"
	RoleClub   Role = "club"
)

func (r Role) Valid() bool {
	return r == RolePlayer || r == RoleClub
}

type PlayerStatus string

const (
	StatusAvailable PlayerStatus = "available"
	StatusBusy      PlayerStatus = "busy"
	StatusLooking   PlayerStatus = "looking"
)

// User merges player and club identities into one record; role-conditional
// fields stay empty for the other role. Email is globally unique, role is
// immutable after creation and the password hash is write-only.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Role     Role   `gorm:"index;not null" json:"role"`

	// Player fields
	Age             *int               `json:"age,omitempty"`
	City            string             `json:"city,omitempty"`
	Sports          models.StringSlice `gorm:"type:jsonb" json:"sports,omitempty"`
	Position        string             `json:"position,omitempty"`
	Level           string             `json:"level,omitempty"`
	Bio             string             `gorm:"type:text" json:"bio,omitempty"`
	ProfileImageURL string             `json:"profile_image_url,omitempty"`
	Status          PlayerStatus       `json:"status,omitempty"`
	PerformanceCV   PerformanceCV      `gorm:"type:jsonb" json:"performance_cv,omitempty"`

	// Club fields
	ClubName        string             `json:"club_name,omitempty"`
	ClubLogoURL     string             `json:"club_logo_url,omitempty"`
	ClubDescription string             `gorm:"type:text" json:"club_description,omitempty"`
	ContactEmail    string             `json:"contact_email,omitempty"`
	ContactPhone    string             `json:"contact_phone,omitempty"`
	SportsOffered   models.StringSlice `gorm:"type:jsonb" json:"sports_offered,omitempty"`
	Location        string             `json:"location,omitempty"`
}

// UserResponse is the sanitized projection of a user: never includes the
// password hash.
type UserResponse struct {
	ID              uint          `json:"id"`
	Email           string        `json:"email"`
	Name            string        `json:"name"`
	Role            Role          `json:"role"`
	Age             *int          `json:"age,omitempty"`
	City            string        `json:"city,omitempty"`
	Sports          []string      `json:"sports,omitempty"`
	Position        string        `json:"position,omitempty"`
	Level           string        `json:"level,omitempty"`
	Bio             string        `json:"bio,omitempty"`
	ProfileImageURL string        `json:"profile_image_url,omitempty"`
	Status          PlayerStatus  `json:"status,omitempty"`
	PerformanceCV   PerformanceCV `json:"performance_cv,omitempty"`
	ClubName        string        `json:"club_name,omitempty"`
	ClubLogoURL     string        `json:"club_logo_url,omitempty"`
	ClubDescription string        `json:"club_description,omitempty"`
	ContactEmail    string        `json:"contact_email,omitempty"`
	ContactPhone    string        `json:"contact_phone,omitempty"`
	SportsOffered   []string      `json:"sports_offered,omitempty"`
	Location        string        `json:"location,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// PublicUserResponse is the narrower projection used by user search: no
// email, no contact details, no performance CV.
type PublicUserResponse struct {
	ID              uint         `json:"id"`
	Name            string       `json:"name"`
	Role            Role         `json:"role"`
	Age             *int         `json:"age,omitempty"`
	City            string       `json:"city,omitempty"`
	Sports          []string     `json:"sports,omitempty"`
	Position        string       `json:"position,omitempty"`
	Level           string       `json:"level,omitempty"`
	Bio             string       `json:"bio,omitempty"`
	ProfileImageURL string       `json:"profile_image_url,omitempty"`
	Status          PlayerStatus `json:"status,omitempty"`
	ClubName        string       `json:"club_name,omitempty"`
	ClubLogoURL     string       `json:"club_logo_url,omitempty"`
	Location        string       `json:"location,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type UpdateProfileRequest struct {
	Name            *string       `json:"name,omitempty"`
	Age             *int          `json:"age,omitempty" binding:"omitempty,gte=0,lte=120"`
	City            *string       `json:"city,omitempty"`
	Sports          []string      `json:"sports,omitempty"`
	Position        *string       `json:"position,omitempty"`
	Level           *string       `json:"level,omitempty"`
	Bio             *string       `json:"bio,omitempty"`
	ProfileImageURL *string       `json:"profile_image_url,omitempty"`
	Status          *PlayerStatus `json:"status,omitempty"`
	ClubName        *string       `json:"club_name,omitempty"`
	ClubLogoURL     *string       `json:"club_logo_url,omitempty"`
	ClubDescription *string       `json:"club_description,omitempty"`
	ContactEmail    *string       `json:"contact_email,omitempty" binding:"omitempty,email"`
	ContactPhone    *string       `json:"contact_phone,omitempty"`
	SportsOffered   []string      `json:"sports_offered,omitempty"`
	Location        *string       `json:"location,omitempty"`
}

type UpdatePerformanceRequest struct {
	Sport       Sport               `json:"sport" binding:"required"`
	Performance *PerformanceSummary `json:"performance" binding:"required"`
}

// SearchFilters narrows user search; all predicates are ANDed.
type SearchFilters struct {
	Role     string
	Sport    string
	City     string
	Level    string
	Position string
}

func FilterUserRecord(u *User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role,
		Age:             u.Age,
		City:            u.City,
		Sports:          u.Sports,
		Position:        u.Position,
		Level:           u.Level,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		Status:          u.Status,
		PerformanceCV:   u.PerformanceCV,
		ClubName:        u.ClubName,
		ClubLogoURL:     u.ClubLogoURL,
		ClubDescription: u.ClubDescription,
		ContactEmail:    u.ContactEmail,
		ContactPhone:    u.ContactPhone,
		SportsOffered:   u.SportsOffered,
		Location:        u.Location,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func FilterPublicUserRecord(u *User) PublicUserResponse {
	return PublicUserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Role:            u.Role,
		Age:             u.Age,
		City:            u.City,
		Sports:          u.Sports,
		Position:        u.Position,
		Level:           u.Level,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		Status:          u.Status,
		ClubName:        u.ClubName,
		ClubLogoURL:     u.ClubLogoURL,
		Location:        u.Location,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

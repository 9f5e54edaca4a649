package auth

import "github.com/enzogallo/sportsmatch-api/internal/user"

type RegisterRequest struct {
	Email    string    `json:"email" binding:"required,email"`
	Password string    `json:"password" binding:"required,min=6"`
	Name     string    `json:"name" binding:"required"`
	Role     user.Role `json:"role" binding:"required"`

	// Optional profile fields accepted at signup.
	Age      *int     `json:"age,omitempty" binding:"omitempty,gte=0,lte=120"`
	City     string   `json:"city,omitempty"`
	Sports   []string `json:"sports,omitempty"`
	Position string   `json:"position,omitempty"`
	Level    string   `json:"level,omitempty"`
	ClubName string   `json:"club_name,omitempty"`
	Location string   `json:"location,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the payload returned by register and login.
type AuthResponse struct {
	User  user.UserResponse `json:"user"`
	Token string            `json:"token"`
}

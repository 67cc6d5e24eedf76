package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Default profile images applied at signup when the client supplies none.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"` // Ensure email is unique across all users
	Password       string    `json:"-" gorm:"size:255;not null"`                 // Store hashed password, ignore for JSON serialization
	ImageURL       string    `json:"image_url"`
	HeaderImageURL string    `json:"header_image_url"`
	Bio            string    `json:"bio,omitempty"`
	Location       string    `json:"location,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// String renders the diagnostic form used in logs and test output.
func (u *User) String() string {
	return fmt.Sprintf("<User #%d: %s, %s>", u.ID, u.Username, u.Email)
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	ImageURL       string `json:"image_url,omitempty"`
	HeaderImageURL string `json:"header_image_url,omitempty"`
	Bio            string `json:"bio,omitempty" validate:"omitempty,max=280"`
	Location       string `json:"location,omitempty" validate:"omitempty,max=100"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

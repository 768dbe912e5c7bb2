package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	Password     string    `json:"-"`
	Role         string    `json:"role"` // "user", "donor", "farmer", "ngo", "admin"
	Organization string    `json:"organization,omitempty"`
	Location     string    `json:"location,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	IsVerified   bool      `json:"is_verified"`

	Timestamp
}

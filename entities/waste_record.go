package entities

import (
	"time"

	"github.com/google/uuid"
)

type WasteRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	Date     time.Time `gorm:"index" json:"date"`
	FoodType string    `gorm:"index" json:"food_type"` // "Fruits & Vegetables", "Dairy", "Meat", "Grains", "Prepared Food", "Other"
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
	Reason   string    `json:"reason"` // "Expired", "Spoiled", "Over-prepared", "Leftovers", "Other"
	Cost     float64   `json:"cost"`
	Location string    `json:"location"`
	Notes    string    `json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

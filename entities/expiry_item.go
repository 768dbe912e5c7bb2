package entities

import (
	"time"

	"github.com/google/uuid"
)

type ExpiryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"index" json:"user_id"`
	ItemName     string    `json:"item_name"`
	Category     string    `json:"category"` // "Fruits", "Vegetables", "Dairy", "Meat", "Bakery", "Pantry Items", "Frozen", "Beverages"
	PurchaseDate time.Time `json:"purchase_date"`
	ExpiryDate   time.Time `gorm:"index" json:"expiry_date"`
	Quantity     string    `json:"quantity"` // free-text magnitude plus unit, e.g. "2 liters"
	Location     string    `json:"location"` // "Refrigerator", "Freezer", "Pantry", "Counter", "Cupboard"
	// Status is a snapshot written at create/update time. The live value is
	// always recomputed from ExpiryDate before it reaches a client.
	Status           string `json:"status"` // "fresh", "expiring-soon", "expired"
	NotificationSent bool   `gorm:"index" json:"notification_sent"`
	Notes            string `json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

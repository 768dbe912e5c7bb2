package entities

import (
	"time"

	"github.com/google/uuid"
)

// Donation carries the fields shared by both donation variants. Exactly one
// of FoodDetail/MoneyDetail exists per row, selected by Type.
type Donation struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID     uuid.UUID  `gorm:"index" json:"donor_id"`
	Type        string     `gorm:"index" json:"type"`   // "food" or "money"
	Status      string     `gorm:"index" json:"status"` // "Pending", "Approved", "Collected", "Delivered", "Cancelled"
	RecipientID *uuid.UUID `json:"recipient_id,omitempty"`
	Notes       string     `json:"notes,omitempty"`

	Donor       *User                `gorm:"foreignKey:DonorID"`
	Recipient   *User                `gorm:"foreignKey:RecipientID"`
	FoodDetail  *FoodDonationDetail  `gorm:"foreignKey:DonationID"`
	MoneyDetail *MoneyDonationDetail `gorm:"foreignKey:DonationID"`
	Timestamp
}

type FoodDonationDetail struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID     uuid.UUID `gorm:"uniqueIndex" json:"donation_id"`
	FoodType       string    `json:"food_type"` // "prepared-food", "fresh-produce", "baked-goods", "dairy", "meat", "pantry-items", "frozen", "beverages", "other"
	Quantity       string    `json:"quantity"`
	Unit           string    `json:"unit"`
	ExpiryDate     time.Time `json:"expiry_date"`
	PickupLocation string    `json:"pickup_location"`
	Description    string    `json:"description,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`

	Timestamp
}

type MoneyDonationDetail struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID    uuid.UUID `gorm:"uniqueIndex" json:"donation_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id,omitempty"`

	Timestamp
}

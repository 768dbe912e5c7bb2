package entities

import (
	"github.com/google/uuid"
)

type Farmer struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	FarmerCode        string    `gorm:"uniqueIndex" json:"farmer_code"`
	FarmName          string    `json:"farm_name"`
	FarmSize          float64   `json:"farm_size"` // acres
	Location          string    `json:"location"`
	PrimaryCrops      string    `json:"primary_crops"` // comma separated
	FarmingExperience string    `json:"farming_experience"`
	FarmingType       string    `json:"farming_type"` // "conventional", "organic", "sustainable", "permaculture", "hydroponic"
	Certifications    string    `json:"certifications,omitempty"`
	ContactNumber     string    `json:"contact_number,omitempty"`
	FarmAddress       string    `json:"farm_address,omitempty"`
	IsVerified        bool      `json:"is_verified"`

	User         *User          `gorm:"foreignKey:UserID"`
	YieldHistory []*YieldRecord `gorm:"foreignKey:FarmerID"`
	Timestamp
}

type YieldRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FarmerID uuid.UUID `gorm:"index" json:"farmer_id"`
	Crop     string    `json:"crop"`
	Year     int       `json:"year"`
	Yield    float64   `json:"yield"` // bu/ac
	Area     float64   `json:"area"`  // acres
	Quality  string    `json:"quality"`
	Revenue  float64   `json:"revenue"`

	Farmer *Farmer `gorm:"foreignKey:FarmerID"`
	Timestamp
}

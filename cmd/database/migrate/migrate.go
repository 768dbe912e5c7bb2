package migration

import (
	"fmt"
	"log"

	"usana-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []struct {
		name  string
		model interface{}
	}{
		{"user", &entities.User{}},
		{"waste record", &entities.WasteRecord{}},
		{"expiry item", &entities.ExpiryItem{}},
		{"donation", &entities.Donation{}},
		{"food donation detail", &entities.FoodDonationDetail{}},
		{"money donation detail", &entities.MoneyDonationDetail{}},
		{"farmer", &entities.Farmer{}},
		{"yield record", &entities.YieldRecord{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Fatalf("Error migrating %s database: %v", m.name, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}

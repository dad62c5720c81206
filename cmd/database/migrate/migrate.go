package migration

import (
	"ecotrack/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.StoreRecord{}); err != nil {
		log.Errorf("Error migrating store record database: %v", err)
		return err
	}

	log.Info("Database migration complete")
	return nil
}

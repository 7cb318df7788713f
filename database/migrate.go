package database

import (
	"flohmarkt_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate applies the schema and the indexes AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.PriceNegotiation{},
		&models.Message{},
	); err != nil {
		return err
	}

	// One pending offer per (product, buyer). The partial index enforces it
	// at the database level even under concurrent submissions.
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_negotiations_pending_unique
		ON price_negotiations (product_id, buyer_id)
		WHERE status = 'pending'
	`).Error
}

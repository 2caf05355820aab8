package migrations

import (
	"linkdeck/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// MigrateSocialTables creates the linked-account tables.
func MigrateSocialTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.InstagramAccountModel{},
		&models.YoutubeChannelModel{},
	)
}

package migration

import (
	"fmt"

	"gorm.io/gorm"

	"linkdeck/internal/infrastructure/persistence/models"
	"linkdeck/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates the schema directly from the model structs.
// Used in development where versioned scripts would slow iteration down.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm-automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm automigrate", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every persistence model covered by automigration.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.InstagramAccountModel{},
		&models.YoutubeChannelModel{},
	}
}

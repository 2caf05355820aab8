package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"linkdeck/internal/shared/logger"
)

// Generator creates timestamped up/down SQL migration file pairs for the
// golang-migrate script directory.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration writes an empty up/down pair named after the current
// timestamp.
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	stamp := time.Now().Format("20060102150405")
	upPath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.up.sql", stamp, name))
	downPath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.down.sql", stamp, name))

	if err := os.WriteFile(upPath, []byte(migrationTemplate("Migration", name)), 0644); err != nil {
		return fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(downPath, []byte(migrationTemplate("Rollback Migration", name)), 0644); err != nil {
		return fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created",
		"up_file", upPath,
		"down_file", downPath)
	return nil
}

func migrationTemplate(kind, name string) string {
	return fmt.Sprintf(`-- %s: %s
-- Created: %s

-- Add your SQL statements here

`, kind, name, time.Now().Format("2006-01-02 15:04:05"))
}

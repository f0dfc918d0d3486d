package di

import (
	"fmt"

	"github.com/aristath/hunter/internal/config"
	"github.com/aristath/hunter/internal/database"
	"github.com/rs/zerolog"
)

// InitializeDatabases opens the report archive and applies its schema
func InitializeDatabases(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	archiveDB, err := database.New(database.Config{
		Path:    cfg.ArchivePath(),
		Profile: database.ProfileStandard,
		Name:    database.NameReports,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize reports database: %w", err)
	}

	if err := archiveDB.Migrate(); err != nil {
		archiveDB.Close()
		return nil, fmt.Errorf("failed to migrate reports database: %w", err)
	}

	log.Info().Str("path", archiveDB.Path()).Msg("Reports database ready")

	return &Container{ArchiveDB: archiveDB}, nil
}

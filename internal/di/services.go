package di

import (
	"github.com/aristath/hunter/internal/config"
	"github.com/aristath/hunter/internal/modules/hunter"
	hunterhandlers "github.com/aristath/hunter/internal/modules/hunter/handlers"
	"github.com/aristath/hunter/internal/modules/reports"
	"github.com/rs/zerolog"
)

// InitializeServices creates the repository, the analysis service and its handlers
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) {
	container.ReportRepo = reports.NewRepository(container.ArchiveDB.Conn(), log)
	container.HunterService = hunter.NewService(log)
	container.HunterHandler = hunterhandlers.NewHandler(
		container.HunterService,
		container.ReportRepo,
		cfg.KenoParams(),
		cfg.PositionalParams(),
		log,
	)
}

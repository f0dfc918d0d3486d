package di

import (
	"fmt"

	"github.com/aristath/hunter/internal/config"
	"github.com/aristath/hunter/internal/scheduler"
	"github.com/rs/zerolog"
)

// CheckpointSchedule is when the archive WAL is truncated
const CheckpointSchedule = "@daily"

// RegisterJobs creates the scheduler and registers the background jobs.
// Scheduled archiving is skipped when cfg.ArchiveSchedule is empty.
func RegisterJobs(container *Container, cfg *config.Config, log zerolog.Logger) (*JobInstances, error) {
	container.Scheduler = scheduler.New(log)
	jobs := &JobInstances{}

	if cfg.ArchiveSchedule != "" {
		jobs.Archive = scheduler.NewArchiveJob(
			container.HunterService,
			container.ReportRepo,
			cfg.KenoParams(),
			cfg.PositionalParams(),
			cfg.Retention(),
			log,
		)
		if err := container.Scheduler.AddJob(cfg.ArchiveSchedule, jobs.Archive); err != nil {
			return nil, fmt.Errorf("failed to register archive job: %w", err)
		}
	} else {
		log.Info().Msg("Scheduled archiving disabled")
	}

	jobs.Checkpoint = scheduler.NewCheckpointJob(log, container.ArchiveDB)
	if err := container.Scheduler.AddJob(CheckpointSchedule, jobs.Checkpoint); err != nil {
		return nil, fmt.Errorf("failed to register checkpoint job: %w", err)
	}

	return jobs, nil
}

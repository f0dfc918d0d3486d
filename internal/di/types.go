// Package di provides dependency injection wiring and initialization.
package di

import (
	"github.com/aristath/hunter/internal/database"
	"github.com/aristath/hunter/internal/modules/hunter"
	hunterhandlers "github.com/aristath/hunter/internal/modules/hunter/handlers"
	"github.com/aristath/hunter/internal/modules/reports"
	"github.com/aristath/hunter/internal/scheduler"
)

// Container holds all application dependencies. It is created by Wire.
type Container struct {
	ArchiveDB     *database.DB
	ReportRepo    *reports.Repository
	HunterService *hunter.Service
	HunterHandler *hunterhandlers.Handler
	Scheduler     *scheduler.Scheduler
}

// JobInstances holds the registered background jobs
type JobInstances struct {
	Archive    *scheduler.ArchiveJob // nil when scheduled archiving is disabled
	Checkpoint *scheduler.CheckpointJob
}

// Close releases the container's resources
func (c *Container) Close() error {
	if c.ArchiveDB == nil {
		return nil
	}
	return c.ArchiveDB.Close()
}

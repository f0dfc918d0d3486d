package di

import (
	"path/filepath"
	"testing"

	"github.com/aristath/hunter/internal/config"
	"github.com/aristath/hunter/internal/modules/hunter"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		DataDir:           t.TempDir(),
		ScoringProfile:    "standard",
		ArchiveSchedule:   "@hourly",
		Port:              8001,
		Seed:              42,
		KenoPeriods:       hunter.DefaultKenoPeriods,
		StarCount:         hunter.DefaultStarCount,
		PositionalPeriods: hunter.DefaultPositionalPeriods,
		TestSize:          hunter.DefaultTestSize,
		RetentionDays:     7,
	}
}

func TestWire(t *testing.T) {
	cfg := testConfig(t)

	container, jobs, err := Wire(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.ArchiveDB)
	assert.NotNil(t, container.ReportRepo)
	assert.NotNil(t, container.HunterService)
	assert.NotNil(t, container.HunterHandler)
	assert.NotNil(t, container.Scheduler)
	assert.FileExists(t, filepath.Join(cfg.DataDir, "reports.db"))

	require.NotNil(t, jobs.Archive)
	require.NotNil(t, jobs.Checkpoint)
	assert.ElementsMatch(t, []string{"archive_analyses", "wal_checkpoint"}, container.Scheduler.JobNames())

	// the wired archive job writes into the wired repository
	require.NoError(t, jobs.Archive.Run())
	entries, err := container.ReportRepo.List(10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWire_ArchivingDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.ArchiveSchedule = ""

	container, jobs, err := Wire(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer container.Close()

	assert.Nil(t, jobs.Archive)
	assert.Equal(t, []string{"wal_checkpoint"}, container.Scheduler.JobNames())
}

func TestWire_BadSchedule(t *testing.T) {
	cfg := testConfig(t)
	cfg.ArchiveSchedule = "whenever"

	container, jobs, err := Wire(cfg, zerolog.Nop())
	assert.Error(t, err)
	assert.Nil(t, container)
	assert.Nil(t, jobs)
}

func TestInitializeDatabases_InvalidPath(t *testing.T) {
	cfg := testConfig(t)
	cfg.DataDir = "/dev/null/not-a-directory"

	container, err := InitializeDatabases(cfg, zerolog.Nop())
	assert.Error(t, err)
	assert.Nil(t, container)
}

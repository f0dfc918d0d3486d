package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aristath/hunter/internal/domain"
	"github.com/aristath/hunter/internal/modules/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hunterEnv = []string{
	"HUNTER_DATA_DIR", "GO_PORT", "LOG_LEVEL", "DEV_MODE", "HUNTER_SEED",
	"HUNTER_KENO_PERIODS", "HUNTER_STAR_COUNT", "HUNTER_POSITIONAL_PERIODS",
	"HUNTER_TEST_SIZE", "HUNTER_SCORING_PROFILE", "HUNTER_ARCHIVE_SCHEDULE",
	"HUNTER_ARCHIVE_RETENTION_DAYS",
}

// clearEnv unsets every hunter variable for the duration of the test
func clearEnv(t *testing.T) {
	for _, key := range hunterEnv {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	t.Setenv("HUNTER_DATA_DIR", tmpDir)

	cfg, err := Load()
	require.NoError(t, err)

	absPath, err := filepath.Abs(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, absPath, cfg.DataDir)
	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 500, cfg.KenoPeriods)
	assert.Equal(t, 4, cfg.StarCount)
	assert.Equal(t, 1000, cfg.PositionalPeriods)
	assert.Equal(t, 100, cfg.TestSize)
	assert.Equal(t, scoring.ProfileStandard, cfg.ScoringProfile)
	assert.Equal(t, "@hourly", cfg.ArchiveSchedule)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention())
	assert.Equal(t, filepath.Join(absPath, "reports.db"), cfg.ArchivePath())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUNTER_DATA_DIR", t.TempDir())
	t.Setenv("GO_PORT", "9100")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("HUNTER_SEED", "7")
	t.Setenv("HUNTER_KENO_PERIODS", "1500")
	t.Setenv("HUNTER_STAR_COUNT", "3")
	t.Setenv("HUNTER_SCORING_PROFILE", "strict")
	t.Setenv("HUNTER_ARCHIVE_SCHEDULE", "*/15 * * * *")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, "*/15 * * * *", cfg.ArchiveSchedule)

	params := cfg.KenoParams()
	assert.Equal(t, uint64(7), params.Seed)
	assert.Equal(t, 1500, params.Periods)
	assert.Equal(t, 3, params.StarCount)
	assert.Equal(t, scoring.StrictConfig(), params.Scoring)
	require.NoError(t, params.Validate())

	positional := cfg.PositionalParams()
	assert.Equal(t, uint64(7), positional.Seed)
	assert.Equal(t, 1000, positional.Periods)
	require.NoError(t, positional.Validate())
}

func TestLoad_EmptyScheduleDisablesArchiving(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUNTER_DATA_DIR", t.TempDir())
	t.Setenv("HUNTER_ARCHIVE_SCHEDULE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.ArchiveSchedule)
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUNTER_DATA_DIR", t.TempDir())
	t.Setenv("GO_PORT", "not-a-port")
	t.Setenv("HUNTER_SEED", "-1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoad_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr error
	}{
		{"HUNTER_KENO_PERIODS", "50", domain.ErrInvalidPeriods},
		{"HUNTER_STAR_COUNT", "11", domain.ErrInvalidStarCount},
		{"HUNTER_POSITIONAL_PERIODS", "6000", domain.ErrInvalidPeriods},
		{"HUNTER_TEST_SIZE", "20", domain.ErrInvalidTestSize},
		{"HUNTER_SCORING_PROFILE", "lenient", scoring.ErrUnknownProfile},
		{"HUNTER_ARCHIVE_SCHEDULE", "every now and then", nil},
		{"HUNTER_ARCHIVE_RETENTION_DAYS", "-3", nil},
		{"GO_PORT", "70000", nil},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("HUNTER_DATA_DIR", t.TempDir())
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

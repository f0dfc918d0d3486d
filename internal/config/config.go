// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aristath/hunter/internal/domain"
	"github.com/aristath/hunter/internal/modules/draws"
	"github.com/aristath/hunter/internal/modules/hunter"
	"github.com/aristath/hunter/internal/modules/scoring"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds application configuration
type Config struct {
	DataDir           string // Directory for the report archive (always absolute)
	LogLevel          string
	ScoringProfile    string
	ArchiveSchedule   string // cron spec; empty disables scheduled archiving
	Port              int
	Seed              uint64
	KenoPeriods       int
	StarCount         int
	PositionalPeriods int
	TestSize          int
	RetentionDays     int // archived reports older than this are pruned; 0 keeps everything
	DevMode           bool
}

// Load reads configuration from .env and environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir, err := filepath.Abs(getEnv("HUNTER_DATA_DIR", "./data"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:           dataDir,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ScoringProfile:    getEnv("HUNTER_SCORING_PROFILE", scoring.ProfileStandard),
		ArchiveSchedule:   os.Getenv("HUNTER_ARCHIVE_SCHEDULE"),
		Port:              getEnvAsInt("GO_PORT", 8001),
		Seed:              getEnvAsUint64("HUNTER_SEED", draws.DefaultSeed),
		KenoPeriods:       getEnvAsInt("HUNTER_KENO_PERIODS", hunter.DefaultKenoPeriods),
		StarCount:         getEnvAsInt("HUNTER_STAR_COUNT", hunter.DefaultStarCount),
		PositionalPeriods: getEnvAsInt("HUNTER_POSITIONAL_PERIODS", hunter.DefaultPositionalPeriods),
		TestSize:          getEnvAsInt("HUNTER_TEST_SIZE", hunter.DefaultTestSize),
		RetentionDays:     getEnvAsInt("HUNTER_ARCHIVE_RETENTION_DAYS", 30),
		DevMode:           getEnvAsBool("DEV_MODE", false),
	}
	if _, set := os.LookupEnv("HUNTER_ARCHIVE_SCHEDULE"); !set {
		cfg.ArchiveSchedule = "@hourly"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and that the schedule and scoring profile are known
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("GO_PORT: invalid port %d", c.Port)
	}
	if err := domain.ValidateKenoPeriods(c.KenoPeriods); err != nil {
		return fmt.Errorf("HUNTER_KENO_PERIODS: %w", err)
	}
	if err := domain.ValidateStarCount(c.StarCount); err != nil {
		return fmt.Errorf("HUNTER_STAR_COUNT: %w", err)
	}
	if err := domain.ValidatePositionalPeriods(c.PositionalPeriods); err != nil {
		return fmt.Errorf("HUNTER_POSITIONAL_PERIODS: %w", err)
	}
	if err := domain.ValidateTestSize(c.TestSize, c.PositionalPeriods); err != nil {
		return fmt.Errorf("HUNTER_TEST_SIZE: %w", err)
	}
	if _, err := scoring.ConfigForProfile(c.ScoringProfile); err != nil {
		return fmt.Errorf("HUNTER_SCORING_PROFILE: %w", err)
	}
	if c.ArchiveSchedule != "" {
		if _, err := cron.ParseStandard(c.ArchiveSchedule); err != nil {
			return fmt.Errorf("HUNTER_ARCHIVE_SCHEDULE: invalid cron spec %q: %w", c.ArchiveSchedule, err)
		}
	}
	if c.RetentionDays < 0 {
		return fmt.Errorf("HUNTER_ARCHIVE_RETENTION_DAYS: must not be negative")
	}
	return nil
}

// KenoParams returns the configured default keno run
func (c *Config) KenoParams() hunter.KenoParams {
	params := hunter.DefaultKenoParams()
	params.Seed = c.Seed
	params.Periods = c.KenoPeriods
	params.StarCount = c.StarCount
	if cfg, err := scoring.ConfigForProfile(c.ScoringProfile); err == nil {
		params.Scoring = cfg
	}
	return params
}

// PositionalParams returns the configured default positional run
func (c *Config) PositionalParams() hunter.PositionalParams {
	return hunter.PositionalParams{
		Seed:     c.Seed,
		Periods:  c.PositionalPeriods,
		TestSize: c.TestSize,
	}
}

// Retention returns how long archived reports are kept, zero for forever
func (c *Config) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// ArchivePath returns the report archive database file
func (c *Config) ArchivePath() string {
	return filepath.Join(c.DataDir, "reports.db")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

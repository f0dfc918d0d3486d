package scheduler

import (
	"fmt"
	"time"

	"github.com/aristath/hunter/internal/modules/hunter"
	"github.com/rs/zerolog"
)

// Analyzer runs the analyses archived by ArchiveJob
type Analyzer interface {
	RunKeno(params hunter.KenoParams) (*hunter.KenoReport, error)
	RunPositional(params hunter.PositionalParams) (*hunter.PositionalReport, error)
}

// ReportStore persists reports and drops old ones
type ReportStore interface {
	SaveKeno(report *hunter.KenoReport) (string, error)
	SavePositional(report *hunter.PositionalReport) (string, error)
	Prune(cutoff time.Time) (int64, error)
}

// ArchiveJob runs the default keno and positional analyses and archives both
type ArchiveJob struct {
	analyzer   Analyzer
	store      ReportStore
	keno       hunter.KenoParams
	positional hunter.PositionalParams
	retention  time.Duration
	now        func() time.Time
	log        zerolog.Logger
}

// NewArchiveJob creates a new ArchiveJob. A zero retention keeps every report.
func NewArchiveJob(
	analyzer Analyzer,
	store ReportStore,
	keno hunter.KenoParams,
	positional hunter.PositionalParams,
	retention time.Duration,
	log zerolog.Logger,
) *ArchiveJob {
	return &ArchiveJob{
		analyzer:   analyzer,
		store:      store,
		keno:       keno,
		positional: positional,
		retention:  retention,
		now:        time.Now,
		log:        log.With().Str("job", "archive_analyses").Logger(),
	}
}

// Name returns the job name
func (j *ArchiveJob) Name() string {
	return "archive_analyses"
}

// Run executes both analyses, saves them and prunes expired reports
func (j *ArchiveJob) Run() error {
	kenoReport, err := j.analyzer.RunKeno(j.keno)
	if err != nil {
		return fmt.Errorf("keno analysis failed: %w", err)
	}
	kenoID, err := j.store.SaveKeno(kenoReport)
	if err != nil {
		return fmt.Errorf("failed to archive keno report: %w", err)
	}

	positionalReport, err := j.analyzer.RunPositional(j.positional)
	if err != nil {
		return fmt.Errorf("positional analysis failed: %w", err)
	}
	positionalID, err := j.store.SavePositional(positionalReport)
	if err != nil {
		return fmt.Errorf("failed to archive positional report: %w", err)
	}

	j.log.Info().
		Str("keno_id", kenoID).
		Int("score", kenoReport.Score.Score).
		Str("positional_id", positionalID).
		Int("hits", positionalReport.Result.Hits).
		Msg("Archived analyses")

	if j.retention <= 0 {
		return nil
	}

	removed, err := j.store.Prune(j.now().Add(-j.retention))
	if err != nil {
		return fmt.Errorf("failed to prune archive: %w", err)
	}
	if removed > 0 {
		j.log.Info().Int64("removed", removed).Msg("Pruned expired reports")
	}
	return nil
}

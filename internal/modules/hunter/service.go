package hunter

import (
	"fmt"
	"time"

	"github.com/aristath/hunter/internal/domain"
	"github.com/aristath/hunter/internal/modules/analytics"
	"github.com/aristath/hunter/internal/modules/backtest"
	"github.com/aristath/hunter/internal/modules/baskets"
	"github.com/aristath/hunter/internal/modules/draws"
	"github.com/aristath/hunter/internal/modules/scoring"
	"github.com/aristath/hunter/internal/modules/selection"
	"github.com/aristath/hunter/internal/utils"
	"github.com/rs/zerolog"
)

// KenoReport is the structured output of one keno analysis
type KenoReport struct {
	GeneratedAt  time.Time                  `json:"generated_at"`
	Params       KenoParams                 `json:"params"`
	Frequencies  analytics.FrequencyTable   `json:"frequencies"`
	Gaps         analytics.GapTable         `json:"gaps"`
	Baskets      baskets.Baskets            `json:"baskets"`
	Ranking      []analytics.RankedNumber   `json:"ranking"`
	Recommended  selection.Combination      `json:"recommended"`
	Scored       selection.Combination      `json:"scored"`
	Score        scoring.Report             `json:"score"`
	Parity       analytics.ParityBalance    `json:"parity"`
	Summary      analytics.FrequencySummary `json:"summary"`
	Tails        analytics.TailHistogram    `json:"tails"`
	UsedFallback bool                       `json:"used_fallback"`
	Elite        bool                       `json:"elite"`
}

// PositionalReport is the structured output of one positional analysis
type PositionalReport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Params      PositionalParams `json:"params"`
	Model       backtest.Model   `json:"model"`
	Latest      domain.Triple    `json:"latest"`
	Result      backtest.Result  `json:"result"`
	HitRate     float64          `json:"hit_rate"`
}

// Service runs analyses. It holds no per-run state, so one Service may serve
// concurrent callers.
type Service struct {
	log zerolog.Logger
	now func() time.Time
}

// NewService creates a new hunter service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "hunter").Logger(),
		now: time.Now,
	}
}

// RunKeno generates a keno history and derives the full report from it
func (s *Service) RunKeno(params KenoParams) (*KenoReport, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	defer utils.NewTimer("keno_analysis", s.log).Stop()

	s.log.Debug().
		Int("periods", params.Periods).
		Int("stars", params.StarCount).
		Uint64("seed", params.Seed).
		Msg("Running keno analysis")

	history, err := draws.NewSeededSimulator(params.Seed).GenerateKeno(params.Periods)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keno history: %w", err)
	}

	freq := analytics.CountFrequencies(history)
	gaps := analytics.TrackGaps(history)
	pool := analytics.TopNumbers(freq, params.TopN)
	bs := baskets.Classify(pool, params.Scoring.MagnitudeThreshold)

	picks := selection.Pick(bs, params.StarCount, baskets.DefaultOrder)
	recommended := selection.FromPicks(picks)
	scored, fallback := selection.Resolve(picks, params.StarCount, params.Scoring.Arity)
	if fallback {
		s.log.Debug().
			Int("picked", len(recommended)).
			Int("wanted", params.StarCount).
			Int("arity", params.Scoring.Arity).
			Msg("No full scoring combination, scoring the default")
	}

	score := scoring.NewEngine(params.Scoring).Score(scored, gaps)

	report := &KenoReport{
		GeneratedAt:  s.now().UTC(),
		Params:       params,
		Frequencies:  freq,
		Gaps:         gaps,
		Baskets:      bs,
		Ranking:      analytics.Rank(freq, gaps, params.TopN),
		Recommended:  recommended,
		Scored:       scored,
		Score:        score,
		Parity:       analytics.AnalyzeParity(history),
		Summary:      analytics.Summarize(freq),
		Tails:        analytics.TailDistribution(history.Numbers()),
		UsedFallback: fallback,
		Elite:        score.Elite(),
	}

	s.log.Info().
		Ints("recommended", recommended).
		Int("score", score.Score).
		Bool("fallback", fallback).
		Msg("Keno analysis complete")

	return report, nil
}

// RunPositional generates a positional history and backtests the mode predictor
func (s *Service) RunPositional(params PositionalParams) (*PositionalReport, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	defer utils.NewTimer("positional_analysis", s.log).Stop()

	s.log.Debug().
		Int("periods", params.Periods).
		Int("test_size", params.TestSize).
		Uint64("seed", params.Seed).
		Msg("Running positional analysis")

	history, err := draws.NewSeededSimulator(params.Seed).GeneratePositional(params.Periods)
	if err != nil {
		return nil, fmt.Errorf("failed to generate positional history: %w", err)
	}

	model, result, err := backtest.Run(history, params.TestSize)
	if err != nil {
		return nil, fmt.Errorf("backtest failed: %w", err)
	}

	report := &PositionalReport{
		GeneratedAt: s.now().UTC(),
		Params:      params,
		Model:       model,
		Latest:      history[len(history)-1],
		Result:      result,
		HitRate:     result.HitRate(),
	}

	s.log.Info().
		Str("prediction", model.Prediction.String()).
		Int("hits", result.Hits).
		Int("trials", result.Trials).
		Msg("Positional analysis complete")

	return report, nil
}

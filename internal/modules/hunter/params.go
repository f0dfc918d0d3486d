// Package hunter runs the full keno and positional analysis pipelines.
package hunter

import (
	"fmt"

	"github.com/aristath/hunter/internal/domain"
	"github.com/aristath/hunter/internal/modules/draws"
	"github.com/aristath/hunter/internal/modules/scoring"
	"github.com/aristath/hunter/internal/modules/selection"
)

// Defaults applied by DefaultKenoParams and DefaultPositionalParams
const (
	DefaultKenoPeriods       = 500
	DefaultStarCount         = 4
	DefaultTopN              = 10
	DefaultPositionalPeriods = 1000
	DefaultTestSize          = 100
)

// KenoParams configures one keno analysis
type KenoParams struct {
	Scoring   scoring.Config `json:"scoring"`
	Seed      uint64         `json:"seed"`
	Periods   int            `json:"periods"`
	StarCount int            `json:"star_count"`
	TopN      int            `json:"top_n"` // size of the ranked candidate pool
}

// DefaultKenoParams returns the standard keno run
func DefaultKenoParams() KenoParams {
	return KenoParams{
		Scoring:   scoring.StandardConfig(),
		Seed:      draws.DefaultSeed,
		Periods:   DefaultKenoPeriods,
		StarCount: DefaultStarCount,
		TopN:      DefaultTopN,
	}
}

// Validate rejects out-of-range parameters
func (p KenoParams) Validate() error {
	if err := domain.ValidateKenoPeriods(p.Periods); err != nil {
		return err
	}
	if err := domain.ValidateStarCount(p.StarCount); err != nil {
		return err
	}
	if err := domain.ValidateTopN(p.TopN); err != nil {
		return err
	}
	if err := p.Scoring.Validate(); err != nil {
		return err
	}
	// the fallback combination must be scoreable at the configured arity
	if p.Scoring.Arity != len(selection.DefaultCombination) {
		return fmt.Errorf("%w: arity %d, combinations are scored on %d numbers",
			scoring.ErrInvalidConfig, p.Scoring.Arity, len(selection.DefaultCombination))
	}
	return nil
}

// PositionalParams configures one positional analysis
type PositionalParams struct {
	Seed     uint64 `json:"seed"`
	Periods  int    `json:"periods"`
	TestSize int    `json:"test_size"`
}

// DefaultPositionalParams returns the standard positional run
func DefaultPositionalParams() PositionalParams {
	return PositionalParams{
		Seed:     draws.DefaultSeed,
		Periods:  DefaultPositionalPeriods,
		TestSize: DefaultTestSize,
	}
}

// Validate rejects out-of-range parameters
func (p PositionalParams) Validate() error {
	if err := domain.ValidatePositionalPeriods(p.Periods); err != nil {
		return err
	}
	return domain.ValidateTestSize(p.TestSize, p.Periods)
}

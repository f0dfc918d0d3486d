// Package scoring rates a candidate combination against four balance criteria.
package scoring

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aristath/hunter/internal/domain"
)

// CriterionPoints is the maximum contribution of each criterion
const CriterionPoints = 25

// Profile names accepted by ConfigForProfile
const (
	ProfileStandard = "standard"
	ProfileStrict   = "strict"
)

var (
	// ErrUnknownProfile is returned for a profile name without a preset
	ErrUnknownProfile = errors.New("unknown scoring profile")
	// ErrInvalidConfig is returned by Config.Validate
	ErrInvalidConfig = errors.New("invalid scoring config")
)

// TailTier grants Points when a combination has at least MinDistinct tail digits
type TailTier struct {
	MinDistinct int `json:"min_distinct"`
	Points      int `json:"points"`
}

// Config parameterizes the scoring rules
type Config struct {
	TailTiers          []TailTier `json:"tail_tiers"` // highest MinDistinct first
	Arity              int        `json:"arity"`
	MagnitudeThreshold int        `json:"magnitude_threshold"`
	MinAverageGap      float64    `json:"min_average_gap"`
}

// StandardConfig is the default rule set: 4 numbers, full tail credit for 4
// distinct tails and partial credit for 3, average gap of at least 2.
func StandardConfig() Config {
	return Config{
		Arity:              4,
		MagnitudeThreshold: domain.KenoMagnitudeThreshold,
		TailTiers: []TailTier{
			{MinDistinct: 4, Points: CriterionPoints},
			{MinDistinct: 3, Points: 15},
		},
		MinAverageGap: 2,
	}
}

// StrictConfig demands more momentum: an average gap of at least 3
func StrictConfig() Config {
	cfg := StandardConfig()
	cfg.MinAverageGap = 3
	return cfg
}

// ConfigForProfile returns the preset for a profile name. An empty name selects
// the standard profile.
func ConfigForProfile(profile string) (Config, error) {
	switch profile {
	case "", ProfileStandard:
		return StandardConfig(), nil
	case ProfileStrict:
		return StrictConfig(), nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownProfile, profile)
	}
}

// Validate checks that the rules keep scores in [0, 100] in steps of 5
func (c Config) Validate() error {
	if c.Arity < 2 || c.Arity%2 != 0 {
		return fmt.Errorf("%w: arity %d must be even and at least 2", ErrInvalidConfig, c.Arity)
	}
	if c.MinAverageGap < 0 {
		return fmt.Errorf("%w: negative minimum average gap", ErrInvalidConfig)
	}
	for _, tier := range c.TailTiers {
		if tier.Points < 0 || tier.Points > CriterionPoints || tier.Points%5 != 0 {
			return fmt.Errorf("%w: tail tier points %d must be a multiple of 5 in [0, %d]",
				ErrInvalidConfig, tier.Points, CriterionPoints)
		}
		if tier.MinDistinct < 1 {
			return fmt.Errorf("%w: tail tier needs at least one distinct digit", ErrInvalidConfig)
		}
	}
	return nil
}

// sortedTiers returns the tiers ordered by MinDistinct, highest first
func (c Config) sortedTiers() []TailTier {
	tiers := append([]TailTier(nil), c.TailTiers...)
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].MinDistinct > tiers[j].MinDistinct
	})
	return tiers
}

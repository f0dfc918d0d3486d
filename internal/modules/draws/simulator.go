// Package draws generates reproducible synthetic draw histories.
package draws

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/aristath/hunter/internal/domain"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// DefaultSeed is the seed used when a run does not supply one
const DefaultSeed uint64 = 42

// NewSource returns a generator owned by a single analysis run.
// The same seed always yields the same sequence.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Simulator draws histories from an explicit generator
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator creates a simulator bound to rng
func NewSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{rng: rng}
}

// NewSeededSimulator creates a simulator with its own generator seeded with seed
func NewSeededSimulator(seed uint64) *Simulator {
	return NewSimulator(NewSource(seed))
}

// GenerateKeno produces periods keno draws, oldest first. Each draw holds
// domain.KenoDrawSize distinct numbers from [1, 80], sorted ascending.
func (s *Simulator) GenerateKeno(periods int) (domain.KenoHistory, error) {
	if periods < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPeriods, periods)
	}

	history := make(domain.KenoHistory, periods)
	idxs := make([]int, domain.KenoDrawSize)
	for i := range history {
		sampleuv.WithoutReplacement(idxs, domain.KenoMaxNumber, s.rng)

		draw := make(domain.KenoDraw, domain.KenoDrawSize)
		for j, idx := range idxs {
			draw[j] = idx + domain.KenoMinNumber
		}
		slices.Sort(draw)
		history[i] = draw
	}

	return history, nil
}

// GeneratePositional produces periods positional draws, oldest first.
// Each position is an independent uniform digit.
func (s *Simulator) GeneratePositional(periods int) (domain.PositionalHistory, error) {
	if periods < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPeriods, periods)
	}

	history := make(domain.PositionalHistory, periods)
	for i := range history {
		for p := 0; p < domain.PositionalDigits; p++ {
			history[i][p] = s.rng.IntN(domain.DigitBase)
		}
	}

	return history, nil
}

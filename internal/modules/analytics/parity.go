package analytics

import (
	"github.com/aristath/hunter/internal/domain"
	"github.com/aristath/hunter/pkg/formulas"
)

// Parity panel settings
const (
	ParityWindow      = 100 // most recent draws inspected
	BalancedOddMin    = 8   // a draw is balanced when its odd count is in [min, max]
	BalancedOddMax    = 12
	ParityTrendWindow = 10 // moving-average window over per-draw odd counts
)

// ParityBalance summarizes how often recent draws split evenly between odd and even numbers
type ParityBalance struct {
	LatestTrend   *float64  `json:"latest_trend,omitempty"`
	OddCounts     []int     `json:"odd_counts"`
	Trend         []float64 `json:"trend"`
	Window        int       `json:"window"`
	BalancedDraws int       `json:"balanced_draws"`
	Rate          float64   `json:"rate"` // percentage of balanced draws in the window
}

// OddCounts returns the number of odd values in each draw
func OddCounts(history domain.KenoHistory) []int {
	counts := make([]int, len(history))
	for i, draw := range history {
		for _, n := range draw {
			if domain.IsOdd(n) {
				counts[i]++
			}
		}
	}
	return counts
}

// AnalyzeParity inspects the last ParityWindow draws
func AnalyzeParity(history domain.KenoHistory) ParityBalance {
	recent := history.Tail(ParityWindow)
	counts := OddCounts(recent)

	balance := ParityBalance{
		Window:    len(recent),
		OddCounts: counts,
	}

	for _, odd := range counts {
		if odd >= BalancedOddMin && odd <= BalancedOddMax {
			balance.BalancedDraws++
		}
	}
	if balance.Window > 0 {
		balance.Rate = float64(balance.BalancedDraws) * 100 / float64(balance.Window)
	}

	values := formulas.IntsToFloats(counts)
	balance.Trend = formulas.SMA(values, ParityTrendWindow)
	balance.LatestTrend = formulas.LastSMA(values, ParityTrendWindow)

	return balance
}

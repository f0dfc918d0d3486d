package analytics

import (
	"github.com/aristath/hunter/internal/domain"
	"github.com/aristath/hunter/pkg/formulas"
)

// FrequencySummary describes how evenly the numbers were drawn.
// It is descriptive only: a low chi-square says nothing about future draws.
type FrequencySummary struct {
	Expected  float64 `json:"expected"` // count each number would have under a perfectly even spread
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"`
	ChiSquare float64 `json:"chi_square"`
	Unseen    int     `json:"unseen"` // numbers never drawn
	Min       int     `json:"min"`
	Max       int     `json:"max"`
}

// Summarize computes the summary over every number in the pool, counting
// never-drawn numbers as zero.
func Summarize(freq FrequencyTable) FrequencySummary {
	counts := make([]int, 0, domain.KenoMaxNumber)
	for n := domain.KenoMinNumber; n <= domain.KenoMaxNumber; n++ {
		counts = append(counts, freq.Count(n))
	}

	summary := FrequencySummary{
		Expected: float64(freq.Total()) / float64(len(counts)),
		Min:      counts[0],
		Max:      counts[0],
	}
	for _, c := range counts {
		if c == 0 {
			summary.Unseen++
		}
		summary.Min = min(summary.Min, c)
		summary.Max = max(summary.Max, c)
	}

	values := formulas.IntsToFloats(counts)
	summary.Mean = formulas.Mean(values)
	summary.StdDev = formulas.StdDev(values)
	summary.ChiSquare = formulas.ChiSquareUniform(values)

	return summary
}

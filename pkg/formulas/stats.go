// Package formulas holds the numeric helpers used by the analytics modules.
package formulas

import (
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Variance calculates the sample variance of a slice of float64 values
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.Variance(data, nil)
}

// ChiSquareUniform returns the chi-square statistic of observed counts against
// a uniform expectation (total spread evenly over every bucket).
//
// Returns 0 for empty or all-zero observations.
func ChiSquareUniform(observed []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	total := 0.0
	for _, o := range observed {
		total += o
	}
	if total == 0 {
		return 0
	}

	expected := make([]float64, len(observed))
	each := total / float64(len(observed))
	for i := range expected {
		expected[i] = each
	}

	return stat.ChiSquare(observed, expected)
}

// IntsToFloats converts integer counts to float64 for the gonum helpers
func IntsToFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

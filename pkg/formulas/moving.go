package formulas

import (
	"github.com/markcheno/go-talib"
)

// SMA calculates the simple moving average series of data over the given window.
//
// The talib warm-up region (the first window-1 outputs) is dropped, so the result
// has len(data)-window+1 elements. Returns nil when there is not enough data.
func SMA(data []float64, window int) []float64 {
	if window <= 0 || len(data) < window {
		return nil
	}

	sma := talib.Sma(data, window)
	return sma[window-1:]
}

// LastSMA returns the most recent simple moving average value, or nil if insufficient data
func LastSMA(data []float64, window int) *float64 {
	series := SMA(data, window)
	if len(series) == 0 || isNaN(series[len(series)-1]) {
		return nil
	}

	result := series[len(series)-1]
	return &result
}

// isNaN checks if a float64 is NaN
func isNaN(f float64) bool {
	return f != f
}

package domain

import (
	"errors"
	"fmt"
)

// Parameter-range errors. Callers match them with errors.Is.
var (
	ErrInvalidPeriods   = errors.New("invalid period count")
	ErrInvalidStarCount = errors.New("invalid star count")
	ErrInvalidTestSize  = errors.New("invalid test size")
	ErrInvalidTopN      = errors.New("invalid ranking size")
)

// Input bounds accepted from the presentation layer
const (
	KenoMinPeriods       = 100
	KenoMaxPeriods       = 2000
	PositionalMinPeriods = 500
	PositionalMaxPeriods = 5000
	MinStarCount         = 1
	MaxStarCount         = 10
	MinTestSize          = 50
	MaxTestSize          = 500
)

// ValidateKenoPeriods checks the keno period count bound
func ValidateKenoPeriods(periods int) error {
	if periods < KenoMinPeriods || periods > KenoMaxPeriods {
		return fmt.Errorf("%w: %d outside [%d, %d]", ErrInvalidPeriods, periods, KenoMinPeriods, KenoMaxPeriods)
	}
	return nil
}

// ValidatePositionalPeriods checks the positional period count bound
func ValidatePositionalPeriods(periods int) error {
	if periods < PositionalMinPeriods || periods > PositionalMaxPeriods {
		return fmt.Errorf("%w: %d outside [%d, %d]", ErrInvalidPeriods, periods, PositionalMinPeriods, PositionalMaxPeriods)
	}
	return nil
}

// ValidateStarCount checks how many numbers a recommendation may hold
func ValidateStarCount(stars int) error {
	if stars < MinStarCount || stars > MaxStarCount {
		return fmt.Errorf("%w: %d outside [%d, %d]", ErrInvalidStarCount, stars, MinStarCount, MaxStarCount)
	}
	return nil
}

// ValidateTestSize checks the backtest holdout size. The holdout must also leave
// at least one draw for training.
func ValidateTestSize(testSize, periods int) error {
	if testSize < MinTestSize || testSize > MaxTestSize {
		return fmt.Errorf("%w: %d outside [%d, %d]", ErrInvalidTestSize, testSize, MinTestSize, MaxTestSize)
	}
	if testSize >= periods {
		return fmt.Errorf("%w: %d leaves no training draws out of %d", ErrInvalidTestSize, testSize, periods)
	}
	return nil
}

// ValidateTopN checks the size of the ranked candidate pool
func ValidateTopN(n int) error {
	if n < 1 || n > KenoMaxNumber {
		return fmt.Errorf("%w: %d outside [1, %d]", ErrInvalidTopN, n, KenoMaxNumber)
	}
	return nil
}

// Package backtest evaluates a per-position mode predictor for the positional game.
package backtest

import (
	"fmt"

	"github.com/aristath/hunter/internal/domain"
	"github.com/aristath/hunter/internal/modules/analytics"
)

// Model predicts the most frequent digit at each position
type Model struct {
	Prediction domain.Triple                                 `json:"prediction"`
	Tallies    [domain.PositionalDigits]analytics.DigitTally `json:"tallies"`
}

// Result counts exact matches of the prediction over a holdout
type Result struct {
	Hits   int `json:"hits"`
	Trials int `json:"trials"`
}

// HitRate returns hits as a fraction of trials
func (r Result) HitRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Trials)
}

// Split returns the training prefix and the holdout suffix of testSize draws
func Split(history domain.PositionalHistory, testSize int) (train, holdout domain.PositionalHistory, err error) {
	if testSize <= 0 || testSize >= len(history) {
		return nil, nil, fmt.Errorf("%w: %d for %d draws", domain.ErrInvalidTestSize, testSize, len(history))
	}
	cut := len(history) - testSize
	return history[:cut], history[cut:], nil
}

// Fit learns the per-position mode from train only
func Fit(train domain.PositionalHistory) Model {
	model := Model{Tallies: analytics.CountDigits(train)}
	for p, tally := range model.Tallies {
		model.Prediction[p] = tally.Mode()
	}
	return model
}

// Evaluate counts holdout draws equal to the prediction at all three positions
func Evaluate(model Model, holdout domain.PositionalHistory) Result {
	result := Result{Trials: len(holdout)}
	for _, triple := range holdout {
		if triple == model.Prediction {
			result.Hits++
		}
	}
	return result
}

// Run splits the history, fits on the prefix and evaluates on the suffix
func Run(history domain.PositionalHistory, testSize int) (Model, Result, error) {
	train, holdout, err := Split(history, testSize)
	if err != nil {
		return Model{}, Result{}, err
	}
	model := Fit(train)
	return model, Evaluate(model, holdout), nil
}

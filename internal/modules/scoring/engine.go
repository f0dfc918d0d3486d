package scoring

import (
	"fmt"

	"github.com/aristath/hunter/internal/domain"
	"github.com/aristath/hunter/internal/modules/analytics"
)

// Criterion names a scoring rule
type Criterion string

const (
	CriterionParity        Criterion = "parity"
	CriterionMagnitude     Criterion = "magnitude"
	CriterionTailDiversity Criterion = "tail_diversity"
	CriterionGapMomentum   Criterion = "gap_momentum"
)

// EliteScore is the score from which a combination is flagged elite
const EliteScore = 90

// CriterionResult explains one rule's outcome
type CriterionResult struct {
	Criterion    Criterion `json:"criterion"`
	Rationale    string    `json:"rationale"`
	Contribution int       `json:"contribution"`
	Passed       bool      `json:"passed"`
}

// Report is the outcome of scoring one combination
type Report struct {
	Criteria   []CriterionResult `json:"criteria"`
	Score      int               `json:"score"`
	AverageGap float64           `json:"average_gap"`
}

// Elite reports whether the score reaches EliteScore
func (r Report) Elite() bool {
	return r.Score >= EliteScore
}

// Engine scores combinations with a fixed rule set
type Engine struct {
	cfg Config
}

// NewEngine creates an engine for cfg
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the rules in use
func (e *Engine) Config() Config {
	return e.cfg
}

// Score evaluates the combination. Every criterion is always reported, in
// order, with a zero contribution when it is not met. Only the first Arity
// numbers are scored; any beyond that are ignored.
func (e *Engine) Score(combination []int, gaps analytics.GapTable) Report {
	if e.cfg.Arity >= 0 && len(combination) > e.cfg.Arity {
		combination = combination[:e.cfg.Arity]
	}

	results := []CriterionResult{
		e.scoreParity(combination),
		e.scoreMagnitude(combination),
		e.scoreTailDiversity(combination),
	}
	momentum, avgGap := e.scoreGapMomentum(combination, gaps)
	results = append(results, momentum)

	report := Report{Criteria: results, AverageGap: avgGap}
	for _, r := range results {
		report.Score += r.Contribution
	}
	return report
}

func (e *Engine) scoreParity(combination []int) CriterionResult {
	odd := 0
	for _, n := range combination {
		if domain.IsOdd(n) {
			odd++
		}
	}
	even := len(combination) - odd
	half := e.cfg.Arity / 2

	result := CriterionResult{Criterion: CriterionParity}
	if odd == half && even == half {
		result.Passed = true
		result.Contribution = CriterionPoints
		result.Rationale = fmt.Sprintf("odd/even %d:%d balanced", odd, even)
	} else {
		result.Rationale = fmt.Sprintf("odd/even %d:%d unbalanced", odd, even)
	}
	return result
}

func (e *Engine) scoreMagnitude(combination []int) CriterionResult {
	high := 0
	for _, n := range combination {
		if domain.IsHigh(n, e.cfg.MagnitudeThreshold) {
			high++
		}
	}
	low := len(combination) - high
	half := e.cfg.Arity / 2

	result := CriterionResult{Criterion: CriterionMagnitude}
	if high == half && low == half {
		result.Passed = true
		result.Contribution = CriterionPoints
		result.Rationale = fmt.Sprintf("high/low %d:%d balanced around %d", high, low, e.cfg.MagnitudeThreshold)
	} else {
		result.Rationale = fmt.Sprintf("high/low %d:%d unbalanced around %d", high, low, e.cfg.MagnitudeThreshold)
	}
	return result
}

func (e *Engine) scoreTailDiversity(combination []int) CriterionResult {
	tails := make(map[int]struct{}, len(combination))
	for _, n := range combination {
		tails[domain.TailDigit(n)] = struct{}{}
	}
	distinct := len(tails)

	result := CriterionResult{
		Criterion: CriterionTailDiversity,
		Rationale: fmt.Sprintf("%d distinct tail digits, no credit", distinct),
	}
	for _, tier := range e.cfg.sortedTiers() {
		if distinct < tier.MinDistinct {
			continue
		}
		result.Contribution = tier.Points
		result.Passed = tier.Points > 0
		if tier.Points == CriterionPoints {
			result.Rationale = fmt.Sprintf("%d distinct tail digits, fully spread", distinct)
		} else {
			result.Rationale = fmt.Sprintf("%d distinct tail digits, some repetition", distinct)
		}
		break
	}
	return result
}

// scoreGapMomentum averages the gaps over the fixed arity, so an incomplete
// combination is diluted rather than rescaled. Unseen numbers count as zero.
func (e *Engine) scoreGapMomentum(combination []int, gaps analytics.GapTable) (CriterionResult, float64) {
	result := CriterionResult{Criterion: CriterionGapMomentum}
	if len(combination) == 0 || e.cfg.Arity <= 0 {
		result.Rationale = "empty combination, no gap momentum"
		return result, 0
	}

	sum := 0
	for _, n := range combination {
		sum += gaps.GapOrZero(n)
	}
	avg := float64(sum) / float64(e.cfg.Arity)

	if avg >= e.cfg.MinAverageGap {
		result.Passed = true
		result.Contribution = CriterionPoints
		result.Rationale = fmt.Sprintf("average gap %.1f draws, momentum sufficient", avg)
	} else {
		result.Rationale = fmt.Sprintf("average gap %.1f draws, below %.1f", avg, e.cfg.MinAverageGap)
	}
	return result, avg
}

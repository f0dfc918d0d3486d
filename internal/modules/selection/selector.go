// Package selection picks recommended combinations from parity x magnitude baskets.
package selection

import (
	"slices"

	"github.com/aristath/hunter/internal/domain"
	"github.com/aristath/hunter/internal/modules/baskets"
)

// Combination is a recommended set of unique numbers, sorted ascending
type Combination []int

// DefaultCombination stands in when the baskets cannot fill a recommendation
var DefaultCombination = Combination{6, 39, 59, 74}

// Clone returns an independent copy
func (c Combination) Clone() Combination {
	return slices.Clone(c)
}

// Pick visits the baskets in order, cycling when k exceeds the number of
// baskets, and takes one number per visit:
//   - the best-ranked member whose tail digit is not yet used, else
//   - the best-ranked member not yet chosen, else
//   - nothing (the visit is skipped; other baskets never substitute).
//
// Chosen numbers are tracked alongside tail digits so the same number is never
// picked twice. Picks are returned in visitation order and may be fewer than k.
func Pick(bs baskets.Baskets, k int, order []baskets.Basket) []int {
	if k <= 0 || len(order) == 0 {
		return []int{}
	}

	picked := make([]int, 0, k)
	usedNumbers := make(map[int]bool, k)
	usedTails := make(map[int]bool, domain.DigitBase)

	for i := 0; i < k; i++ {
		pick, ok := pickFrom(bs.Members(order[i%len(order)]), usedNumbers, usedTails)
		if !ok {
			continue
		}
		picked = append(picked, pick)
		usedNumbers[pick] = true
		usedTails[domain.TailDigit(pick)] = true
	}

	return picked
}

// Select returns the picks of Pick sorted ascending
func Select(bs baskets.Baskets, k int, order []baskets.Basket) Combination {
	return FromPicks(Pick(bs, k, order))
}

// FromPicks copies picks into a Combination sorted ascending
func FromPicks(picks []int) Combination {
	c := Combination(slices.Clone(picks))
	slices.Sort(c)
	return c
}

func pickFrom(members []int, usedNumbers, usedTails map[int]bool) (int, bool) {
	for _, n := range members {
		if !usedNumbers[n] && !usedTails[domain.TailDigit(n)] {
			return n, true
		}
	}
	for _, n := range members {
		if !usedNumbers[n] {
			return n, true
		}
	}
	return 0, false
}

// Resolve returns the combination to score. When all k requested picks were
// made and k is at least arity, the first arity picks in visitation order are
// scored, sorted ascending. Otherwise a copy of DefaultCombination is returned
// and the fallback is reported.
func Resolve(picks []int, k, arity int) (Combination, bool) {
	if len(picks) != k || k < arity || arity <= 0 {
		return DefaultCombination.Clone(), true
	}
	return FromPicks(picks[:arity]), false
}

// Package baskets partitions a ranked candidate pool by parity and magnitude.
package baskets

import "github.com/aristath/hunter/internal/domain"

// Basket is one parity x magnitude category
type Basket string

const (
	OddHigh  Basket = "odd-high"
	OddLow   Basket = "odd-low"
	EvenHigh Basket = "even-high"
	EvenLow  Basket = "even-low"
)

// DefaultOrder is the visitation cycle used when picking combinations
var DefaultOrder = []Basket{OddHigh, OddLow, EvenHigh, EvenLow}

// BasketOf returns the category of n for the given magnitude threshold
func BasketOf(n, threshold int) Basket {
	high := domain.IsHigh(n, threshold)
	if domain.IsOdd(n) {
		if high {
			return OddHigh
		}
		return OddLow
	}
	if high {
		return EvenHigh
	}
	return EvenLow
}

// Baskets holds the members of each category, in pool rank order
type Baskets map[Basket][]int

// Members returns the ranked members of b (nil when empty)
func (bs Baskets) Members(b Basket) []int {
	return bs[b]
}

// Size returns how many numbers the baskets hold in total
func (bs Baskets) Size() int {
	total := 0
	for _, members := range bs {
		total += len(members)
	}
	return total
}

// Classify places every pool member into exactly one basket. The pool is
// expected in rank order (descending frequency); baskets keep that order.
// All four baskets are present in the result, possibly empty.
func Classify(pool []int, threshold int) Baskets {
	bs := Baskets{
		OddHigh:  {},
		OddLow:   {},
		EvenHigh: {},
		EvenLow:  {},
	}
	for _, n := range pool {
		b := BasketOf(n, threshold)
		bs[b] = append(bs[b], n)
	}
	return bs
}

package analytics

import "github.com/aristath/hunter/internal/domain"

// TailHistogram counts drawn numbers by last decimal digit (index = digit)
type TailHistogram [domain.DigitBase]int

// TailDistribution aggregates numbers by n mod 10
func TailDistribution(numbers []int) TailHistogram {
	var hist TailHistogram
	for _, n := range numbers {
		hist[domain.TailDigit(n)]++
	}
	return hist
}

// Hottest returns the digit with the highest count (lowest digit on ties)
func (h TailHistogram) Hottest() int {
	best := 0
	for digit := 1; digit < len(h); digit++ {
		if h[digit] > h[best] {
			best = digit
		}
	}
	return best
}

// Package analytics computes the descriptive statistics of a draw history:
// frequency, gap (recency), tail-digit distribution and parity balance.
package analytics

import (
	"sort"

	"github.com/aristath/hunter/internal/domain"
)

// FrequencyTable maps a number to how many draws contained it.
// Numbers that never appeared have no entry; use Count to read them as zero.
type FrequencyTable map[int]int

// Count returns the occurrences of n, zero if it never appeared
func (f FrequencyTable) Count(n int) int {
	return f[n]
}

// Total returns the sum of all counts
func (f FrequencyTable) Total() int {
	total := 0
	for _, c := range f {
		total += c
	}
	return total
}

// CountFrequencies tallies every number across the history in a single pass
func CountFrequencies(history domain.KenoHistory) FrequencyTable {
	table := make(FrequencyTable, domain.KenoMaxNumber)
	for _, draw := range history {
		for _, n := range draw {
			table[n]++
		}
	}
	return table
}

// RankedNumber is one row of the hot-number ranking
type RankedNumber struct {
	Gap    *int `json:"gap"` // nil when the number has not been seen in the window
	Number int  `json:"number"`
	Count  int  `json:"count"`
}

// TopNumbers returns up to n numbers ordered by descending count, ties broken by
// ascending number. Only numbers that appeared are ranked.
func TopNumbers(freq FrequencyTable, n int) []int {
	numbers := make([]int, 0, len(freq))
	for num, c := range freq {
		if c > 0 {
			numbers = append(numbers, num)
		}
	}

	sort.Slice(numbers, func(i, j int) bool {
		ci, cj := freq[numbers[i]], freq[numbers[j]]
		if ci != cj {
			return ci > cj
		}
		return numbers[i] < numbers[j]
	})

	if n >= 0 && n < len(numbers) {
		numbers = numbers[:n]
	}
	return numbers
}

// Rank builds the top-n ranking with counts and gaps attached
func Rank(freq FrequencyTable, gaps GapTable, n int) []RankedNumber {
	top := TopNumbers(freq, n)

	ranking := make([]RankedNumber, 0, len(top))
	for _, num := range top {
		row := RankedNumber{Number: num, Count: freq[num]}
		if gap, ok := gaps.Get(num); ok {
			row.Gap = &gap
		}
		ranking = append(ranking, row)
	}
	return ranking
}

package analytics

import "github.com/aristath/hunter/internal/domain"

// DigitTally counts how often each digit appeared at one position
type DigitTally [domain.DigitBase]int

// Mode returns the most frequent digit. Ties resolve to the lowest digit.
func (d DigitTally) Mode() int {
	mode := 0
	for digit := 1; digit < len(d); digit++ {
		if d[digit] > d[mode] {
			mode = digit
		}
	}
	return mode
}

// CountDigits tallies digits independently for hundreds, tens and units
func CountDigits(history domain.PositionalHistory) [domain.PositionalDigits]DigitTally {
	var tallies [domain.PositionalDigits]DigitTally
	for _, triple := range history {
		for p, digit := range triple {
			tallies[p][digit]++
		}
	}
	return tallies
}

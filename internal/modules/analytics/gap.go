package analytics

import "github.com/aristath/hunter/internal/domain"

// GapTable maps a number to how many of the most recent draws passed since it
// last appeared (0 = it is in the latest draw). Numbers absent from the whole
// history have no entry.
type GapTable map[int]int

// Get returns the gap of n and whether n was seen at all
func (g GapTable) Get(n int) (int, bool) {
	gap, ok := g[n]
	return gap, ok
}

// GapOrZero returns the gap of n, treating unseen numbers as zero
func (g GapTable) GapOrZero(n int) int {
	return g[n]
}

// TrackGaps scans the history from the latest draw backwards and records, for
// each number, the distance of the first draw that contains it.
func TrackGaps(history domain.KenoHistory) GapTable {
	gaps := make(GapTable, domain.KenoMaxNumber)
	for distance := 0; distance < len(history); distance++ {
		draw := history[len(history)-1-distance]
		for _, n := range draw {
			if _, seen := gaps[n]; !seen {
				gaps[n] = distance
			}
		}
		if len(gaps) == domain.KenoMaxNumber {
			break
		}
	}
	return gaps
}

package analytics

import (
	"testing"

	"github.com/aristath/hunter/internal/domain"
	"github.com/aristath/hunter/internal/modules/draws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackGaps(t *testing.T) {
	history := domain.KenoHistory{
		{5, 9, 12}, // distance 3
		{9, 40},    // distance 2
		{12},       // distance 1
		{5, 77},    // distance 0
	}

	gaps := TrackGaps(history)

	tests := []struct {
		number  int
		wantGap int
		wantOK  bool
	}{
		{5, 0, true},
		{77, 0, true},
		{12, 1, true},
		{9, 2, true},
		{40, 2, true},
		{1, 0, false},
	}

	for _, tt := range tests {
		gap, ok := gaps.Get(tt.number)
		assert.Equal(t, tt.wantOK, ok, "number %d", tt.number)
		assert.Equal(t, tt.wantGap, gap, "number %d", tt.number)
	}
	assert.Equal(t, 0, gaps.GapOrZero(1))
}

func TestTrackGaps_LatestDrawIsZero(t *testing.T) {
	history, err := draws.NewSeededSimulator(draws.DefaultSeed).GenerateKeno(200)
	require.NoError(t, err)

	gaps := TrackGaps(history)

	for _, n := range history.Latest() {
		gap, ok := gaps.Get(n)
		require.True(t, ok)
		assert.Equal(t, 0, gap)
	}
	for n, gap := range gaps {
		assert.Less(t, gap, len(history), "number %d", n)
		assert.True(t, history[len(history)-1-gap].Contains(n))
	}
}

func TestTrackGaps_Empty(t *testing.T) {
	assert.Empty(t, TrackGaps(nil))
}

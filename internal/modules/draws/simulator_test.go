package draws

import (
	"errors"
	"testing"

	"github.com/aristath/hunter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeno_DrawShape(t *testing.T) {
	sim := NewSeededSimulator(DefaultSeed)

	history, err := sim.GenerateKeno(300)
	require.NoError(t, err)
	require.Len(t, history, 300)

	for i, draw := range history {
		require.Len(t, draw, domain.KenoDrawSize, "draw %d", i)

		seen := make(map[int]bool, len(draw))
		for _, n := range draw {
			assert.GreaterOrEqual(t, n, domain.KenoMinNumber)
			assert.LessOrEqual(t, n, domain.KenoMaxNumber)
			assert.False(t, seen[n], "draw %d repeats %d", i, n)
			seen[n] = true
		}
		assert.IsIncreasing(t, []int(draw))
	}
}

func TestGeneratePositional_DrawShape(t *testing.T) {
	sim := NewSeededSimulator(DefaultSeed)

	history, err := sim.GeneratePositional(1000)
	require.NoError(t, err)
	require.Len(t, history, 1000)

	seen := make(map[int]bool)
	for _, triple := range history {
		for _, digit := range triple {
			assert.GreaterOrEqual(t, digit, 0)
			assert.Less(t, digit, domain.DigitBase)
			seen[digit] = true
		}
	}
	// 3000 uniform digits cover every value
	assert.Len(t, seen, domain.DigitBase)
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := NewSeededSimulator(7).GenerateKeno(50)
	require.NoError(t, err)
	second, err := NewSeededSimulator(7).GenerateKeno(50)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := NewSeededSimulator(8).GenerateKeno(50)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	p1, err := NewSeededSimulator(7).GeneratePositional(50)
	require.NoError(t, err)
	p2, err := NewSeededSimulator(7).GeneratePositional(50)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestGenerate_NegativePeriods(t *testing.T) {
	sim := NewSeededSimulator(DefaultSeed)

	_, err := sim.GenerateKeno(-1)
	assert.True(t, errors.Is(err, domain.ErrInvalidPeriods))

	_, err = sim.GeneratePositional(-1)
	assert.True(t, errors.Is(err, domain.ErrInvalidPeriods))

	history, err := sim.GenerateKeno(0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

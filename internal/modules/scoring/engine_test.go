package scoring

import (
	"testing"

	"github.com/aristath/hunter/internal/modules/analytics"
	"github.com/aristath/hunter/internal/modules/draws"
	"github.com/aristath/hunter/internal/modules/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contributions(r Report) map[Criterion]int {
	out := make(map[Criterion]int, len(r.Criteria))
	for _, c := range r.Criteria {
		out[c.Criterion] = c.Contribution
	}
	return out
}

func TestScore_PerfectCombination(t *testing.T) {
	engine := NewEngine(StandardConfig())
	// 2 odd / 2 even, 2 high / 2 low, tails 7,2,4,1, average gap 3
	combination := []int{7, 12, 44, 61}
	gaps := analytics.GapTable{7: 2, 12: 4, 44: 3, 61: 3}

	report := engine.Score(combination, gaps)

	assert.Equal(t, 100, report.Score)
	assert.True(t, report.Elite())
	assert.InDelta(t, 3.0, report.AverageGap, 1e-9)
	require.Len(t, report.Criteria, 4)
	for _, c := range report.Criteria {
		assert.True(t, c.Passed, c.Criterion)
		assert.NotEmpty(t, c.Rationale)
	}
	assert.Equal(t, []Criterion{CriterionParity, CriterionMagnitude, CriterionTailDiversity, CriterionGapMomentum},
		[]Criterion{report.Criteria[0].Criterion, report.Criteria[1].Criterion,
			report.Criteria[2].Criterion, report.Criteria[3].Criterion})
}

func TestScore_Criteria(t *testing.T) {
	engine := NewEngine(StandardConfig())
	highGaps := analytics.GapTable{}
	for n := 1; n <= 80; n++ {
		highGaps[n] = 5
	}

	tests := []struct {
		name        string
		combination []int
		gaps        analytics.GapTable
		want        map[Criterion]int
		wantScore   int
	}{
		{
			name:        "three odd",
			combination: []int{7, 13, 44, 61},
			gaps:        highGaps,
			want:        map[Criterion]int{CriterionParity: 0, CriterionMagnitude: 25, CriterionTailDiversity: 25, CriterionGapMomentum: 25},
			wantScore:   75,
		},
		{
			name:        "three high",
			combination: []int{7, 52, 44, 61},
			gaps:        highGaps,
			want:        map[Criterion]int{CriterionParity: 25, CriterionMagnitude: 0, CriterionTailDiversity: 25, CriterionGapMomentum: 25},
			wantScore:   75,
		},
		{
			name:        "three distinct tails earns partial credit",
			combination: []int{1, 12, 44, 61},
			gaps:        highGaps,
			want:        map[Criterion]int{CriterionParity: 25, CriterionMagnitude: 25, CriterionTailDiversity: 15, CriterionGapMomentum: 25},
			wantScore:   90,
		},
		{
			name:        "two distinct tails",
			combination: []int{1, 12, 42, 61},
			gaps:        highGaps,
			want:        map[Criterion]int{CriterionParity: 25, CriterionMagnitude: 25, CriterionTailDiversity: 0, CriterionGapMomentum: 25},
			wantScore:   75,
		},
		{
			name:        "missing gaps count as zero",
			combination: []int{7, 12, 44, 61},
			gaps:        analytics.GapTable{7: 7},
			want:        map[Criterion]int{CriterionParity: 25, CriterionMagnitude: 25, CriterionTailDiversity: 25, CriterionGapMomentum: 0},
			wantScore:   75,
		},
		{
			name:        "gap exactly at threshold",
			combination: []int{7, 12, 44, 61},
			gaps:        analytics.GapTable{7: 8},
			want:        map[Criterion]int{CriterionParity: 25, CriterionMagnitude: 25, CriterionTailDiversity: 25, CriterionGapMomentum: 25},
			wantScore:   100,
		},
		{
			name:        "nothing balanced",
			combination: []int{1, 11, 21, 31},
			gaps:        analytics.GapTable{},
			want:        map[Criterion]int{CriterionParity: 0, CriterionMagnitude: 0, CriterionTailDiversity: 0, CriterionGapMomentum: 0},
			wantScore:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := engine.Score(tt.combination, tt.gaps)

			assert.Equal(t, tt.wantScore, report.Score)
			assert.Equal(t, tt.want, contributions(report))
		})
	}
}

func TestScore_EmptyCombination(t *testing.T) {
	engine := NewEngine(StandardConfig())

	report := engine.Score(nil, analytics.GapTable{1: 10})

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, 0.0, report.AverageGap)
	require.Len(t, report.Criteria, 4)
	assert.False(t, report.Criteria[3].Passed)
}

func TestScore_IncompleteCombinationDividesByArity(t *testing.T) {
	engine := NewEngine(StandardConfig())

	// Sum of gaps 6 over the fixed arity 4 -> 1.5, below 2
	report := engine.Score([]int{7, 44}, analytics.GapTable{7: 3, 44: 3})

	assert.InDelta(t, 1.5, report.AverageGap, 1e-9)
	assert.Equal(t, 0, contributions(report)[CriterionGapMomentum])
	assert.Equal(t, 0, contributions(report)[CriterionParity])
}

func TestScore_IgnoresNumbersBeyondArity(t *testing.T) {
	engine := NewEngine(StandardConfig())

	gaps := analytics.GapTable{}
	for n := 1; n <= 8; n++ {
		gaps[n] = 1
	}

	// only 1..4 are scored: mean gap 1, odd/even 2:2, all low
	report := engine.Score([]int{1, 2, 3, 4, 5, 6, 7, 8}, gaps)

	assert.InDelta(t, 1.0, report.AverageGap, 1e-9)
	assert.Equal(t, 0, contributions(report)[CriterionGapMomentum])
	assert.Equal(t, CriterionPoints, contributions(report)[CriterionParity])
	assert.Equal(t, 0, contributions(report)[CriterionMagnitude])
	assert.Equal(t, CriterionPoints, contributions(report)[CriterionTailDiversity])
	assert.Equal(t, 50, report.Score)
}

func TestScore_StrictProfile(t *testing.T) {
	gaps := analytics.GapTable{7: 2, 12: 2, 44: 3, 61: 3} // average 2.5

	standard := NewEngine(StandardConfig()).Score([]int{7, 12, 44, 61}, gaps)
	strict := NewEngine(StrictConfig()).Score([]int{7, 12, 44, 61}, gaps)

	assert.Equal(t, 100, standard.Score)
	assert.Equal(t, 75, strict.Score)
}

func TestScore_AlwaysMultipleOfFive(t *testing.T) {
	engine := NewEngine(StandardConfig())

	for seed := uint64(1); seed <= 25; seed++ {
		history, err := draws.NewSeededSimulator(seed).GenerateKeno(120)
		require.NoError(t, err)
		gaps := analytics.TrackGaps(history)

		for _, draw := range history[:10] {
			combo := selection.Combination(draw[:4])
			report := engine.Score(combo, gaps)
			assert.GreaterOrEqual(t, report.Score, 0)
			assert.LessOrEqual(t, report.Score, 100)
			assert.Zero(t, report.Score%5, "score %d", report.Score)
		}
	}
}

func TestConfigForProfile(t *testing.T) {
	cfg, err := ConfigForProfile("")
	require.NoError(t, err)
	assert.Equal(t, StandardConfig(), cfg)

	cfg, err = ConfigForProfile(ProfileStrict)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.MinAverageGap)

	_, err = ConfigForProfile("reckless")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, StandardConfig().Validate())
	require.NoError(t, StrictConfig().Validate())

	odd := StandardConfig()
	odd.Arity = 3
	assert.ErrorIs(t, odd.Validate(), ErrInvalidConfig)

	badTier := StandardConfig()
	badTier.TailTiers = []TailTier{{MinDistinct: 3, Points: 12}}
	assert.ErrorIs(t, badTier.Validate(), ErrInvalidConfig)

	negative := StandardConfig()
	negative.MinAverageGap = -1
	assert.ErrorIs(t, negative.Validate(), ErrInvalidConfig)
}

func TestScore_TierOrderIndependent(t *testing.T) {
	cfg := StandardConfig()
	cfg.TailTiers = []TailTier{{MinDistinct: 3, Points: 15}, {MinDistinct: 4, Points: 25}}

	report := NewEngine(cfg).Score([]int{7, 12, 44, 61}, analytics.GapTable{})

	assert.Equal(t, 25, contributions(report)[CriterionTailDiversity])
}

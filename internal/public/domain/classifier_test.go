package domain

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_OrdersDescendingWithStableTies(t *testing.T) {
	scores := Scores{R: 10, I: 20, A: 10, S: 20, E: 5, C: 10}

	profile := Classify(scores, 25)

	types := make([]RiasecType, 0, len(profile.Ranked))
	for _, ts := range profile.Ranked {
		types = append(types, ts.Type)
	}
	assert.Equal(t, []RiasecType{Investigative, Social, Realistic, Artistic, Conventional, Enterprising}, types)
	assert.Equal(t, Investigative, profile.Dominant.Type)
	assert.Equal(t, []RiasecType{Investigative, Social, Realistic}, profile.TopTypes())
	assert.Equal(t, 25, profile.MaxScore)

	for i, ts := range profile.Ranked {
		assert.Equal(t, i+1, ts.Rank)
		assert.Equal(t, i < TopCount, ts.Top)
	}
}

func TestClassify_AllEqualKeepsEnumerationOrder(t *testing.T) {
	profile := Classify(Scores{}, 25)

	for i, ts := range profile.Ranked {
		assert.Equal(t, AllRiasecTypes[i], ts.Type)
		assert.Zero(t, ts.Percentage)
	}
	assert.Equal(t, Realistic, profile.Dominant.Type)
}

func TestClassify_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const maxScore = 25
	for round := 0; round < 200; round++ {
		var scores Scores
		for _, typ := range AllRiasecTypes {
			scores = scores.Add(typ, rng.Intn(maxScore+1))
		}

		profile := Classify(scores, maxScore)
		require.Len(t, profile.Ranked, len(AllRiasecTypes))

		for i := 1; i < len(profile.Ranked); i++ {
			prev, cur := profile.Ranked[i-1], profile.Ranked[i]
			require.GreaterOrEqual(t, prev.Score, cur.Score)
			if prev.Score == cur.Score {
				require.Less(t, prev.Type.index(), cur.Type.index(), "ties must keep enumeration order")
			}
		}
		for _, ts := range profile.Ranked {
			want := int(math.Round(100 * float64(ts.Score) / maxScore))
			assert.Equal(t, want, ts.Percentage)
			assert.GreaterOrEqual(t, ts.Percentage, 0)
			assert.LessOrEqual(t, ts.Percentage, 100)
		}
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, max, want int
	}{
		{25, 25, 100},
		{0, 25, 0},
		{13, 25, 52},
		{1, 3, 33},
		{2, 3, 67},
		{5, 0, 0},
		{5, -1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.score, tt.max), "Percentage(%d,%d)", tt.score, tt.max)
	}
}

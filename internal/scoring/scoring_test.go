package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeminuswork/readiness-check/internal/types"
)

func uniformRatings(value int) types.RatingSet {
	ratings := make(types.RatingSet, len(types.Themes))
	for _, t := range types.Themes {
		vals := make([]int, types.QuestionsPerTheme)
		for i := range vals {
			vals[i] = value
		}
		ratings[t] = vals
	}
	return ratings
}

func TestComputeScores_AllFives(t *testing.T) {
	scores := ComputeScores(uniformRatings(5))

	require.Len(t, scores, len(types.Themes))
	for _, theme := range types.Themes {
		assert.Equal(t, 5, scores[theme])
	}
	assert.Equal(t, 5, Overall(scores))
}

func TestComputeScores_RoundHalfUp(t *testing.T) {
	ratings := types.RatingSet{
		types.ThemePurpose: {5, 5, 5, 6}, // mean 5.25 -> 5
		types.ThemeSocial:  {5, 5, 6, 6}, // mean 5.5 -> 6
		types.ThemeHealth:  {0, 0, 0, 1}, // mean 0.25 -> 0
	}
	scores := ComputeScores(ratings)

	assert.Equal(t, 5, scores[types.ThemePurpose])
	assert.Equal(t, 6, scores[types.ThemeSocial])
	assert.Equal(t, 0, scores[types.ThemeHealth])
}

func TestComputeScores_EmptyThemeScoresZero(t *testing.T) {
	scores := ComputeScores(types.RatingSet{types.ThemePurpose: {}})
	assert.Equal(t, 0, scores[types.ThemePurpose])
}

func TestComputeScores_BoundsHold(t *testing.T) {
	for _, ratings := range []types.RatingSet{
		uniformRatings(0),
		uniformRatings(types.RatingMax),
		{types.ThemePurpose: {0, 10, 3, 7}},
	} {
		scores := ComputeScores(ratings)
		for theme, s := range scores {
			assert.GreaterOrEqual(t, s, 0, "theme %s", theme)
			assert.LessOrEqual(t, s, types.RatingMax, "theme %s", theme)
		}
		overall := Overall(scores)
		assert.GreaterOrEqual(t, overall, 0)
		assert.LessOrEqual(t, overall, types.RatingMax)
	}
}

func TestOverall_EmptyScoreSet(t *testing.T) {
	assert.Equal(t, 0, Overall(types.ScoreSet{}))
}

func TestOverall_OneStrongTheme(t *testing.T) {
	ratings := uniformRatings(0)
	ratings[types.ThemeHealth] = []int{10, 10, 10, 10}
	scores := ComputeScores(ratings)

	// round(10/6) = 2 with half-up rounding
	assert.Equal(t, 2, Overall(scores))
	top := TopThemes(scores, 3)
	require.NotEmpty(t, top)
	assert.Equal(t, types.ThemeHealth, top[0])
}

func TestTopThemes_TiesUseDeclaredOrder(t *testing.T) {
	scores := types.ScoreSet{}
	for _, theme := range types.Themes {
		scores[theme] = 5
	}

	top := TopThemes(scores, 3)
	assert.Equal(t, []types.Theme{types.ThemePurpose, types.ThemeSocial, types.ThemeHealth}, top)

	// Repeated calls return the same ordering.
	assert.Equal(t, top, TopThemes(scores, 3))
}

func TestTopThemes_SortsByScoreDescending(t *testing.T) {
	scores := types.ScoreSet{
		types.ThemePurpose:    3,
		types.ThemeSocial:     8,
		types.ThemeHealth:     8,
		types.ThemeLearning:   1,
		types.ThemeAdventure:  9,
		types.ThemeGivingBack: 5,
	}

	top := TopThemes(scores, 4)
	assert.Equal(t, []types.Theme{
		types.ThemeAdventure,
		types.ThemeSocial, // ties with Health, declared order wins
		types.ThemeHealth,
		types.ThemeGivingBack,
	}, top)
}

func TestBottomThemes_SortsByScoreAscending(t *testing.T) {
	scores := types.ScoreSet{
		types.ThemePurpose:   3,
		types.ThemeSocial:    8,
		types.ThemeHealth:    1,
		types.ThemeLearning:  1,
		types.ThemeAdventure: 9,
	}

	bottom := BottomThemes(scores, 2)
	assert.Equal(t, []types.Theme{types.ThemeHealth, types.ThemeLearning}, bottom)
}

func TestTopThemes_NLargerThanScoreSet(t *testing.T) {
	scores := types.ScoreSet{types.ThemePurpose: 5}
	assert.Len(t, TopThemes(scores, 10), 1)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 2, roundHalfUp(1.5))
	assert.Equal(t, 1, roundHalfUp(1.49))
	assert.Equal(t, 2, roundHalfUp(2.4))
	assert.Equal(t, 3, roundHalfUp(2.5))
	assert.Equal(t, 0, roundHalfUp(0.0))
}

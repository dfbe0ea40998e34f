// Package scoring reduces raw per-question ratings into per-theme scores and
// an overall readiness score.
package scoring

import (
	"math"
	"sort"

	"github.com/lifeminuswork/readiness-check/internal/types"
)

// ComputeScores derives the per-theme integer scores from a RatingSet.
// Each score is the round-half-up mean of the theme's ratings; a theme with
// no ratings scores 0.
func ComputeScores(ratings types.RatingSet) types.ScoreSet {
	scores := make(types.ScoreSet, len(ratings))
	for theme, vals := range ratings {
		scores[theme] = roundedMean(vals)
	}
	return scores
}

// Overall derives the overall readiness score: the round-half-up mean of all
// per-theme scores. An empty ScoreSet scores 0.
func Overall(scores types.ScoreSet) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return roundHalfUp(float64(sum) / float64(len(scores)))
}

// TopThemes returns up to n themes ordered by score descending. Ties are
// broken by declared theme order, so the ranking is stable across calls.
func TopThemes(scores types.ScoreSet, n int) []types.Theme {
	return rankThemes(scores, n, false)
}

// BottomThemes returns up to n themes ordered by score ascending, ties broken
// by declared theme order.
func BottomThemes(scores types.ScoreSet, n int) []types.Theme {
	return rankThemes(scores, n, true)
}

func rankThemes(scores types.ScoreSet, n int, ascending bool) []types.Theme {
	// Start from declared order so the stable sort preserves it on ties.
	ranked := make([]types.Theme, 0, len(scores))
	for _, t := range types.Themes {
		if _, ok := scores[t]; ok {
			ranked = append(ranked, t)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ascending {
			return scores[ranked[i]] < scores[ranked[j]]
		}
		return scores[ranked[i]] > scores[ranked[j]]
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func roundedMean(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return roundHalfUp(float64(sum) / float64(len(vals)))
}

// roundHalfUp rounds to the nearest integer with exact halves rounding up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

package types

// RatingSet maps each theme to the ordered per-question ratings entered by the
// user. Ratings are integers in [0, RatingMax].
type RatingSet map[Theme][]int

// ScoreSet maps each theme to its derived integer score (rounded mean of the
// theme's ratings). Scores lie in [0, RatingMax].
type ScoreSet map[Theme]int

// DefaultRatings returns a RatingSet with every question preset to the slider
// midpoint, mirroring the initial state of the questionnaire form.
func DefaultRatings() RatingSet {
	ratings := make(RatingSet, len(Themes))
	for _, t := range Themes {
		vals := make([]int, len(Questions[t]))
		for i := range vals {
			vals[i] = RatingMax / 2
		}
		ratings[t] = vals
	}
	return ratings
}

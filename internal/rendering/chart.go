package rendering

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/lifeminuswork/readiness-check/internal/types"
)

// BuildChartPNG renders the theme snapshot bar chart: one bar per theme in
// declared theme order (not score order), y-axis fixed at the rating maximum,
// abbreviated theme labels.
func BuildChartPNG(scores types.ScoreSet) ([]byte, error) {
	bars := make([]chart.Value, 0, len(types.Themes))
	for _, t := range types.Themes {
		bars = append(bars, chart.Value{
			Label: types.Label(t),
			Value: float64(scores[t]),
		})
	}

	graph := chart.BarChart{
		Title:      "Theme Snapshot",
		Width:      700,
		Height:     300,
		BarWidth:   64,
		BarSpacing: 24,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(types.RatingMax)},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, &ChartError{Message: "failed to render theme chart", Cause: err}
	}
	return buf.Bytes(), nil
}

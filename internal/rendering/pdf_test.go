package rendering

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeminuswork/readiness-check/internal/types"
)

func sampleScores() types.ScoreSet {
	scores := make(types.ScoreSet, len(types.Themes))
	for i, theme := range types.Themes {
		scores[theme] = i + 3
	}
	return scores
}

func sampleContent() types.ReportContent {
	return types.ReportContent{
		Archetype:         "The Builder",
		Headline:          "A calm next chapter",
		CoreNeed:          "Unhurried mornings",
		Metaphor:          "A familiar trail with a new map",
		SignatureSentence: "Growth and Connection anchor this season.",
		Insights:          []string{"Momentum is cheap where curiosity lives."},
		WhyNow:            "Small moves made early compound.",
		FutureSnapshot:    "A week that feels chosen.",
		Strengths:         []string{"Curiosity"},
		Energizers:        []string{"Morning walks"},
		Drainers:          []string{"Shapeless afternoons"},
		HiddenTensions:    []string{"Wanting novelty, keeping routine"},
		WatchOut:          "Do not over-plan the first month.",
		Actions:           []string{"Invite someone for a walk."},
		IfThen: []types.ListItem{
			types.PlainItem("If the morning drags then take a walk"),
			types.StructuredItem(map[string]string{"condition": "it rains", "consequence": "stretch indoors"}),
		},
		WeekPlan: []types.ListItem{
			types.StructuredItem(map[string]string{"day": "Mon", "focus": "Vitality", "plan": "20-minute walk"}),
			types.PlainItem("Tue: one small rep"),
		},
		BalancingOpportunity: "Give Contribution a tiny weekly rep.",
		Checklist:            []string{"One walk taken"},
		SignatureWeek:        []string{"A morning that starts with movement"},
		ProgressTracker: []types.ListItem{
			types.StructuredItem(map[string]string{"metric": "Walks", "target": "3 this week"}),
		},
	}
}

func TestBuildPDF_ProducesDocument(t *testing.T) {
	pdf, err := BuildPDF("Ada", sampleScores(), 5, sampleContent(), "I want slower mornings.")
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestBuildPDF_EmptyNameAndReflection(t *testing.T) {
	pdf, err := BuildPDF("", sampleScores(), 5, sampleContent(), "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestBuildPDF_TotalOnEmptyContent(t *testing.T) {
	// A fully empty (but well-typed) ReportContent must still render.
	pdf, err := BuildPDF("Ada", types.ScoreSet{}, 0, types.ReportContent{}, "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestBuildPDF_TypographicInputSurvives(t *testing.T) {
	content := sampleContent()
	content.Headline = "A “calm” next chapter — really…"
	pdf, err := BuildPDF("Ada", sampleScores(), 5, content, "café → park")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestSplitIfThen_PlainString(t *testing.T) {
	cond, cons, ok := SplitIfThen(types.PlainItem("If the morning drags then take a walk"))
	require.True(t, ok)
	assert.Equal(t, "the morning drags", cond)
	assert.Equal(t, "take a walk", cons)
}

func TestSplitIfThen_PlainStringCaseInsensitive(t *testing.T) {
	cond, cons, ok := SplitIfThen(types.PlainItem("if it rains, Then stretch indoors"))
	require.True(t, ok)
	assert.Equal(t, "it rains", cond)
	assert.Equal(t, "stretch indoors", cons)
}

func TestSplitIfThen_StructuredPair(t *testing.T) {
	item := types.StructuredItem(map[string]string{"condition": "X", "consequence": "Y"})
	cond, cons, ok := SplitIfThen(item)
	require.True(t, ok)
	assert.Equal(t, "X", cond)
	assert.Equal(t, "Y", cons)
}

func TestSplitIfThen_EquivalentShapes(t *testing.T) {
	// A plain "If X then Y" and a {condition, consequence} pair must yield
	// the same emphasized parts.
	plainCond, plainCons, ok1 := SplitIfThen(types.PlainItem("If X then Y"))
	structCond, structCons, ok2 := SplitIfThen(
		types.StructuredItem(map[string]string{"condition": "X", "consequence": "Y"}))

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, structCond, plainCond)
	assert.Equal(t, structCons, plainCons)
}

func TestSplitIfThen_AltFieldNames(t *testing.T) {
	item := types.StructuredItem(map[string]string{"if": "X", "then": "Y"})
	cond, cons, ok := SplitIfThen(item)
	require.True(t, ok)
	assert.Equal(t, "X", cond)
	assert.Equal(t, "Y", cons)
}

func TestSplitIfThen_UnparseableShapes(t *testing.T) {
	_, _, ok := SplitIfThen(types.PlainItem("take a walk every morning"))
	assert.False(t, ok)

	_, _, ok = SplitIfThen(types.PlainItem("If only it were simple"))
	assert.False(t, ok)

	_, _, ok = SplitIfThen(types.StructuredItem(map[string]string{"day": "Mon"}))
	assert.False(t, ok)
}

func TestFormatItem_PlainText(t *testing.T) {
	assert.Equal(t, "Tue: one small rep", formatItem(types.PlainItem("Tue: one small rep"), []string{"day", "focus", "plan"}))
}

func TestFormatItem_WeekPlanTriple(t *testing.T) {
	item := types.StructuredItem(map[string]string{"day": "Mon", "focus": "Vitality", "plan": "20-minute walk"})
	assert.Equal(t, "Mon - Vitality: 20-minute walk", formatItem(item, []string{"day", "focus", "plan"}))
}

func TestFormatItem_TrackerPair(t *testing.T) {
	item := types.StructuredItem(map[string]string{"metric": "Walks", "target": "3 this week"})
	assert.Equal(t, "Walks: 3 this week", formatItem(item, []string{"metric", "target"}))
}

func TestFormatItem_UnknownShapeDegrades(t *testing.T) {
	item := types.StructuredItem(map[string]string{"surprise": "value"})
	assert.Equal(t, "surprise: value", formatItem(item, []string{"day", "focus", "plan"}))
}

package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeminuswork/readiness-check/internal/types"
)

func assertFullyPopulated(t *testing.T, content types.ReportContent) {
	t.Helper()
	assert.NotEmpty(t, content.Archetype)
	assert.NotEmpty(t, content.Headline)
	assert.NotEmpty(t, content.CoreNeed)
	assert.NotEmpty(t, content.Metaphor)
	assert.NotEmpty(t, content.SignatureSentence)
	assert.NotEmpty(t, content.Insights)
	assert.NotEmpty(t, content.WhyNow)
	assert.NotEmpty(t, content.FutureSnapshot)
	assert.NotEmpty(t, content.WatchOut)
	assert.NotEmpty(t, content.Actions)
	assert.NotEmpty(t, content.IfThen)
	assert.NotEmpty(t, content.WeekPlan)
	assert.NotEmpty(t, content.BalancingOpportunity)
	assert.NotEmpty(t, content.Checklist)
	assert.NotEmpty(t, content.SignatureWeek)
	assert.NotEmpty(t, content.ProgressTracker)
}

func TestFallbackReport_FullyPopulated(t *testing.T) {
	content := FallbackReport(Request{FirstName: "Ada", Scores: allFivesScores(), Overall: 5})
	assertFullyPopulated(t, content)
	assert.NotEmpty(t, content.Strengths)
	assert.NotEmpty(t, content.Drainers)
}

func TestFallbackReport_AllEqualScores(t *testing.T) {
	content := FallbackReport(Request{Scores: allFivesScores(), Overall: 5})

	assertFullyPopulated(t, content)
	// Ties resolve by declared theme order for both rankings, so with all
	// scores equal the same two themes anchor the signature and the
	// balancing opportunity. Odd-looking but deterministic.
	assert.Contains(t, content.SignatureSentence, "Identity")
	assert.Contains(t, content.SignatureSentence, "Connection")
	assert.Contains(t, content.BalancingOpportunity, "Identity")
	assert.Contains(t, content.BalancingOpportunity, "Connection")
}

func TestFallbackReport_EmptyScoreSet(t *testing.T) {
	content := FallbackReport(Request{Scores: types.ScoreSet{}})
	assertFullyPopulated(t, content)
}

func TestFallbackReport_TopThemesAnchorSignature(t *testing.T) {
	scores := allFivesScores()
	scores[types.ThemeAdventure] = 9
	scores[types.ThemeGivingBack] = 8
	scores[types.ThemeHealth] = 1
	scores[types.ThemeLearning] = 2

	content := FallbackReport(Request{Scores: scores, Overall: 5})

	assert.Contains(t, content.SignatureSentence, "Adventure")
	assert.Contains(t, content.SignatureSentence, "Contribution")
	assert.Contains(t, content.BalancingOpportunity, "Vitality")
	assert.Contains(t, content.BalancingOpportunity, "Growth")
}

func TestFallbackReport_WeekPlanStructure(t *testing.T) {
	content := FallbackReport(Request{Scores: allFivesScores(), Overall: 5})

	require.Len(t, content.WeekPlan, 7)
	for _, item := range content.WeekPlan {
		assert.False(t, item.IsPlain())
		assert.NotEmpty(t, item.Field("day"))
		assert.NotEmpty(t, item.Field("focus"))
		assert.NotEmpty(t, item.Field("plan"))
	}
	assert.Equal(t, "Mon", content.WeekPlan[0].Field("day"))
}

func TestFallbackReport_ArchetypeBands(t *testing.T) {
	cases := []struct {
		overall  int
		expected string
	}{
		{9, "The Pathfinder"},
		{8, "The Pathfinder"},
		{6, "The Builder"},
		{4, "The Explorer"},
		{2, "The Early Mapper"},
		{0, "The Early Mapper"},
	}
	for _, tc := range cases {
		content := FallbackReport(Request{Scores: allFivesScores(), Overall: tc.overall})
		assert.Equal(t, tc.expected, content.Archetype, "overall %d", tc.overall)
	}
}

func TestFallbackMini_StaticBullets(t *testing.T) {
	mini := FallbackMini(Request{FirstName: "Ada", Scores: allFivesScores(), Overall: 5})

	assert.Len(t, mini.TinyActions, 3)
	assert.Len(t, mini.WeekTeaser, 3)
	assert.Len(t, mini.Unlock, 4)
	assert.Contains(t, mini.Headline, "Ada")
}

func TestFallbackMini_EmptyScoresAndName(t *testing.T) {
	mini := FallbackMini(Request{})

	assert.Contains(t, mini.Headline, "friend")
	assert.NotEmpty(t, mini.TinyActions)
}

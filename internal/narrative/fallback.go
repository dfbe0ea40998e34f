package narrative

import (
	"fmt"

	"github.com/lifeminuswork/readiness-check/internal/scoring"
	"github.com/lifeminuswork/readiness-check/internal/types"
)

// themeCopy holds the fixed per-theme phrases the deterministic fallback
// assembles content from.
type themeCopy struct {
	strength  string
	energizer string
	drainer   string
	tension   string
	action    string
	checklist string
}

var fallbackCopy = map[types.Theme]themeCopy{
	types.ThemePurpose: {
		strength:  "You have a grounded sense of who you are beyond a job title.",
		energizer: "Moments where your experience shapes something that matters.",
		drainer:   "Days that drift without a reason to get up that is yours.",
		tension:   "Wanting a fresh identity while still measuring yourself by the old one.",
		action:    "Write one sentence describing who you are without mentioning work.",
		checklist: "Named one part of my identity that has nothing to do with work.",
	},
	types.ThemeSocial: {
		strength:  "Your relationships reach beyond the people work handed you.",
		energizer: "Unhurried conversations with people who know the real you.",
		drainer:   "Long stretches without meaningful contact.",
		tension:   "Craving connection while waiting for others to reach out first.",
		action:    "Invite someone for a 20-minute walk this week.",
		checklist: "Reached out to one person I have been meaning to contact.",
	},
	types.ThemeHealth: {
		strength:  "You treat energy as the fuel for everything else you want.",
		energizer: "Movement, rest, and meals that leave you sharper than before.",
		drainer:   "Letting sleep and movement slide when the calendar empties.",
		tension:   "Knowing what keeps you well while postponing it to 'someday'.",
		action:    "Block 30 minutes for movement on three days this week.",
		checklist: "Kept one small health habit every day this week.",
	},
	types.ThemeLearning: {
		strength:  "Curiosity is still doing real work in your life.",
		energizer: "The first hour with a new skill, book, or idea.",
		drainer:   "Weeks where nothing stretches your mind.",
		tension:   "Wanting to grow while sticking to what you already master.",
		action:    "Pick one topic and give it a 20-minute rep this week.",
		checklist: "Spent 20 minutes learning something just for the fun of it.",
	},
	types.ThemeAdventure: {
		strength:  "You treat novelty as fuel rather than a risk.",
		energizer: "Micro-adventures that break the week's pattern.",
		drainer:   "Letting routine quietly shrink your map.",
		tension:   "A list of things to explore that never makes it to the calendar.",
		action:    "Plan one micro-adventure within 30 minutes from home.",
		checklist: "Did one thing outside my usual radius this week.",
	},
	types.ThemeGivingBack: {
		strength:  "You see how your experience can be useful to someone else.",
		energizer: "Small acts of service that fit your energy and schedule.",
		drainer:   "Feeling your know-how sit unused.",
		tension:   "Wanting to contribute while underrating what you have to offer.",
		action:    "Offer a 30-minute help session to someone this week.",
		checklist: "Made one tiny contribution to someone outside my household.",
	},
}

// archetypeFor maps an overall score band to a fallback archetype label.
func archetypeFor(overall int) string {
	switch {
	case overall >= 8:
		return "The Pathfinder"
	case overall >= 6:
		return "The Builder"
	case overall >= 4:
		return "The Explorer"
	default:
		return "The Early Mapper"
	}
}

func firstNameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// FallbackReport synthesizes a fully-populated ReportContent from the scores
// alone. It is total: it never fails and never calls an external port, so it
// works standalone when the generation port is absent or misbehaving.
func FallbackReport(req Request) types.ReportContent {
	name := firstNameOr(req.FirstName, "friend")
	top := scoring.TopThemes(req.Scores, 2)
	bottom := scoring.BottomThemes(req.Scores, 2)

	topLabels := joinLabels(top, "your strongest theme")
	bottomLabels := joinLabels(bottom, "a quieter theme")

	content := types.ReportContent{
		Archetype: archetypeFor(req.Overall),
		Headline:  fmt.Sprintf("%s, your next chapter is already taking shape.", name),
		CoreNeed:  fmt.Sprintf("A week with room for %s, on your own terms.", topLabels),
		Metaphor: "You are partway up a familiar trail with a new map in hand: " +
			"the path behind is well worn, and the next stretch is yours to choose.",
		SignatureSentence: fmt.Sprintf(
			"Right now your signature strengths are %s; they are the anchors to build the next chapter around.",
			topLabels),
		Insights: []string{},
		WhyNow: "Transitions reward small moves made early. The habits you rehearse " +
			"this month are the ones that will feel natural when the routine changes for good.",
		FutureSnapshot: fmt.Sprintf(
			"A postcard from one month ahead: %s has a week that feels chosen rather than scheduled, "+
				"with %s doing most of the heavy lifting.", name, topLabels),
		Strengths:            []string{},
		Energizers:           []string{},
		Drainers:             []string{},
		HiddenTensions:       []string{},
		WatchOut:             "Do not turn this into a productivity project. One small rep, kept gently, beats a grand plan abandoned.",
		Actions:              []string{},
		IfThen:               []types.ListItem{},
		WeekPlan:             []types.ListItem{},
		BalancingOpportunity: fmt.Sprintf("Your balancing opportunities are %s. Tiny, repeatable reps move these fastest.", bottomLabels),
		Checklist:            []string{},
		SignatureWeek:        []string{},
		ProgressTracker:      []types.ListItem{},
	}

	for _, t := range top {
		copyFor := fallbackCopy[t]
		content.Strengths = append(content.Strengths, copyFor.strength)
		content.Energizers = append(content.Energizers, copyFor.energizer)
	}
	for _, t := range bottom {
		copyFor := fallbackCopy[t]
		content.Drainers = append(content.Drainers, copyFor.drainer)
		content.HiddenTensions = append(content.HiddenTensions, copyFor.tension)
	}

	content.Insights = buildInsights(req, top, bottom)
	content.Actions = buildActions(top, bottom)
	content.IfThen = buildIfThen(top, bottom)
	content.WeekPlan = buildWeekPlan()
	content.Checklist = buildChecklist(top, bottom)
	content.SignatureWeek = []string{
		"One morning that starts with movement instead of a screen.",
		"One conversation that is not about logistics.",
		"One hour spent on something you are learning.",
		"One small thing done for someone else.",
	}
	content.ProgressTracker = []types.ListItem{
		types.StructuredItem(map[string]string{"metric": "Tiny actions completed", "target": "3 this week"}),
		types.StructuredItem(map[string]string{"metric": "Conversations beyond logistics", "target": "2 this week"}),
		types.StructuredItem(map[string]string{"metric": "Minutes of deliberate learning", "target": "60 this week"}),
	}

	return content
}

// FallbackMini synthesizes the ungated mini report without external calls.
// The bullets match the static preview copy of the questionnaire app.
func FallbackMini(req Request) types.MiniReport {
	name := firstNameOr(req.FirstName, "friend")
	headline := fmt.Sprintf("%s, a calm snapshot of your readiness is ready below.", name)
	if top := scoring.TopThemes(req.Scores, 1); len(top) > 0 {
		headline = fmt.Sprintf("%s, your %s energy is leading the way right now.", name, types.Label(top[0]))
	}

	return types.MiniReport{
		Headline: headline,
		TinyActions: []string{
			"Invite someone for a 20-minute walk this week.",
			"Plan one micro-adventure within 30 minutes from home.",
			"Offer a 30-minute help session to someone this week.",
		},
		WeekTeaser: []string{
			"Mon: choose one lever and block 10 minutes.",
			"Tue: one 20-minute skill rep.",
			"Wed: invite one person to join a quick activity.",
		},
		Unlock: []string{
			"Postcard from 1 month ahead (Future Snapshot).",
			"Personalized insights & Why Now.",
			"3 actions + If-Then plan + 1-week gentle plan.",
			"Printable checklist page + Tiny progress tracker.",
		},
	}
}

func joinLabels(themes []types.Theme, empty string) string {
	switch len(themes) {
	case 0:
		return empty
	case 1:
		return types.Label(themes[0])
	default:
		return fmt.Sprintf("%s and %s", types.Label(themes[0]), types.Label(themes[1]))
	}
}

func buildInsights(req Request, top, bottom []types.Theme) []string {
	insights := []string{
		fmt.Sprintf("Your overall readiness sits at %d/%d, which is a starting line, not a verdict.",
			req.Overall, types.RatingMax),
	}
	if len(top) > 0 {
		insights = append(insights, fmt.Sprintf(
			"%s is your strongest lever right now; lean on it when the other themes feel heavy.",
			types.Label(top[0])))
	}
	if len(bottom) > 0 {
		insights = append(insights, fmt.Sprintf(
			"%s responds quickly to small reps; it needs minutes per week, not a life overhaul.",
			types.Label(bottom[0])))
	}
	return insights
}

func buildActions(top, bottom []types.Theme) []string {
	actions := make([]string, 0, 3)
	for _, t := range append(append([]types.Theme{}, top...), bottom...) {
		actions = append(actions, fallbackCopy[t].action)
		if len(actions) == 3 {
			break
		}
	}
	if len(actions) == 0 {
		actions = append(actions, "Pick one theme and give it ten unhurried minutes today.")
	}
	return actions
}

func buildIfThen(top, bottom []types.Theme) []types.ListItem {
	items := []types.ListItem{
		types.StructuredItem(map[string]string{
			"condition":   "the morning feels shapeless",
			"consequence": "take a 20-minute walk before opening any screen",
		}),
	}
	if len(bottom) > 0 {
		items = append(items, types.StructuredItem(map[string]string{
			"condition":   "a free hour shows up midweek",
			"consequence": fmt.Sprintf("spend it on %s, not on errands", types.Label(bottom[0])),
		}))
	}
	if len(top) > 0 {
		items = append(items, types.StructuredItem(map[string]string{
			"condition":   "motivation dips",
			"consequence": fmt.Sprintf("return to %s, where momentum is cheapest", types.Label(top[0])),
		}))
	}
	return items
}

func buildWeekPlan() []types.ListItem {
	days := []struct{ day, focus, plan string }{
		{"Mon", "Time & Energy", "Block 30 minutes that belong only to you."},
		{"Tue", "Identity", "Revisit one thing you loved before your career chose for you."},
		{"Wed", "Connection", "Send one message that is not about logistics."},
		{"Thu", "Vitality", "Move for 20 minutes somewhere that is not your street."},
		{"Fri", "Growth", "One 20-minute rep on a skill you are curious about."},
		{"Sat", "Adventure", "Take the micro-adventure you planned, however small."},
		{"Sun", "Contribution", "Do one tiny act of service and notice how it lands."},
	}
	items := make([]types.ListItem, 0, len(days))
	for _, d := range days {
		items = append(items, types.StructuredItem(map[string]string{
			"day": d.day, "focus": d.focus, "plan": d.plan,
		}))
	}
	return items
}

func buildChecklist(top, bottom []types.Theme) []string {
	checklist := make([]string, 0, 4)
	for _, t := range append(append([]types.Theme{}, top...), bottom...) {
		checklist = append(checklist, fallbackCopy[t].checklist)
	}
	if len(checklist) == 0 {
		checklist = append(checklist, "Gave one theme ten unhurried minutes this week.")
	}
	return checklist
}

package narrative

import (
	"github.com/lifeminuswork/readiness-check/internal/types"
)

// NormalizeReport coerces an untrusted decoded JSON object into a fully-typed
// ReportContent. Absent, null, or wrong-typed fields become empty strings or
// empty lists; no field is ever left absent downstream.
func NormalizeReport(raw map[string]any) types.ReportContent {
	return types.ReportContent{
		Archetype:            asString(raw["archetype"]),
		Headline:             asString(raw["headline"]),
		CoreNeed:             asString(raw["core_need"]),
		Metaphor:             asString(raw["metaphor"]),
		SignatureSentence:    asString(raw["signature_sentence"]),
		Insights:             asStringList(raw["insights"]),
		WhyNow:               asString(raw["why_now"]),
		FutureSnapshot:       asString(raw["future_snapshot"]),
		Strengths:            asStringList(raw["strengths"]),
		Energizers:           asStringList(raw["energizers"]),
		Drainers:             asStringList(raw["drainers"]),
		HiddenTensions:       asStringList(raw["hidden_tensions"]),
		WatchOut:             asString(raw["watch_out"]),
		Actions:              asStringList(raw["actions"]),
		IfThen:               asItemList(raw["if_then"]),
		WeekPlan:             asItemList(raw["week_plan"]),
		BalancingOpportunity: asString(raw["balancing_opportunity"]),
		Checklist:            asStringList(raw["checklist"]),
		SignatureWeek:        asStringList(raw["signature_week"]),
		ProgressTracker:      asItemList(raw["progress_tracker"]),
	}
}

// NormalizeMini coerces an untrusted decoded JSON object into a fully-typed
// MiniReport under the same discipline as NormalizeReport.
func NormalizeMini(raw map[string]any) types.MiniReport {
	return types.MiniReport{
		Headline:    asString(raw["mini_headline"]),
		TinyActions: asStringList(raw["tiny_actions"]),
		WeekTeaser:  asStringList(raw["week_teaser"]),
		Unlock:      asStringList(raw["unlock"]),
	}
}

// asString accepts only string values; anything else coerces to "".
func asString(v any) string {
	if s, ok := v.(string); ok {
		return types.StringifyScalar(s)
	}
	return ""
}

// asStringList keeps non-empty string elements and drops everything else.
// Always returns a non-nil slice.
func asStringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// asItemList resolves each element of a string-or-structured list into a
// tagged ListItem. Unknown element shapes degrade to their string form.
// Always returns a non-nil slice.
func asItemList(v any) []types.ListItem {
	items, ok := v.([]any)
	if !ok {
		return []types.ListItem{}
	}
	out := make([]types.ListItem, 0, len(items))
	for _, item := range items {
		switch val := item.(type) {
		case string:
			if s := types.StringifyScalar(val); s != "" {
				out = append(out, types.PlainItem(s))
			}
		case map[string]any:
			fields := make(map[string]string, len(val))
			for k, fv := range val {
				fields[k] = types.StringifyScalar(fv)
			}
			out = append(out, types.StructuredItem(fields))
		case nil:
			// dropped
		default:
			if s := types.StringifyScalar(val); s != "" {
				out = append(out, types.PlainItem(s))
			}
		}
	}
	return out
}

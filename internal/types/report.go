package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ListItem is a tagged union for list fields that may carry either a plain
// sentence or a structured record (e.g. a day/focus/plan triple for a weekly
// plan, or a metric/target pair for a progress tracker). The shape is resolved
// once when the item is decoded; renderers never re-sniff raw JSON.
//
// On the wire a plain item is a JSON string and a structured item is a flat
// JSON object, matching what the generation port is asked to produce.
type ListItem struct {
	Text   string
	Fields map[string]string
}

// PlainItem wraps a plain sentence as a ListItem.
func PlainItem(text string) ListItem {
	return ListItem{Text: text}
}

// StructuredItem wraps named sub-fields as a ListItem.
func StructuredItem(fields map[string]string) ListItem {
	return ListItem{Fields: fields}
}

// IsPlain reports whether the item carries a plain sentence rather than
// structured sub-fields.
func (it ListItem) IsPlain() bool {
	return len(it.Fields) == 0
}

// Field returns the named sub-field, or "" when absent.
func (it ListItem) Field(name string) string {
	return it.Fields[name]
}

// String renders the item as a single line. Structured items join their
// sub-fields in key-sorted order; this is the degraded form used when a
// renderer has no layout rule for the item's shape.
func (it ListItem) String() string {
	if it.IsPlain() {
		return it.Text
	}
	keys := make([]string, 0, len(it.Fields))
	for k := range it.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, it.Fields[k]))
	}
	return strings.Join(parts, " - ")
}

// MarshalJSON encodes a plain item as a JSON string and a structured item as
// a flat JSON object.
func (it ListItem) MarshalJSON() ([]byte, error) {
	if it.IsPlain() {
		return json.Marshal(it.Text)
	}
	return json.Marshal(it.Fields)
}

// UnmarshalJSON resolves the union: a JSON string becomes a plain item, a
// JSON object becomes a structured item with every value stringified, and any
// other shape degrades to its string representation.
func (it *ListItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		it.Text = strings.TrimSpace(s)
		it.Fields = nil
		return nil
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err == nil {
		fields := make(map[string]string, len(m))
		for k, v := range m {
			fields[k] = StringifyScalar(v)
		}
		it.Text = ""
		it.Fields = fields
		return nil
	}

	it.Text = strings.TrimSpace(string(data))
	it.Fields = nil
	return nil
}

// StringifyScalar renders a decoded JSON scalar as a string. Strings are
// trimmed, numbers and booleans are formatted, and anything else falls back
// to fmt formatting.
func StringifyScalar(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

// ReportContent is the normalized narrative payload backing the full
// Reflection Report. After normalization every scalar field is a string
// (possibly empty) and every list field is non-nil; no field is ever absent.
type ReportContent struct {
	Archetype            string     `json:"archetype"`
	Headline             string     `json:"headline"`
	CoreNeed             string     `json:"core_need"`
	Metaphor             string     `json:"metaphor"`
	SignatureSentence    string     `json:"signature_sentence"`
	Insights             []string   `json:"insights"`
	WhyNow               string     `json:"why_now"`
	FutureSnapshot       string     `json:"future_snapshot"`
	Strengths            []string   `json:"strengths"`
	Energizers           []string   `json:"energizers"`
	Drainers             []string   `json:"drainers"`
	HiddenTensions       []string   `json:"hidden_tensions"`
	WatchOut             string     `json:"watch_out"`
	Actions              []string   `json:"actions"`
	IfThen               []ListItem `json:"if_then"`
	WeekPlan             []ListItem `json:"week_plan"`
	BalancingOpportunity string     `json:"balancing_opportunity"`
	Checklist            []string   `json:"checklist"`
	SignatureWeek        []string   `json:"signature_week"`
	ProgressTracker      []ListItem `json:"progress_tracker"`
}

// MiniReport is the normalized narrative payload for the ungated preview.
type MiniReport struct {
	Headline    string   `json:"mini_headline"`
	TinyActions []string `json:"tiny_actions"`
	WeekTeaser  []string `json:"week_teaser"`
	Unlock      []string `json:"unlock"`
}

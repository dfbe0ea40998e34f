// Package narrative produces the human-readable report content, either by
// delegating to the text-generation port or by deterministic templating when
// that port is absent or fails.
package narrative

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/lifeminuswork/readiness-check/internal/llm"
	"github.com/lifeminuswork/readiness-check/internal/prompts"
	"github.com/lifeminuswork/readiness-check/internal/types"
)

// Request carries the inputs the narrative is derived from.
type Request struct {
	FirstName  string
	Scores     types.ScoreSet
	Overall    int
	Reflection string
}

// Provider builds report content. A nil client means the generation port is
// absent; the deterministic fallback is then used without ever attempting a
// call.
type Provider struct {
	client llm.Client
}

// NewProvider creates a Provider. client may be nil.
func NewProvider(client llm.Client) *Provider {
	return &Provider{client: client}
}

// FullReport returns the full-report narrative. Delegated generation is tried
// first; its normalized output overlays the deterministic fallback so every
// field is always populated, whatever the port returned.
func (p *Provider) FullReport(ctx context.Context, req Request) types.ReportContent {
	content := FallbackReport(req)
	raw := p.generate(ctx, "full-report", llm.TierFull, req)
	if raw == nil {
		return content
	}
	overlayReport(&content, NormalizeReport(raw))
	return content
}

// MiniReport returns the preview narrative under the same two-strategy
// discipline as FullReport.
func (p *Provider) MiniReport(ctx context.Context, req Request) types.MiniReport {
	mini := FallbackMini(req)
	raw := p.generate(ctx, "mini-report", llm.TierMini, req)
	if raw == nil {
		return mini
	}
	overlayMini(&mini, NormalizeMini(raw))
	return mini
}

// generate runs one delegated generation call and decodes the returned JSON
// object. Every failure mode (absent port, transport error, non-JSON output,
// malformed JSON) yields nil; no error reaches the caller.
func (p *Provider) generate(ctx context.Context, promptKey string, tier llm.ModelTier, req Request) map[string]any {
	if p.client == nil {
		return nil
	}

	prompt, err := buildPrompt(promptKey, req)
	if err != nil {
		return nil
	}

	text, err := p.client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return nil
	}

	object := llm.ExtractJSONObject(text)
	if object == "" {
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(object), &raw); err != nil {
		return nil
	}
	return raw
}

func buildPrompt(key string, req Request) (string, error) {
	template, err := prompts.Get("narrative.json", key)
	if err != nil {
		return "", err
	}

	scoresJSON, err := json.Marshal(req.Scores)
	if err != nil {
		return "", err
	}

	return prompts.Format(template, map[string]string{
		"FirstName":  firstNameOr(req.FirstName, "friend"),
		"Scores":     string(scoresJSON),
		"Overall":    strconv.Itoa(req.Overall),
		"Reflection": req.Reflection,
	}), nil
}

// overlayReport replaces fallback fields with generated ones wherever the
// generated value is non-empty, so a partial generation result degrades field
// by field instead of all or nothing.
func overlayReport(dst *types.ReportContent, src types.ReportContent) {
	overlayString(&dst.Archetype, src.Archetype)
	overlayString(&dst.Headline, src.Headline)
	overlayString(&dst.CoreNeed, src.CoreNeed)
	overlayString(&dst.Metaphor, src.Metaphor)
	overlayString(&dst.SignatureSentence, src.SignatureSentence)
	overlayStrings(&dst.Insights, src.Insights)
	overlayString(&dst.WhyNow, src.WhyNow)
	overlayString(&dst.FutureSnapshot, src.FutureSnapshot)
	overlayStrings(&dst.Strengths, src.Strengths)
	overlayStrings(&dst.Energizers, src.Energizers)
	overlayStrings(&dst.Drainers, src.Drainers)
	overlayStrings(&dst.HiddenTensions, src.HiddenTensions)
	overlayString(&dst.WatchOut, src.WatchOut)
	overlayStrings(&dst.Actions, src.Actions)
	overlayItems(&dst.IfThen, src.IfThen)
	overlayItems(&dst.WeekPlan, src.WeekPlan)
	overlayString(&dst.BalancingOpportunity, src.BalancingOpportunity)
	overlayStrings(&dst.Checklist, src.Checklist)
	overlayStrings(&dst.SignatureWeek, src.SignatureWeek)
	overlayItems(&dst.ProgressTracker, src.ProgressTracker)
}

func overlayMini(dst *types.MiniReport, src types.MiniReport) {
	overlayString(&dst.Headline, src.Headline)
	overlayStrings(&dst.TinyActions, src.TinyActions)
	overlayStrings(&dst.WeekTeaser, src.WeekTeaser)
	overlayStrings(&dst.Unlock, src.Unlock)
}

func overlayString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func overlayStrings(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}

func overlayItems(dst *[]types.ListItem, src []types.ListItem) {
	if len(src) > 0 {
		*dst = src
	}
}

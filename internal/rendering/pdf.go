package rendering

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/lifeminuswork/readiness-check/internal/types"
)

const (
	reportTitle      = "Life Minus Work - Reflection Report"
	footerDisclaimer = "(c) Life Minus Work - a reflection aid, not professional advice"

	bodySize    = 11
	headingSize = 13
	lineHeight  = 6
)

// DefaultReportFilename is the canonical attachment/download name.
const DefaultReportFilename = "LMW_Reflection_Report.pdf"

// doc wraps fpdf with the report's layout helpers.
type doc struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// BuildPDF lays out the full Reflection Report and returns the finished
// document bytes. Section order is fixed; the chart is rendered internally
// from the same ScoreSet shown at a glance.
func BuildPDF(firstName string, scores types.ScoreSet, overall int, content types.ReportContent, reflection string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	d := &doc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, d.tr(Sanitize(reportTitle)), "", 1, "C", false, 0, "")
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 8, d.tr(Sanitize(footerDisclaimer)), "", 0, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	// Greeting
	name := firstName
	if name == "" {
		name = "there"
	}
	d.para(fmt.Sprintf("Hi %s,", name), 12, "")
	d.para("Here's a calm snapshot of your non-financial readiness.", bodySize, "")

	// Scores at a glance
	d.heading("Scores at a glance")
	d.para(fmt.Sprintf("Overall readiness: %d/%d", overall, types.RatingMax), bodySize, "")
	for _, t := range types.Themes {
		if score, ok := scores[t]; ok {
			d.para(fmt.Sprintf("%s: %d/%d", t, score, types.RatingMax), bodySize, "")
		}
	}

	// Embedded chart
	if png, err := BuildChartPNG(scores); err == nil {
		opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		pdf.RegisterImageOptionsReader("theme-chart", opts, bytes.NewReader(png))
		pdf.Ln(2)
		pdf.ImageOptions("theme-chart", 15, pdf.GetY(), 180, 0, true, opts, 0, "")
		pdf.Ln(2)
	}

	// Narrative sections, fixed order
	d.section("Your archetype", content.Archetype)
	d.section("Core need", content.CoreNeed)
	d.section("A metaphor for this season", content.Metaphor)
	d.section("Your signature sentence", content.SignatureSentence)
	d.section("In your own words", reflection)
	d.listSection("Insights", content.Insights)
	d.section("Why now", content.WhyNow)
	d.section("Future snapshot", content.FutureSnapshot)
	d.listSection("Strengths", content.Strengths)
	d.listSection("Energizers", content.Energizers)
	d.listSection("Drainers", content.Drainers)
	d.listSection("Hidden tensions", content.HiddenTensions)
	d.section("Watch out for", content.WatchOut)
	d.listSection("Three actions to try", content.Actions)
	d.ifThenSection("If-Then plan", content.IfThen)
	d.itemSection("Your 1-week gentle plan", content.WeekPlan, []string{"day", "focus", "plan"})
	d.section("Balancing opportunity", content.BalancingOpportunity)
	d.listSection("Printable checklist", content.Checklist)
	d.listSection("Signature week", content.SignatureWeek)
	d.itemSection("Tiny progress tracker", content.ProgressTracker, []string{"metric", "target"})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to assemble report PDF", Cause: err}
	}
	return buf.Bytes(), nil
}

func (d *doc) para(text string, size float64, style string) {
	d.pdf.SetFont("Helvetica", style, size)
	d.pdf.MultiCell(0, lineHeight, d.tr(Sanitize(text)), "", "", false)
}

func (d *doc) heading(title string) {
	d.pdf.Ln(2)
	d.pdf.SetFont("Helvetica", "B", headingSize)
	d.pdf.CellFormat(0, 8, d.tr(Sanitize(title)), "", 1, "", false, 0, "")
}

// section renders a heading plus one paragraph; empty bodies skip the whole
// section rather than leaving a dangling heading.
func (d *doc) section(title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	d.heading(title)
	d.para(body, bodySize, "")
}

func (d *doc) listSection(title string, items []string) {
	if len(items) == 0 {
		return
	}
	d.heading(title)
	for _, item := range items {
		d.para("- "+item, bodySize, "")
	}
}

// itemSection renders string-or-structured items one line each. Structured
// items combine their sub-fields in the given fixed order; unknown shapes
// degrade to their string representation.
func (d *doc) itemSection(title string, items []types.ListItem, fieldOrder []string) {
	if len(items) == 0 {
		return
	}
	d.heading(title)
	for _, item := range items {
		d.para("- "+formatItem(item, fieldOrder), bodySize, "")
	}
}

// formatItem builds the single display line for a list item.
func formatItem(item types.ListItem, fieldOrder []string) string {
	if item.IsPlain() {
		return item.Text
	}
	parts := make([]string, 0, len(fieldOrder))
	for _, key := range fieldOrder {
		if v := item.Field(key); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return item.String()
	}
	if len(parts) == 1 {
		return parts[0]
	}
	// "day - focus: plan" / "metric: target" shape: last part after a colon
	head := strings.Join(parts[:len(parts)-1], " - ")
	return head + ": " + parts[len(parts)-1]
}

// ifThenSection renders each if/then item with the two keywords emphasized,
// whether the item arrived as a plain sentence or a condition/consequence
// pair.
func (d *doc) ifThenSection(title string, items []types.ListItem) {
	if len(items) == 0 {
		return
	}
	d.heading(title)
	for _, item := range items {
		cond, cons, ok := SplitIfThen(item)
		if !ok {
			d.para("- "+item.String(), bodySize, "")
			continue
		}
		d.pdf.SetFont("Helvetica", "", bodySize)
		d.pdf.Write(lineHeight, d.tr("- "))
		d.pdf.SetFont("Helvetica", "B", bodySize)
		d.pdf.Write(lineHeight, d.tr("If "))
		d.pdf.SetFont("Helvetica", "", bodySize)
		d.pdf.Write(lineHeight, d.tr(Sanitize(cond)))
		d.pdf.SetFont("Helvetica", "B", bodySize)
		d.pdf.Write(lineHeight, d.tr(" then "))
		d.pdf.SetFont("Helvetica", "", bodySize)
		d.pdf.Write(lineHeight, d.tr(Sanitize(cons)))
		d.pdf.Ln(lineHeight)
	}
}

// SplitIfThen extracts the condition and consequence from an if/then item.
// Structured items use their condition/consequence (or if/then) fields; plain
// items are parsed for "if ... then ..." wording. ok is false when neither
// shape applies.
func SplitIfThen(item types.ListItem) (cond, cons string, ok bool) {
	if !item.IsPlain() {
		cond = item.Field("condition")
		if cond == "" {
			cond = item.Field("if")
		}
		cons = item.Field("consequence")
		if cons == "" {
			cons = item.Field("then")
		}
		if cond != "" && cons != "" {
			return cond, cons, true
		}
		return "", "", false
	}

	text := strings.TrimSpace(item.Text)
	lower := strings.ToLower(text)
	if !strings.HasPrefix(lower, "if ") {
		return "", "", false
	}
	rest := text[len("if "):]
	idx := strings.Index(strings.ToLower(rest), " then ")
	if idx < 0 {
		return "", "", false
	}
	cond = strings.TrimSuffix(strings.TrimSpace(rest[:idx]), ",")
	cons = strings.TrimSpace(rest[idx+len(" then "):])
	if cond == "" || cons == "" {
		return "", "", false
	}
	return cond, cons, true
}

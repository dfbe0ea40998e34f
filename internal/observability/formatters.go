// Package observability provides formatted output utilities for the CLI
// preview mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/lifeminuswork/readiness-check/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for preview mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreSummary outputs per-theme scores with a simple bar next to each.
func (p *Printer) PrintScoreSummary(scores types.ScoreSet, overall int) {
	if len(scores) == 0 {
		return
	}

	var sb strings.Builder
	for _, theme := range types.Themes {
		score := scores[theme]
		bar := strings.Repeat("#", score) + strings.Repeat(".", types.RatingMax-score)
		sb.WriteString(fmt.Sprintf("%-14s %s %2d/%d\n", types.Label(theme), bar, score, types.RatingMax))
	}
	sb.WriteString(fmt.Sprintf("\nOverall readiness: %d/%d", overall, types.RatingMax))

	p.printBox("SCORE SUMMARY", sb.String())
}

// PrintMiniReport outputs the preview narrative.
func (p *Printer) PrintMiniReport(mini *types.MiniReport) {
	if mini == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(mini.Headline + "\n")

	if len(mini.TinyActions) > 0 {
		sb.WriteString("\nTiny actions:\n")
		for _, action := range mini.TinyActions {
			sb.WriteString(fmt.Sprintf("  - %s\n", action))
		}
	}

	if len(mini.WeekTeaser) > 0 {
		sb.WriteString("\nYour week could include:\n")
		for _, teaser := range mini.WeekTeaser {
			sb.WriteString(fmt.Sprintf("  - %s\n", teaser))
		}
	}

	if len(mini.Unlock) > 0 {
		sb.WriteString("\nThe full report unlocks:\n")
		for _, item := range mini.Unlock {
			sb.WriteString(fmt.Sprintf("  - %s\n", item))
		}
	}

	p.printBox("MINI REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReportOutline outputs section headlines from the full report so the
// preview can show what was produced without dumping every paragraph.
func (p *Printer) PrintReportOutline(content *types.ReportContent) {
	if content == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Archetype: %s\n", content.Archetype))
	sb.WriteString(fmt.Sprintf("Headline:  %s\n", content.Headline))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Insights:    %d\n", len(content.Insights)))
	sb.WriteString(fmt.Sprintf("Strengths:   %d\n", len(content.Strengths)))
	sb.WriteString(fmt.Sprintf("Actions:     %d\n", len(content.Actions)))
	sb.WriteString(fmt.Sprintf("If/then:     %d\n", len(content.IfThen)))
	sb.WriteString(fmt.Sprintf("Week plan:   %d days", len(content.WeekPlan)))

	p.printBox("REPORT OUTLINE", sb.String())
}

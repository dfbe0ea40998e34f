package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifeminuswork/readiness-check/internal/config"
	"github.com/lifeminuswork/readiness-check/internal/narrative"
	"github.com/lifeminuswork/readiness-check/internal/observability"
	"github.com/lifeminuswork/readiness-check/internal/rendering"
	"github.com/lifeminuswork/readiness-check/internal/schemas"
	"github.com/lifeminuswork/readiness-check/internal/scoring"
	"github.com/lifeminuswork/readiness-check/internal/types"
)

var (
	previewName        string
	previewReflection  string
	previewRatingsPath string
	previewPDFPath     string
	previewOffline     bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run the scoring and report pipeline locally",
	Long: `Score a set of ratings and print the mini report and full report outline
without starting the server. With --pdf the full report is also rendered to disk.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewName, "name", "", "First name used in the narrative")
	previewCmd.Flags().StringVar(&previewReflection, "reflection", "", "Optional free-text reflection")
	previewCmd.Flags().StringVar(&previewRatingsPath, "ratings", "", "Path to a JSON file of ratings per theme (defaults to scale midpoints)")
	previewCmd.Flags().StringVar(&previewPDFPath, "pdf", "", "Write the full report PDF to this path")
	previewCmd.Flags().BoolVar(&previewOffline, "offline", false, "Skip delegated generation even when an API key is set")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	ratings, err := loadRatings(previewRatingsPath)
	if err != nil {
		return err
	}

	scores := scoring.ComputeScores(ratings)
	overall := scoring.Overall(scores)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	provider, closeFn, err := previewProvider(ctx)
	if err != nil {
		return err
	}
	if closeFn != nil {
		defer closeFn()
	}

	req := narrative.Request{
		FirstName:  previewName,
		Scores:     scores,
		Overall:    overall,
		Reflection: previewReflection,
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScoreSummary(scores, overall)

	mini := provider.MiniReport(ctx, req)
	printer.PrintMiniReport(&mini)

	content := provider.FullReport(ctx, req)
	printer.PrintReportOutline(&content)

	if err := checkSchemas(mini, content); err != nil {
		log.Printf("Warning: %v", err)
	}

	if previewPDFPath != "" {
		pdf, err := rendering.BuildPDF(previewName, scores, overall, content, previewReflection)
		if err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
		if err := os.WriteFile(previewPDFPath, pdf, 0644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", previewPDFPath, len(pdf))
	}

	return nil
}

func previewProvider(ctx context.Context) (*narrative.Provider, func(), error) {
	if previewOffline {
		return narrative.NewProvider(nil), nil, nil
	}
	return buildProvider(ctx, config.FromEnv())
}

// loadRatings reads a ratings JSON file, or returns the midpoint defaults
// when no path is given. Unknown themes and short value lists are rejected.
func loadRatings(path string) (types.RatingSet, error) {
	if path == "" {
		return types.DefaultRatings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ratings file: %w", err)
	}

	var raw map[string][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse ratings JSON: %w", err)
	}

	ratings := types.DefaultRatings()
	for key, vals := range raw {
		theme := types.Theme(key)
		if _, ok := types.Questions[theme]; !ok {
			return nil, fmt.Errorf("unknown theme in ratings file: %s", key)
		}
		if len(vals) != types.QuestionsPerTheme {
			return nil, fmt.Errorf("theme %s needs %d values, got %d", key, types.QuestionsPerTheme, len(vals))
		}
		for _, v := range vals {
			if v < 0 || v > types.RatingMax {
				return nil, fmt.Errorf("theme %s value %d out of range [0, %d]", key, v, types.RatingMax)
			}
		}
		ratings[theme] = vals
	}
	return ratings, nil
}

// checkSchemas validates the produced narratives against the embedded JSON
// schemas. This is a development aid; the report is used either way.
func checkSchemas(mini types.MiniReport, content types.ReportContent) error {
	miniJSON, err := json.Marshal(mini)
	if err != nil {
		return fmt.Errorf("failed to marshal mini report: %w", err)
	}
	if err := schemas.ValidateMiniReport(string(miniJSON)); err != nil {
		return fmt.Errorf("mini report schema: %w", err)
	}

	contentJSON, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal report content: %w", err)
	}
	if err := schemas.ValidateReportContent(string(contentJSON)); err != nil {
		return fmt.Errorf("report content schema: %w", err)
	}
	return nil
}

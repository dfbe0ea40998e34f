package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/lifeminuswork/readiness-check/internal/config"
	"github.com/lifeminuswork/readiness-check/internal/leads"
	"github.com/lifeminuswork/readiness-check/internal/llm"
	"github.com/lifeminuswork/readiness-check/internal/mail"
	"github.com/lifeminuswork/readiness-check/internal/narrative"
	"github.com/lifeminuswork/readiness-check/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the questionnaire, verification, and report endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file used as defaults")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	provider, closeFn, err := buildProvider(ctx, cfg)
	if err != nil {
		return err
	}
	if closeFn != nil {
		defer closeFn()
	}

	mailer, err := buildMailer(cfg)
	if err != nil {
		return err
	}

	leadLog, err := buildLeadLogger(ctx, cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{Port: cfg.Port}, provider, mailer, leadLog)
	return srv.Start()
}

// loadServeConfig layers env values over file defaults, with the --port flag
// winning when set.
func loadServeConfig() (*config.Config, error) {
	cfg := config.FromEnv()

	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}

	if servePort != 0 {
		cfg.Port = servePort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildProvider creates the narrative provider. Without an API key the
// provider runs in deterministic fallback mode.
func buildProvider(ctx context.Context, cfg *config.Config) (*narrative.Provider, func(), error) {
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set; using deterministic report content")
		return narrative.NewProvider(nil), nil, nil
	}

	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Printf("Warning: closing generation client: %v", err)
		}
	}
	return narrative.NewProvider(client), closeFn, nil
}

// buildMailer creates the SMTP mailer, or nil when mail is not configured.
func buildMailer(cfg *config.Config) (server.Mailer, error) {
	if cfg.EmailSender == "" || cfg.EmailAppPassword == "" {
		log.Println("Mail credentials not set; verification and report delivery disabled")
		return nil, nil
	}

	m, err := mail.New(mail.Config{
		Host:        cfg.SMTPHost,
		Sender:      cfg.EmailSender,
		AppPassword: cfg.EmailAppPassword,
		SenderName:  cfg.SenderName,
		ReplyTo:     cfg.ReplyTo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}
	return m, nil
}

// buildLeadLogger creates the Sheets lead logger, or nil when lead capture is
// not configured.
func buildLeadLogger(ctx context.Context, cfg *config.Config) (server.LeadLogger, error) {
	if cfg.SpreadsheetID == "" {
		log.Println("LEADS_SPREADSHEET_ID not set; lead capture disabled")
		return nil, nil
	}

	logger, err := leads.New(ctx, cfg.CredentialsFile, cfg.SpreadsheetID, cfg.LeadSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead logger: %w", err)
	}
	return logger, nil
}

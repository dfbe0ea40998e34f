// Package config provides configuration loading and validation for the
// readiness-check service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the service configuration. Values can come from a JSON
// file, environment variables, or CLI flags; missing values use defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Generation port. An empty API key means delegated generation is
	// treated as absent and never attempted.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`

	// Mail
	SMTPHost         string `json:"smtp_host,omitempty"`          // SMTP relay host
	EmailSender      string `json:"email_sender,omitempty"`       // Sender address (required for mail actions)
	EmailAppPassword string `json:"email_app_password,omitempty"` // App password (required for mail actions)
	SenderName       string `json:"sender_name,omitempty"`        // Display name on outgoing mail
	ReplyTo          string `json:"reply_to,omitempty"`           // Reply-To header

	// Lead logging
	SpreadsheetID   string `json:"spreadsheet_id,omitempty"`   // Google Sheet handle; empty disables logging
	LeadSheet       string `json:"lead_sheet,omitempty"`       // Sub-sheet name for lead rows
	CredentialsFile string `json:"credentials_file,omitempty"` // Google service account credentials
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. The GMAIL_* names take
// precedence over the generic EMAIL_* names, mirroring the deployed secret
// layout.
func FromEnv() *Config {
	return &Config{
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		EmailSender:      firstEnv("GMAIL_USER", "EMAIL_SENDER"),
		EmailAppPassword: firstEnv("GMAIL_APP_PASSWORD", "EMAIL_APP_PASSWORD"),
		SenderName:       os.Getenv("SENDER_NAME"),
		ReplyTo:          os.Getenv("REPLY_TO"),
		SpreadsheetID:    os.Getenv("LEADS_SPREADSHEET_ID"),
		LeadSheet:        os.Getenv("LEADS_SHEET_NAME"),
		CredentialsFile:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}

	// Lead logging needs both halves of its identity when enabled.
	if c.SpreadsheetID != "" {
		if c.CredentialsFile == "" {
			return fmt.Errorf("config error: 'credentials_file' is required when a spreadsheet ID is set")
		}
		if _, err := os.Stat(c.CredentialsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: credentials file not found: %s", c.CredentialsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This applies config-file values as defaults under flag and env
// overrides.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.SMTPHost == "" {
		result.SMTPHost = defaults.SMTPHost
	}
	if result.EmailSender == "" {
		result.EmailSender = defaults.EmailSender
	}
	if result.EmailAppPassword == "" {
		result.EmailAppPassword = defaults.EmailAppPassword
	}
	if result.SenderName == "" {
		result.SenderName = defaults.SenderName
	}
	if result.ReplyTo == "" {
		result.ReplyTo = defaults.ReplyTo
	}
	if result.SpreadsheetID == "" {
		result.SpreadsheetID = defaults.SpreadsheetID
	}
	if result.LeadSheet == "" {
		result.LeadSheet = defaults.LeadSheet
	}
	if result.CredentialsFile == "" {
		result.CredentialsFile = defaults.CredentialsFile
	}

	return result
}

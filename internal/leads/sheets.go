// Package leads appends captured-lead records to a Google Sheet. Logging is
// best-effort telemetry: callers treat failures as warnings, never as a
// reason to abort the user-facing flow.
package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/lifeminuswork/readiness-check/internal/types"
)

// headerRow is written once when the sub-sheet is created.
var headerRow = []interface{}{"email", "first_name", "timestamp_utc", "scores_json", "overall", "source"}

// Lead is one append-only log record for a captured email.
type Lead struct {
	Email     string
	FirstName string
	Timestamp time.Time
	Scores    types.ScoreSet
	Overall   int
	Source    string
}

// Logger appends leads to a named sub-sheet of one spreadsheet.
type Logger struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	ensured       bool
}

// New creates a Logger backed by the given spreadsheet and sub-sheet.
func New(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*Logger, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("leads: spreadsheet ID is required")
	}
	if sheetName == "" {
		sheetName = "Leads"
	}

	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("leads: failed to create sheets service: %w", err)
	}

	return &Logger{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// Append writes one lead row, creating the sub-sheet with its header row on
// first use. A zero Timestamp is filled with the current UTC time.
func (l *Logger) Append(ctx context.Context, lead Lead) error {
	if err := l.ensureSheet(ctx); err != nil {
		return err
	}

	if lead.Timestamp.IsZero() {
		lead.Timestamp = time.Now().UTC()
	}

	row, err := buildRow(lead)
	if err != nil {
		return err
	}

	_, err = l.svc.Spreadsheets.Values.
		Append(l.spreadsheetID, l.sheetName+"!A1", &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("leads: failed to append row: %w", err)
	}
	return nil
}

// ensureSheet checks that the sub-sheet exists and creates it (plus the
// header row) when it does not.
func (l *Logger) ensureSheet(ctx context.Context) error {
	if l.ensured {
		return nil
	}

	spreadsheet, err := l.svc.Spreadsheets.Get(l.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("leads: failed to read spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == l.sheetName {
			l.ensured = true
			return nil
		}
	}

	_, err = l.svc.Spreadsheets.BatchUpdate(l.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: l.sheetName},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("leads: failed to create sheet %q: %w", l.sheetName, err)
	}

	_, err = l.svc.Spreadsheets.Values.
		Append(l.spreadsheetID, l.sheetName+"!A1", &sheets.ValueRange{Values: [][]interface{}{headerRow}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("leads: failed to write header row: %w", err)
	}

	l.ensured = true
	return nil
}

// buildRow flattens a Lead into the fixed column order of headerRow.
func buildRow(lead Lead) ([]interface{}, error) {
	scoresJSON, err := json.Marshal(lead.Scores)
	if err != nil {
		return nil, fmt.Errorf("leads: failed to marshal scores: %w", err)
	}
	return []interface{}{
		lead.Email,
		lead.FirstName,
		lead.Timestamp.UTC().Format(time.RFC3339),
		string(scoresJSON),
		lead.Overall,
		lead.Source,
	}, nil
}

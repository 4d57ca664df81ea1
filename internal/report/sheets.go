package report

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/harness"
)

// SheetsClient uploads reports to a Google Sheet.
type SheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsClient creates a client using service account credentials.
func NewSheetsClient(ctx context.Context, credentialsJSON []byte, sheetURL, sheetName string) (*SheetsClient, error) {
	spreadsheetID, err := extractSpreadsheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	if sheetName == "" {
		sheetName = "BV Parity"
	}
	return &SheetsClient{service: srv, spreadsheetID: spreadsheetID, sheetName: sheetName}, nil
}

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

func extractSpreadsheetID(url string) (string, error) {
	m := spreadsheetIDPattern.FindStringSubmatch(url)
	if len(m) < 2 {
		return "", fmt.Errorf("could not extract spreadsheet ID from URL: %s", url)
	}
	return m[1], nil
}

// sheetValues lays out rep as a header row followed by one row per
// result, worst deviation first.
func sheetValues(rep *harness.Report) [][]interface{} {
	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	rows := [][]interface{}{header}
	for _, r := range byDeviation(rep.Results) {
		cells := csvRow(r)
		row := make([]interface{}, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		rows = append(rows, row)
	}
	return rows
}

// Upload replaces the sheet contents with rep.
func (c *SheetsClient) Upload(ctx context.Context, rep *harness.Report) error {
	clearRange := fmt.Sprintf("%s!A:ZZ", c.sheetName)
	if _, err := c.service.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear sheet: %w", err)
	}

	writeRange := fmt.Sprintf("%s!A1", c.sheetName)
	_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, &sheets.ValueRange{Values: sheetValues(rep)}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}
	return nil
}

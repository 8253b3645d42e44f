package services

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"recordapi/models"
)

// SheetsStore persists records in a Google Sheet. The first row of the
// sheet is the header; column order follows models.CanonicalFields but
// header casing is tolerated by the normalizer downstream.
type SheetsStore struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsStore authorizes against the Sheets API with service-account
// credentials and verifies the spreadsheet is reachable.
func NewSheetsStore(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*SheetsStore, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID not set")
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", credentialsFile, err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data,
		sheets.SpreadsheetsScope,
		sheets.DriveScope,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	store := &SheetsStore{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}

	// Probe the spreadsheet so an unreachable sheet is detected at startup
	// and the caller can fall back to the in-memory store.
	if _, err := service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do(); err != nil {
		return nil, fmt.Errorf("spreadsheet %s not reachable: %w", spreadsheetID, err)
	}

	return store, nil
}

// AppendRow appends the record's values as a new row below the existing data.
func (s *SheetsStore) AppendRow(ctx context.Context, record models.Record) error {
	row := make([]interface{}, 0, len(models.CanonicalFields))
	for _, value := range record.Values() {
		row = append(row, value)
	}

	valueRange := &sheets.ValueRange{Values: [][]interface{}{row}}

	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, s.sheetName, valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to sheet %s failed: %w", s.sheetName, err)
	}
	return nil
}

// ListAll reads the whole sheet and maps each data row onto the header row.
// Short rows leave trailing columns empty; extra columns are ignored.
func (s *SheetsStore) ListAll(ctx context.Context) ([]map[string]string, error) {
	resp, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheetID, s.sheetName).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read from sheet %s failed: %w", s.sheetName, err)
	}

	if len(resp.Values) < 2 {
		// Header only, or an entirely empty sheet.
		return []map[string]string{}, nil
	}

	header := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		header = append(header, fmt.Sprint(cell))
	}

	records := make([]map[string]string, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		record := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(row) {
				record[key] = fmt.Sprint(row[i])
			} else {
				record[key] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// Kind identifies the backend in health/status payloads.
func (s *SheetsStore) Kind() string {
	return "sheets"
}

package report

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/shanehull/bsetracker/internal/types"
)

const (
	sheetDataRange     = "Sheet1!A:I"
	sheetWriteStart    = "Sheet1!A1"
	sheetTimestampCell = "Sheet1!K1"
	timestampFormat    = "02 Jan 2006 03:04 PM"
)

// PushToGoogleSheet replaces the shared sheet's contents with the run's
// announcements: clear the data range, write header plus rows, stamp a
// last-updated cell.
func PushToGoogleSheet(ctx context.Context, credentialsJSON, sheetID string, anns []types.Announcement) error {
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return fmt.Errorf("failed to create sheets service: %w", err)
	}

	rows := make([][]any, 0, len(anns)+1)
	headerRow := make([]any, len(Headers))
	for i, h := range Headers {
		headerRow[i] = h
	}
	rows = append(rows, headerRow)
	for _, a := range anns {
		rows = append(rows, Row(a))
	}

	if _, err := srv.Spreadsheets.Values.Clear(sheetID, sheetDataRange, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to clear sheet range: %w", err)
	}

	if _, err := srv.Spreadsheets.Values.Update(sheetID, sheetWriteStart, &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to write sheet data: %w", err)
	}

	stamp := [][]any{{fmt.Sprintf("Last Updated: %s", time.Now().Format(timestampFormat))}}
	if _, err := srv.Spreadsheets.Values.Update(sheetID, sheetTimestampCell, &sheets.ValueRange{Values: stamp}).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to write sheet timestamp: %w", err)
	}

	return nil
}

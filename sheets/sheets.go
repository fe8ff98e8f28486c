// Package sheets appends sensor readings to a Google Sheets spreadsheet,
// authenticating with a locally stored service account credential.
package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"dht-sheets-logger/sensor"
)

const SCOPE = "https://www.googleapis.com/auth/spreadsheets"

// Uploader appends readings to per-sensor spreadsheets. It holds only the
// credential path - authentication happens on every append so that a
// credential or network that becomes available after startup is picked up on
// the next poll cycle without a restart.
type Uploader struct {
	credentials string
}

// NewUploader returns an uploader authenticating with the service account
// credential file at the given path.
func NewUploader(credentials string) *Uploader {
	return &Uploader{
		credentials: credentials,
	}
}

// Append appends one reading as a row after the last non-empty row of the
// first worksheet of the spreadsheet. All failure modes (missing or invalid
// credential, network, invalid spreadsheet ID, quota) surface as the
// returned error; there is no retry - the next poll cycle retries naturally.
func (u *Uploader) Append(ctx context.Context, spreadsheetId string, r sensor.Reading) error {
	google, err := u.authorize(ctx)
	if err != nil {
		return fmt.Errorf("Google Sheets authentication/authorization error (%w)", err)
	}

	spreadsheet, err := google.Spreadsheets.Get(spreadsheetId).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to fetch spreadsheet (%w)", err)
	}

	if len(spreadsheet.Sheets) == 0 {
		return fmt.Errorf("spreadsheet %s has no worksheets", spreadsheetId)
	}

	worksheet := spreadsheet.Sheets[0].Properties.Title

	values := gsheets.ValueRange{
		Values: [][]any{Row(r)},
	}

	if _, err := google.Spreadsheets.Values.Append(spreadsheetId, fmt.Sprintf("%s!A1", worksheet), &values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("unable to append reading to spreadsheet %s (%w)", spreadsheetId, err)
	}

	return nil
}

func (u *Uploader) authorize(ctx context.Context) (*gsheets.Service, error) {
	b, err := os.ReadFile(u.credentials)
	if err != nil {
		return nil, err
	}

	config, err := google.JWTConfigFromJSON(b, SCOPE)
	if err != nil {
		return nil, err
	}

	return gsheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
}

// Row formats a reading as the uploaded row: date, temperature (°C),
// temperature (°F) and relative humidity, each rounded to one decimal.
func Row(r sensor.Reading) []any {
	return []any{
		r.Timestamp.Format("2006-01-02"),
		sensor.Round1(r.Temperature),
		sensor.Round1(r.Fahrenheit()),
		sensor.Round1(r.Humidity),
	}
}

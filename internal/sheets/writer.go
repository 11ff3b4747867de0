package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/hahaha-network/revsync/internal/common"
	"github.com/hahaha-network/revsync/internal/model"
	"github.com/hahaha-network/revsync/internal/service"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Writer implements the SheetWriter interface for Google Sheets. It reads
// the header row and month column once per run and addresses every write
// by resolved (row, column); it never appends or creates columns.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger

	headerCols map[string]int64      // header text -> 1-based column
	monthRows  map[model.Month]int64 // month -> 1-based row
	sheetID    int64
	loaded     bool

	config Config
}

var _ service.SheetWriter = (*Writer)(nil)

// NewWriter creates a new Google Sheets revenue writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: srv,
		logger:  logger,
	}, nil
}

// createSheetsService creates a Google Sheets API service.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to read service account key file: %v", common.ErrMissingConfig, err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to parse service account key: %v", common.ErrAuth, err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = oauthConfig.TokenSource(ctx, token)
	}

	// Exchange eagerly so bad credentials fail before any write.
	if _, err := tokenSource.Token(); err != nil {
		return nil, fmt.Errorf("%w: sheet credential exchange failed: %v", common.ErrAuth, err)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}

// Load reads the worksheet's header row and month column and builds the
// indices used to resolve writes.
func (w *Writer) Load(ctx context.Context) error {
	spreadsheet, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to access spreadsheet %s: %w", w.config.SpreadsheetID, mapSheetsError(err))
	}

	w.sheetID = -1
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == w.config.WorksheetName {
			w.sheetID = sheet.Properties.SheetId
			break
		}
	}
	if w.sheetID == -1 {
		return fmt.Errorf("%w: worksheet %q not found in spreadsheet", common.ErrInvalidConfig, w.config.WorksheetName)
	}

	if err := w.loadHeaderRow(ctx); err != nil {
		return err
	}
	if err := w.loadMonthRows(ctx); err != nil {
		return err
	}

	w.loaded = true
	w.logger.Info("worksheet indexed",
		"worksheet", w.config.WorksheetName,
		"headers", len(w.headerCols),
		"month_rows", len(w.monthRows))

	return nil
}

func (w *Writer) loadHeaderRow(ctx context.Context) error {
	rangeStr := fmt.Sprintf("'%s'!1:1", w.config.WorksheetName)
	resp, err := w.service.Spreadsheets.Values.Get(w.config.SpreadsheetID, rangeStr).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to read header row: %w", mapSheetsError(err))
	}

	w.headerCols = make(map[string]int64)
	if len(resp.Values) == 0 {
		return nil
	}
	for idx, cell := range resp.Values[0] {
		header, ok := cell.(string)
		if !ok {
			continue
		}
		if header = strings.TrimSpace(header); header != "" {
			w.headerCols[header] = int64(idx + 1)
		}
	}
	return nil
}

func (w *Writer) loadMonthRows(ctx context.Context) error {
	rangeStr := fmt.Sprintf("'%s'!A:A", w.config.WorksheetName)
	resp, err := w.service.Spreadsheets.Values.Get(w.config.SpreadsheetID, rangeStr).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to read month column: %w", mapSheetsError(err))
	}

	w.monthRows = make(map[model.Month]int64)
	for idx, row := range resp.Values {
		if idx == 0 {
			continue // header row
		}
		if len(row) == 0 {
			continue
		}
		cell, ok := row[0].(string)
		if !ok {
			continue
		}
		if month, parsed := ParseMonthCell(cell); parsed {
			w.monthRows[month] = int64(idx + 1)
		}
	}
	return nil
}

// MissingHeaders returns the subset of headers absent from row 1, for
// pre-run reporting. Load must have been called.
func (w *Writer) MissingHeaders(headers []string) []string {
	var missing []string
	for _, h := range headers {
		if _, ok := w.headerCols[h]; !ok {
			missing = append(missing, h)
		}
	}
	return missing
}

// resolve maps (header, month) to a concrete cell, or fails with the
// appropriate placement error. A write never happens unless both resolve.
func (w *Writer) resolve(header string, month model.Month) (row, col int64, err error) {
	if !w.loaded {
		return 0, 0, fmt.Errorf("worksheet not loaded")
	}
	col, ok := w.headerCols[header]
	if !ok {
		return 0, 0, fmt.Errorf("%w: no header %q in row 1 of %q", common.ErrColumnNotFound, header, w.config.WorksheetName)
	}
	row, ok = w.monthRows[month]
	if !ok {
		return 0, 0, fmt.Errorf("%w: no row for month %s in column A of %q", common.ErrRowNotFound, month, w.config.WorksheetName)
	}
	return row, col, nil
}

// WriteValue writes one revenue amount into the cell addressed by the
// month row and header column. Writes are overwrite-in-place and
// independent of each other; re-running a month is idempotent.
func (w *Writer) WriteValue(ctx context.Context, header string, month model.Month, amount decimal.Decimal) error {
	row, col, err := w.resolve(header, month)
	if err != nil {
		return err
	}

	a1 := fmt.Sprintf("'%s'!%s%d", w.config.WorksheetName, columnLetter(col), row)
	valueRange := &sheets.ValueRange{
		Values: [][]any{{amount.InexactFloat64()}},
	}

	err = common.WithRetry(ctx, func() error {
		_, updateErr := w.service.Spreadsheets.Values.Update(w.config.SpreadsheetID, a1, valueRange).
			ValueInputOption("USER_ENTERED").
			Context(ctx).
			Do()
		if updateErr != nil {
			return mapSheetsError(updateErr)
		}
		return nil
	}, w.retryOptions())
	if err != nil {
		return fmt.Errorf("update %s: %w", a1, err)
	}

	w.logger.Debug("cell written", "range", a1, "header", header, "month", month.String(), "amount", amount)
	return nil
}

// EnsureMonthRows inserts a row for every requested month missing from
// column A, at its chronologically correct position, writing the month as
// YYYY-MM-01. The month index is rebuilt from the sheet afterwards.
func (w *Writer) EnsureMonthRows(ctx context.Context, months []model.Month) error {
	if !w.loaded {
		return fmt.Errorf("worksheet not loaded")
	}

	var missing []model.Month
	for _, m := range months {
		if _, ok := w.monthRows[m]; !ok {
			missing = append(missing, m)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].Before(missing[j]) })

	// Track (row, month) pairs so later insertions account for the row
	// shifts earlier ones cause.
	type rowMonth struct {
		row   int64
		month model.Month
	}
	existing := make([]rowMonth, 0, len(w.monthRows))
	for m, r := range w.monthRows {
		existing = append(existing, rowMonth{row: r, month: m})
	}
	sort.Slice(existing, func(i, j int) bool { return existing[i].month.Before(existing[j].month) })

	for _, m := range missing {
		// Insert before the first row holding a later month, else append
		// after the last month row, else start at row 2 under the header.
		insertAt := int64(2)
		if len(existing) > 0 {
			insertAt = existing[len(existing)-1].row + 1
			for _, e := range existing {
				if m.Before(e.month) {
					insertAt = e.row
					break
				}
			}
		}

		if err := w.insertMonthRow(ctx, insertAt, m); err != nil {
			return err
		}

		for i := range existing {
			if existing[i].row >= insertAt {
				existing[i].row++
			}
		}
		existing = append(existing, rowMonth{row: insertAt, month: m})
		sort.Slice(existing, func(i, j int) bool { return existing[i].month.Before(existing[j].month) })

		w.logger.Info("inserted month row", "month", m.String(), "row", insertAt)
	}

	// Re-read column A as ground truth after the insertions.
	return w.loadMonthRows(ctx)
}

func (w *Writer) insertMonthRow(ctx context.Context, rowIndex int64, month model.Month) error {
	insertReq := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			InsertDimension: &sheets.InsertDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    w.sheetID,
					Dimension:  "ROWS",
					StartIndex: rowIndex - 1,
					EndIndex:   rowIndex,
				},
				InheritFromBefore: false,
			},
		}},
	}

	err := common.WithRetry(ctx, func() error {
		if _, reqErr := w.service.Spreadsheets.BatchUpdate(w.config.SpreadsheetID, insertReq).Context(ctx).Do(); reqErr != nil {
			return mapSheetsError(reqErr)
		}
		return nil
	}, w.retryOptions())
	if err != nil {
		return fmt.Errorf("insert row %d: %w", rowIndex, err)
	}

	a1 := fmt.Sprintf("'%s'!A%d", w.config.WorksheetName, rowIndex)
	valueRange := &sheets.ValueRange{
		Values: [][]any{{month.First().Format("2006-01-02")}},
	}
	err = common.WithRetry(ctx, func() error {
		if _, reqErr := w.service.Spreadsheets.Values.Update(w.config.SpreadsheetID, a1, valueRange).
			ValueInputOption("USER_ENTERED").
			Context(ctx).
			Do(); reqErr != nil {
			return mapSheetsError(reqErr)
		}
		return nil
	}, w.retryOptions())
	if err != nil {
		return fmt.Errorf("write month label %s: %w", a1, err)
	}

	return nil
}

func (w *Writer) retryOptions() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}

// columnLetter converts a 1-based column number to its A1 letter form.
func columnLetter(col int64) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}

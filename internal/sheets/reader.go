// Package sheets reads a bank statement from a Google Sheets spreadsheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"sync"

	"github.com/spf13/cast"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// DefaultRange covers the statement columns of the first sheet
const DefaultRange = "A:G"

var errEmptyRange = errors.New("range has no rows")

// Config holds the spreadsheet location and credentials
type Config struct {
	SpreadsheetID   string
	Range           string
	CredentialsFile string // empty means Application Default Credentials
}

// Reader serves the values of a spreadsheet range as statement rows. The
// range is fetched once and cached for the lifetime of the Reader.
type Reader struct {
	svc           *gsheet.Service
	spreadsheetID string
	readRange     string

	once   sync.Once
	values [][]string
	err    error
}

// NewReader creates a read-only Sheets client
func NewReader(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Reader, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}

	clientOpts := []option.ClientOption{option.WithScopes(gsheet.SpreadsheetsReadonlyScope)}
	if cfg.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	clientOpts = append(clientOpts, opts...)

	svc, err := gsheet.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return NewReaderWithService(svc, cfg.SpreadsheetID, cfg.Range), nil
}

// NewReaderWithService wraps an existing Sheets service
func NewReaderWithService(svc *gsheet.Service, spreadsheetID, readRange string) *Reader {
	if readRange == "" {
		readRange = DefaultRange
	}
	return &Reader{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}
}

func (r *Reader) fetch(ctx context.Context) ([][]string, error) {
	r.once.Do(func() {
		resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, r.readRange).Context(ctx).Do()
		if err != nil {
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
				err = fmt.Errorf("%w: %w", fs.ErrNotExist, err)
			}
			r.err = fmt.Errorf("read %s: %w", r.readRange, err)
			return
		}
		r.values = toRows(resp.Values)
	})
	return r.values, r.err
}

// ReadHeader returns the first row of the range
func (r *Reader) ReadHeader(ctx context.Context) ([]string, error) {
	values, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("reading sheet header: %w", errEmptyRange)
	}
	return values[0], nil
}

// ReadAndProcessByRow calls processorFn for every row after the header
func (r *Reader) ReadAndProcessByRow(ctx context.Context, processorFn func([]string) error) error {
	values, err := r.fetch(ctx)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("reading sheet header: %w", errEmptyRange)
	}

	for _, row := range values[1:] {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := processorFn(row); err != nil {
			return err
		}
	}
	return nil
}

// toRows flattens the API's loosely typed cells into strings
func toRows(values [][]any) [][]string {
	rows := make([][]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.TrimSpace(cast.ToString(cell))
		}
		rows = append(rows, cells)
	}
	return rows
}

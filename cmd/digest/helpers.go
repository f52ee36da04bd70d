package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/tirasundara/statement-digest/internal/config"
	"github.com/tirasundara/statement-digest/internal/domain"
	"github.com/tirasundara/statement-digest/internal/logging"
	"github.com/tirasundara/statement-digest/internal/quotes"
	"github.com/tirasundara/statement-digest/internal/report"
	"github.com/tirasundara/statement-digest/internal/repository"
	"github.com/tirasundara/statement-digest/internal/service"
	"github.com/tirasundara/statement-digest/internal/settings"
	"github.com/tirasundara/statement-digest/internal/sheets"
	"github.com/tirasundara/statement-digest/pkg/fileutil"
)

// Output files of the run command
const (
	homePageFile = "main_page_data.json"
	cashbackFile = "cashback_analysis.json"
)

// newStatementReader picks the row reader for the configured statement source
func newStatementReader(ctx context.Context, cfg *config.Config) (fileutil.RowReader, string, error) {
	switch source := cfg.ResolveSource(); source {
	case config.SourceCSV:
		return fileutil.NewCSVReader(cfg.Statement.Path), filepath.Base(cfg.Statement.Path), nil
	case config.SourceXLSX:
		return fileutil.NewXLSXReader(cfg.Statement.Path, cfg.Statement.Sheet), filepath.Base(cfg.Statement.Path), nil
	case config.SourceSheets:
		r, err := sheets.NewReader(ctx, cfg.Sheets)
		if err != nil {
			return nil, "", fmt.Errorf("connecting to Google Sheets: %w", err)
		}
		return r, "sheets:" + cfg.Sheets.SpreadsheetID, nil
	default:
		return nil, "", fmt.Errorf("unsupported statement source: %s", source)
	}
}

// newDigestService wires the repository, settings store and quote gateway
func newDigestService(ctx context.Context, cfg *config.Config) (*service.DigestService, error) {
	reader, source, err := newStatementReader(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo := repository.NewStatementRepository(reader, source, logging.Component(logger, "repository"))
	store := settings.NewFileStore(cfg.SettingsPath)
	gateway := quotes.NewGateway(cfg.Quotes, &http.Client{}, logging.Component(logger, "quotes"))

	return service.NewDigestService(repo, store, gateway, logging.Component(logger, "service")), nil
}

func newReportWriter(cfg *config.Config) *report.Writer {
	return report.NewWriter(cfg.OutputDir, report.NewJSONFormatter(true), logging.Component(logger, "report"))
}

// printJSON writes v as indented JSON followed by a newline
func printJSON(w io.Writer, v any) error {
	output, err := report.NewJSONFormatter(true).Format(v)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// parseDay reads a YYYY-MM-DD flag value, returning fallback when it is empty
func parseDay(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	day, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return day, nil
}

// rangeFlags resolves --from/--to, each defaulting to the matching bound of def
func rangeFlags(from, to string, def domain.DateRange) (domain.DateRange, error) {
	start, err := parseDay(from, def.Start)
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := parseDay(to, def.End)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.ParseDateRange(start.Format(domain.DateLayout), end.Format(domain.DateLayout))
}

// monthRange covers the whole calendar month
func monthRange(year int, month time.Month) domain.DateRange {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return domain.DateRange{Start: first, End: first.AddDate(0, 1, -1)}
}

// distinctCategories lists categories in order of first appearance
func distinctCategories(txns []domain.Transaction) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, txn := range txns {
		if seen[txn.Category] {
			continue
		}
		seen[txn.Category] = true
		categories = append(categories, txn.Category)
	}
	return categories
}

// Package config loads application configuration from viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"github.com/tirasundara/statement-digest/internal/logging"
	"github.com/tirasundara/statement-digest/internal/quotes"
	"github.com/tirasundara/statement-digest/internal/sheets"
)

// Statement sources
const (
	SourceAuto   = "auto"
	SourceXLSX   = "xlsx"
	SourceCSV    = "csv"
	SourceSheets = "sheets"
)

var validSources = []string{SourceAuto, SourceXLSX, SourceCSV, SourceSheets}

// Config is the resolved application configuration
type Config struct {
	Statement    Statement
	SettingsPath string
	OutputDir    string
	Quotes       quotes.Config
	Sheets       sheets.Config
	Log          logging.Options
}

// Statement locates the bank statement
type Statement struct {
	Path   string
	Sheet  string
	Source string
}

// SetDefaults registers every default on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("statement.path", "data/operations.xlsx")
	v.SetDefault("statement.sheet", "")
	v.SetDefault("statement.source", SourceAuto)
	v.SetDefault("settings.path", "data/user_settings.json")
	v.SetDefault("output.dir", ".")
	v.SetDefault("quotes.currency_url", quotes.DefaultCurrencyURL)
	v.SetDefault("quotes.stock_url", quotes.DefaultStockURL)
	v.SetDefault("quotes.timeout", quotes.DefaultTimeout)
	v.SetDefault("sheets.range", sheets.DefaultRange)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)
}

// Load reads the configuration from v. API keys fall back to the API_KEY and
// MARKETSTACK_API_KEY environment variables.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		Statement: Statement{
			Path:   ExpandPath(v.GetString("statement.path")),
			Sheet:  v.GetString("statement.sheet"),
			Source: strings.ToLower(v.GetString("statement.source")),
		},
		SettingsPath: ExpandPath(v.GetString("settings.path")),
		OutputDir:    ExpandPath(v.GetString("output.dir")),
		Quotes: quotes.Config{
			CurrencyAPIKey: v.GetString("quotes.currency_api_key"),
			StockAPIKey:    v.GetString("quotes.stock_api_key"),
			CurrencyURL:    v.GetString("quotes.currency_url"),
			StockURL:       v.GetString("quotes.stock_url"),
			Timeout:        v.GetDuration("quotes.timeout"),
		},
		Sheets: sheets.Config{
			SpreadsheetID:   v.GetString("sheets.spreadsheet_id"),
			Range:           v.GetString("sheets.range"),
			CredentialsFile: ExpandPath(v.GetString("sheets.credentials_file")),
		},
		Log: logging.Options{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			File:   ExpandPath(v.GetString("log.file")),
		},
	}

	if cfg.Quotes.CurrencyAPIKey == "" {
		cfg.Quotes.CurrencyAPIKey = os.Getenv("API_KEY")
	}
	if cfg.Quotes.StockAPIKey == "" {
		cfg.Quotes.StockAPIKey = os.Getenv("MARKETSTACK_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(validSources, c.Statement.Source) {
		errs = append(errs, fmt.Errorf("invalid statement source %q: must be one of %v", c.Statement.Source, validSources))
	}

	if c.Statement.Source == SourceSheets {
		if c.Sheets.SpreadsheetID == "" {
			errs = append(errs, errors.New("sheets.spreadsheet_id is required when the statement source is sheets"))
		}
	} else if c.Statement.Path == "" {
		errs = append(errs, errors.New("statement.path cannot be empty"))
	}

	if c.SettingsPath == "" {
		errs = append(errs, errors.New("settings.path cannot be empty"))
	}

	if c.Quotes.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid quotes.timeout %v: must be positive", c.Quotes.Timeout))
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(c.Log.Format) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("invalid log format: %s", c.Log.Format))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// ResolveSource picks the statement source, deciding auto by file extension
func (c *Config) ResolveSource() string {
	if c.Statement.Source != SourceAuto {
		return c.Statement.Source
	}
	if strings.EqualFold(filepath.Ext(c.Statement.Path), ".csv") {
		return SourceCSV
	}
	return SourceXLSX
}

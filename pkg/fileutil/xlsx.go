package fileutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var errEmptySheet = errors.New("sheet has no rows")

// XLSXReader reads one sheet of an Excel workbook
type XLSXReader struct {
	FilePath  string
	SheetName string // empty means the first sheet
}

// NewXLSXReader returns an XLSXReader for the given workbook and sheet
func NewXLSXReader(fp, sheet string) *XLSXReader {
	return &XLSXReader{
		FilePath:  fp,
		SheetName: sheet,
	}
}

func (r *XLSXReader) open() (*excelize.File, *excelize.Rows, error) {
	f, err := excelize.OpenFile(r.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening a xlsx file: %w", err)
	}

	sheet := r.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("opening sheet %q: %w", sheet, err)
	}

	return f, rows, nil
}

// ReadHeader reads ONLY the first row of the sheet
func (r *XLSXReader) ReadHeader(_ context.Context) ([]string, error) {
	f, rows, err := r.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Error(); err != nil {
			return nil, fmt.Errorf("reading xlsx header: %w", err)
		}
		return nil, fmt.Errorf("reading xlsx header: %w", errEmptySheet)
	}

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading xlsx header: %w", err)
	}

	return header, nil
}

// ReadAndProcessByRow streams the sheet row by row, skipping the header
func (r *XLSXReader) ReadAndProcessByRow(ctx context.Context, processorFn func([]string) error) error {
	f, rows, err := r.open()
	if err != nil {
		return err
	}
	defer f.Close()
	defer rows.Close()

	// Skip header
	if !rows.Next() {
		if err := rows.Error(); err != nil {
			return fmt.Errorf("reading xlsx header: %w", err)
		}
		return fmt.Errorf("reading xlsx header: %w", errEmptySheet)
	}

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("reading xlsx row: %w", err)
		}

		if err = processorFn(row); err != nil {
			return err
		}
	}

	if err := rows.Error(); err != nil {
		return fmt.Errorf("reading xlsx rows: %w", err)
	}

	return nil
}

package fileutil

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVReader provides a helper/utility to read CSV file(s)
type CSVReader struct {
	FilePath string
	Comma    rune
}

// NewCSVReader returns a CSVReader instance for a specified CSV file
func NewCSVReader(fp string) *CSVReader {
	return &CSVReader{
		FilePath: fp,
		Comma:    ',',
	}
}

func (r *CSVReader) open() (*os.File, *csv.Reader, error) {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening a csv file: %w", err)
	}

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // statement exports may drop trailing empty cells
	if r.Comma != 0 {
		reader.Comma = r.Comma
	}

	return f, reader, nil
}

// ReadHeader reads ONLY the header of the specified CSV file
func (r *CSVReader) ReadHeader(_ context.Context) ([]string, error) {
	f, reader, err := r.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	return header, nil
}

// ReadAndProcessByRow reads and processes a CSV file row by row, allows for streaming large file(s)
func (r *CSVReader) ReadAndProcessByRow(ctx context.Context, processorFn func([]string) error) error {
	f, reader, err := r.open()
	if err != nil {
		return err
	}
	defer f.Close()

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return fmt.Errorf("reading CSV header: %w", err)
	}

	// read and process row by row
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break // end of file, stop
		}
		if err != nil {
			return fmt.Errorf("reading CSV row: %w", err)
		}

		if err = processorFn(row); err != nil {
			return err
		}
	}

	return nil
}

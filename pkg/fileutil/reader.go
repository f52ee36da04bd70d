// Package fileutil reads tabular statement files row by row.
package fileutil

import "context"

// RowReader reads a table whose first row is the header
type RowReader interface {
	// ReadHeader reads ONLY the header row
	ReadHeader(ctx context.Context) ([]string, error)

	// ReadAndProcessByRow calls processorFn for every row after the header
	ReadAndProcessByRow(ctx context.Context, processorFn func([]string) error) error
}

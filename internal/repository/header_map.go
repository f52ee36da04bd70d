package repository

import (
	"fmt"
	"strings"

	"github.com/tirasundara/statement-digest/internal/domain"
)

// createHeaderMap creates a map of column names to their indices. Every
// required column must be present; optional columns are mapped when found.
func createHeaderMap(header []string, required []string, optional []string) (map[string]int, error) {
	columnMap := make(map[string]int)

	lookup := func(column string) bool {
		for i, field := range header {
			if strings.EqualFold(column, cleanHeaderField(field)) {
				columnMap[column] = i
				return true
			}
		}
		return false
	}

	for _, column := range required {
		if !lookup(column) {
			return nil, fmt.Errorf("%w: '%s' not found in statement header", domain.ErrMissingColumn, column)
		}
	}

	for _, column := range optional {
		lookup(column)
	}

	return columnMap, nil
}

// cleanHeaderField strips whitespace and the UTF-8 byte order mark that
// spreadsheet exports put in front of the first column name
func cleanHeaderField(field string) string {
	return strings.TrimSpace(strings.TrimPrefix(field, "\uFEFF"))
}

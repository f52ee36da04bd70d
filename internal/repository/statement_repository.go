package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/tirasundara/statement-digest/internal/domain"
	"github.com/tirasundara/statement-digest/internal/normalizer"
	"github.com/tirasundara/statement-digest/pkg/fileutil"
)

var (
	statementRequiredFields = []string{normalizer.ColumnDate, normalizer.ColumnStatus}
	statementOptionalFields = []string{
		normalizer.ColumnCard,
		normalizer.ColumnAmount,
		normalizer.ColumnCategory,
		normalizer.ColumnDescription,
		normalizer.ColumnCurrency,
	}
)

// StatementRepository implements the TransactionRepository interface on top of a RowReader
type StatementRepository struct {
	reader fileutil.RowReader
	source string
	logger *slog.Logger
}

// NewStatementRepository creates a new StatementRepository. source names the
// statement in logs.
func NewStatementRepository(reader fileutil.RowReader, source string, logger *slog.Logger) *StatementRepository {
	return &StatementRepository{
		reader: reader,
		source: source,
		logger: logger,
	}
}

func (r *StatementRepository) GetTransactionsInRange(ctx context.Context, rng domain.DateRange) ([]domain.Transaction, domain.LoadStats, error) {
	var stats domain.LoadStats

	header, err := r.reader.ReadHeader(ctx)
	if err != nil {
		return nil, stats, sourceError("reading statement header", err)
	}

	columnMap, err := createHeaderMap(header, statementRequiredFields, statementOptionalFields)
	if err != nil {
		return nil, stats, fmt.Errorf("mapping statement columns: %w", err)
	}

	txns := make([]domain.Transaction, 0)
	var rowProcessorFn = func(cells []string) error {
		if isBlankRow(cells) {
			return nil
		}

		txn, reason := normalizer.Normalize(toRow(cells, columnMap), rng)
		normalizer.Tally(&stats, reason)

		if reason != normalizer.Accepted {
			r.logger.Debug("statement row dropped", "line", stats.Rows+1, "reason", reason.String())
			return nil
		}

		txns = append(txns, txn)
		return nil
	}

	// Process data row by row
	if err := r.reader.ReadAndProcessByRow(ctx, rowProcessorFn); err != nil {
		return nil, stats, sourceError("processing statement rows", err)
	}

	r.logger.Info("statement loaded",
		"source", r.source,
		"range", rng.String(),
		"rows", stats.Rows,
		"accepted", stats.Accepted,
		"dropped", stats.Dropped(),
		"bad_status", stats.BadStatus,
		"bad_date", stats.BadDate,
		"out_of_range", stats.OutOfRange)

	return txns, stats, nil
}

// toRow keys the cells of one line by column name. Empty cells are left out
// so the normalizer treats them as missing.
func toRow(cells []string, columnMap map[string]int) normalizer.Row {
	row := make(normalizer.Row, len(columnMap))
	for column, idx := range columnMap {
		if idx >= len(cells) {
			continue
		}
		if value := strings.TrimSpace(cells[idx]); value != "" {
			row[column] = value
		}
	}
	return row
}

func isBlankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func sourceError(action string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w: %w", action, domain.ErrStatementNotFound, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

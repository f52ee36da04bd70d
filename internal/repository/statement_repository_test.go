package repository

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/statement-digest/internal/domain"
	"github.com/tirasundara/statement-digest/internal/normalizer"
	"github.com/tirasundara/statement-digest/pkg/fileutil"
	"github.com/xuri/excelize/v2"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func december2021(t *testing.T) domain.DateRange {
	t.Helper()
	rng, err := domain.ParseDateRange("2021-12-01", "2021-12-31")
	require.NoError(t, err)
	return rng
}

func TestStatementRepository_CSV(t *testing.T) {
	repo := NewStatementRepository(fileutil.NewCSVReader("testdata/operations.csv"), "operations.csv", discardLogger())

	txns, stats, err := repo.GetTransactionsInRange(context.Background(), december2021(t))
	require.NoError(t, err)

	assert.Equal(t, domain.LoadStats{Rows: 10, Accepted: 7, BadStatus: 1, BadDate: 1, OutOfRange: 1}, stats)
	assert.Equal(t, 3, stats.Dropped())
	require.Len(t, txns, 7)

	first := txns[0]
	assert.Equal(t, "31.12.2021 16:44:00", first.Date)
	assert.Equal(t, "7197", first.CardNumber)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("-160.89")))
	assert.Equal(t, "Супермаркеты", first.Category)
	assert.Equal(t, "Колхоз", first.Description)
	assert.Equal(t, "RUB", first.Currency)

	topUp := txns[5]
	assert.Equal(t, "", topUp.CardNumber)
	assert.True(t, topUp.Amount.Equal(decimal.NewFromInt(20000)))

	unparsed := txns[6]
	assert.True(t, unparsed.Amount.IsZero())
	assert.Equal(t, domain.DefaultCategory, unparsed.Category)
	assert.Equal(t, "", unparsed.Description)
}

func TestStatementRepository_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operations.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{normalizer.ColumnDate, normalizer.ColumnCard, normalizer.ColumnStatus, normalizer.ColumnAmount, normalizer.ColumnCategory},
		{"30.12.2021 10:00:00", "*1112", "OK", -250.5, "Кафе"},
		{"31.12.2021 12:00:00", "*1112", "OK", -100, "Такси"},
		{44561.5, "*1112", "OK", -40, "Такси"},
		{"30.12.2021 11:00:00", "*1112", "FAILED", -1, "Кафе"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	repo := NewStatementRepository(fileutil.NewXLSXReader(path, ""), "operations.xlsx", discardLogger())

	txns, stats, err := repo.GetTransactionsInRange(context.Background(), december2021(t))
	require.NoError(t, err)

	assert.Equal(t, domain.LoadStats{Rows: 4, Accepted: 2, BadStatus: 1, BadDate: 1}, stats)
	require.Len(t, txns, 2)

	assert.True(t, txns[0].Amount.Equal(decimal.NewFromFloat(-250.5)))
	assert.Equal(t, "31.12.2021 12:00:00", txns[1].Date)
	assert.Equal(t, "Такси", txns[1].Category)
	assert.Equal(t, domain.DefaultCurrency, txns[1].Currency)
}

func TestStatementRepository_MissingFile(t *testing.T) {
	repo := NewStatementRepository(fileutil.NewXLSXReader(filepath.Join(t.TempDir(), "nope.xlsx"), ""), "nope.xlsx", discardLogger())

	txns, _, err := repo.GetTransactionsInRange(context.Background(), december2021(t))
	assert.ErrorIs(t, err, domain.ErrStatementNotFound)
	assert.Nil(t, txns)
}

func TestStatementRepository_MissingRequiredColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no_status.csv")
	require.NoError(t, os.WriteFile(path, []byte("Дата операции,Сумма операции\n31.12.2021 16:44:00,-1\n"), 0o644))

	repo := NewStatementRepository(fileutil.NewCSVReader(path), "no_status.csv", discardLogger())

	_, _, err := repo.GetTransactionsInRange(context.Background(), december2021(t))
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestCreateHeaderMap(t *testing.T) {
	header := []string{"\uFEFFДата операции ", "статус", "Сумма операции"}

	columnMap, err := createHeaderMap(header, statementRequiredFields, statementOptionalFields)
	require.NoError(t, err)

	assert.Equal(t, 0, columnMap[normalizer.ColumnDate])
	assert.Equal(t, 1, columnMap[normalizer.ColumnStatus])
	assert.Equal(t, 2, columnMap[normalizer.ColumnAmount])
	_, hasCard := columnMap[normalizer.ColumnCard]
	assert.False(t, hasCard)
}

func TestToRow_ShortAndEmptyCells(t *testing.T) {
	columnMap := map[string]int{normalizer.ColumnDate: 0, normalizer.ColumnCategory: 1, normalizer.ColumnCurrency: 5}

	row := toRow([]string{"31.12.2021 16:44:00", "  "}, columnMap)

	assert.Equal(t, normalizer.Row{normalizer.ColumnDate: "31.12.2021 16:44:00"}, row)
}

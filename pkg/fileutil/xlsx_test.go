package fileutil_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/statement-digest/pkg/fileutil"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "operations.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXReader_FirstSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"Дата операции", "Сумма операции"},
		{"31.12.2021 16:44:00", -160.89},
		{"31.12.2021 16:42:04", 64},
	})

	reader := fileutil.NewXLSXReader(path, "")

	header, err := reader.ReadHeader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Дата операции", "Сумма операции"}, header)

	var rows [][]string
	err = reader.ReadAndProcessByRow(context.Background(), func(row []string) error {
		rows = append(rows, row)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"31.12.2021 16:44:00", "-160.89"},
		{"31.12.2021 16:42:04", "64"},
	}, rows)
}

func TestXLSXReader_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Отчет", [][]any{
		{"Статус"},
		{"OK"},
	})

	reader := fileutil.NewXLSXReader(path, "Отчет")

	header, err := reader.ReadHeader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Статус"}, header)
}

func TestXLSXReader_Errors(t *testing.T) {
	_, err := fileutil.NewXLSXReader(filepath.Join(t.TempDir(), "missing.xlsx"), "").ReadHeader(context.Background())
	assert.Error(t, err)

	path := writeWorkbook(t, "Sheet1", [][]any{{"a"}})
	_, err = fileutil.NewXLSXReader(path, "NoSuchSheet").ReadHeader(context.Background())
	assert.Error(t, err)
}

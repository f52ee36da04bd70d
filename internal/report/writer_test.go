package report_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/statement-digest/internal/report"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriter_Save(t *testing.T) {
	dir := t.TempDir()
	w := report.NewWriter(dir, report.NewJSONFormatter(true), discardLogger())
	w.Now = func() time.Time { return time.Date(2024, 4, 15, 9, 5, 7, 0, time.UTC) }

	path, err := w.Save("spending_by_category", map[string]int{"rows": 3})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "report_spending_by_category_20240415_090507.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows": 3}`, string(data))
}

func TestWriter_SaveSanitizesName(t *testing.T) {
	dir := t.TempDir()
	w := report.NewWriter(dir, report.NewJSONFormatter(false), discardLogger())
	w.Now = func() time.Time { return time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC) }

	path, err := w.Save("spending Дом/ремонт", []int{})
	require.NoError(t, err)

	assert.Equal(t, "report_spending_Дом_ремонт_20240415_000000.json", filepath.Base(path))
}

func TestWriter_SaveKeepsCollidingNames(t *testing.T) {
	dir := t.TempDir()
	w := report.NewWriter(dir, report.NewJSONFormatter(false), discardLogger())
	w.Now = func() time.Time { return time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC) }

	first, err := w.Save("Ж/д билеты", []string{"РЖД"})
	require.NoError(t, err)
	second, err := w.Save("Ж_д билеты", []string{"Аэроэкспресс"})
	require.NoError(t, err)

	assert.Equal(t, "report_Ж_д_билеты_20211231_000000.json", filepath.Base(first))
	assert.Equal(t, "report_Ж_д_билеты_20211231_000000_2.json", filepath.Base(second))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.JSONEq(t, `["РЖД"]`, string(data))

	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.JSONEq(t, `["Аэроэкспресс"]`, string(data))
}

func TestWriter_SaveAsAddsExtension(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := report.NewWriter(dir, report.NewJSONFormatter(true), discardLogger())

	path, err := w.SaveAs("main_page_data", map[string]string{"greeting": "Good night"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "main_page_data.json"), path)
	assert.FileExists(t, path)
}

func TestWriter_FormatError(t *testing.T) {
	w := report.NewWriter(t.TempDir(), report.NewJSONFormatter(true), discardLogger())

	_, err := w.SaveAs("broken.json", make(chan int))
	assert.Error(t, err)
}

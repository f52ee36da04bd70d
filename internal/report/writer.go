package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const fileTimestampLayout = "20060102_150405"

// Writer persists formatted report results as files in Dir
type Writer struct {
	Dir       string
	Formatter OutputFormatter
	Now       func() time.Time
	logger    *slog.Logger
}

// NewWriter creates a Writer that formats with formatter and writes into dir
func NewWriter(dir string, formatter OutputFormatter, logger *slog.Logger) *Writer {
	if dir == "" {
		dir = "."
	}

	return &Writer{
		Dir:       dir,
		Formatter: formatter,
		Now:       time.Now,
		logger:    logger,
	}
}

// Save writes result to report_<name>_<timestamp>.<ext> and returns the path.
// When that file already exists, for example because two names sanitize to
// the same text within one second, a _2, _3, ... suffix is added.
func (w *Writer) Save(name string, result any) (string, error) {
	stem := fmt.Sprintf("report_%s_%s", sanitize(name), w.Now().Format(fileTimestampLayout))
	ext := w.Formatter.FileExtension()

	filename := fmt.Sprintf("%s.%s", stem, ext)
	for n := 2; w.exists(filename); n++ {
		filename = fmt.Sprintf("%s_%d.%s", stem, n, ext)
	}

	return w.SaveAs(filename, result)
}

func (w *Writer) exists(filename string) bool {
	_, err := os.Stat(filepath.Join(w.Dir, filename))
	return err == nil
}

// SaveAs writes result to filename inside Dir. The formatter's extension is
// added when filename has none.
func (w *Writer) SaveAs(filename string, result any) (string, error) {
	if filepath.Ext(filename) == "" {
		filename = fmt.Sprintf("%s.%s", filename, w.Formatter.FileExtension())
	}

	output, err := w.Formatter.Format(result)
	if err != nil {
		return "", fmt.Errorf("formatting report %s: %w", filename, err)
	}

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(w.Dir, filename)
	if err := os.WriteFile(path, output, 0o644); err != nil {
		return "", fmt.Errorf("writing report file: %w", err)
	}

	w.logger.Info("report saved", "path", path)
	return path, nil
}

// sanitize turns a report name into something safe to embed in a file name
func sanitize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "report"
	}

	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}

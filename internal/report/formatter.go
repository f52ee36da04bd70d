package report

import (
	"bytes"
	"encoding/json"
)

// OutputFormatter defines the interface for formatting report results
type OutputFormatter interface {
	Format(result any) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats report results as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON. Non-ASCII text
// and HTML characters are written as-is.
func (f *JSONFormatter) Format(result any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if f.PrettyPrint {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(result); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}

package export

import (
	"strings"
)

// TextExporter writes the grid rows separated by newlines.
type TextExporter struct{}

// NewTextExporter creates a new text exporter
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export converts the grid to newline-terminated rows.
func (e *TextExporter) Export(src Source) ([]byte, error) {
	var sb strings.Builder
	for _, row := range src.Rows() {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// GetFileExtension returns the recommended file extension
func (e *TextExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *TextExporter) GetFormatName() string {
	return "Plain Text"
}

package export

import (
	"strconv"
	"strings"
)

// RulerExporter frames the grid with the last digit of every column index
// above and below it and the last digit of every row index on both sides:
//
//	 0123
//	0*  *0
//	1 ** 1
//	 0123
type RulerExporter struct{}

// NewRulerExporter creates a new ruler exporter
func NewRulerExporter() *RulerExporter {
	return &RulerExporter{}
}

// Export converts the grid to text with index rulers.
func (e *RulerExporter) Export(src Source) ([]byte, error) {
	width, _ := src.Size()
	header := " " + digits(width) + "\n"

	var sb strings.Builder
	sb.WriteString(header)
	for y, row := range src.Rows() {
		d := strconv.Itoa(y % 10)
		sb.WriteString(d)
		sb.WriteString(string(row))
		sb.WriteString(d)
		sb.WriteByte('\n')
	}
	sb.WriteString(header)
	return []byte(sb.String()), nil
}

// digits returns "0123456789012..." of the given length.
func digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + i%10)
	}
	return string(b)
}

// GetFileExtension returns the recommended file extension
func (e *RulerExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *RulerExporter) GetFormatName() string {
	return "Text with Rulers"
}

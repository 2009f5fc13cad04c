// Package export renders a finished grid to the text and image formats the
// CLI can write.
package export

import (
	"fmt"
	"sort"
	"strings"
)

// Format represents an export format
type Format string

const (
	// FormatText writes the rows joined by newlines.
	FormatText Format = "text"
	// FormatRuler writes the rows framed by column and row index digits.
	FormatRuler Format = "ruler"
	// FormatJSON writes the grid size and rows as a JSON document.
	FormatJSON Format = "json"
	// FormatPNG draws every cell with a 7x13 bitmap font.
	FormatPNG Format = "png"
)

// Source is a finished grid that can be read back row by row.
type Source interface {
	Size() (width, height int)
	Rows() [][]rune
}

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a grid to the target format
	Export(src Source) ([]byte, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// Options carries the settings some exporters need.
type Options struct {
	// Foreground and Background are "#rgb" or "#rrggbb" colours for PNG output.
	Foreground string
	Background string
}

// DefaultOptions returns black glyphs on a white background.
func DefaultOptions() Options {
	return Options{Foreground: "#000000", Background: "#ffffff"}
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format, opts Options) (Exporter, error) {
	switch format {
	case FormatText:
		return NewTextExporter(), nil
	case FormatRuler:
		return NewRulerExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatPNG:
		return NewPNGExporter(opts.Foreground, opts.Background)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt", "ascii":
		return FormatText, nil
	case "ruler", "headers":
		return FormatRuler, nil
	case "json":
		return FormatJSON, nil
	case "png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	formats := make([]Format, 0, len(GetFormatDescriptions()))
	for f := range GetFormatDescriptions() {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// GetFormatDescriptions returns human-readable descriptions of all formats
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatText:  "Plain text rows",
		FormatRuler: "Text rows with row/column index digits",
		FormatJSON:  "JSON document with size and rows",
		FormatPNG:   "PNG image, 7x13 pixels per cell",
	}
}

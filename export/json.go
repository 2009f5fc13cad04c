package export

import (
	"encoding/json"
)

// JSONExporter exports grids to JSON format
type JSONExporter struct{}

// gridDocument is the JSON shape of an exported grid.
type gridDocument struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a grid to JSON
func (e *JSONExporter) Export(src Source) ([]byte, error) {
	width, height := src.Size()
	doc := gridDocument{Width: width, Height: height}
	for _, row := range src.Rows() {
		doc.Rows = append(doc.Rows, string(row))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}

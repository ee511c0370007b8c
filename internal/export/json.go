package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/data-donation/internal"
)

// JSONExporter exports bundles in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports a bundle to JSON format
func (e *JSONExporter) Export(bundle internal.Bundle, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(bundle.AllTables())
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}

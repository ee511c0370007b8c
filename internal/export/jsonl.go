package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/data-donation/internal"
)

// JSONLExporter exports bundles as JSON Lines, one table per line
type JSONLExporter struct{}

// Export exports a bundle to JSONL format
func (e *JSONLExporter) Export(bundle internal.Bundle, w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, table := range bundle.AllTables() {
		if err := enc.Encode(table); err != nil {
			return err
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}

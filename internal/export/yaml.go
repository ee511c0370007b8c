package export

import (
	"io"

	"github.com/iksnae/data-donation/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports bundles in YAML format
type YAMLExporter struct{}

// Export exports a bundle to YAML format
func (e *YAMLExporter) Export(bundle internal.Bundle, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(bundle.AllTables())
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}

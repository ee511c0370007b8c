package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iksnae/data-donation/internal"
)

// MarkdownExporter exports bundles in Markdown format
type MarkdownExporter struct{}

// Export exports a bundle to Markdown, one pipe table per consent table
func (e *MarkdownExporter) Export(bundle internal.Bundle, w io.Writer) error {
	tables := bundle.AllTables()
	for i, table := range tables {
		_, _ = fmt.Fprintf(w, "## %s\n\n", table.Title.Text("en"))

		if len(table.Rows) == 0 {
			_, _ = fmt.Fprintf(w, "_No rows._\n")
		} else {
			writePipeTable(w, table)
		}

		if i < len(tables)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}

func writePipeTable(w io.Writer, table internal.Table) {
	columns := columnsOf(table)

	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(columns, " | "))
	separators := make([]string, len(columns))
	for i := range separators {
		separators[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(separators, " | "))

	for _, row := range table.Rows {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, escapeCell(fmt.Sprintf("%v", row[col])))
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	}
}

// columnsOf returns the union of row keys in sorted order for stable output
func columnsOf(table internal.Table) []string {
	seen := map[string]bool{}
	var columns []string
	for _, row := range table.Rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}
	sort.Strings(columns)
	return columns
}

// escapeCell keeps cell content from breaking the pipe table
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return s
}

package internal

import "encoding/json"

// Row is one record of a table. Columns serialize in sorted key order, so
// re-running extraction over the same document produces byte-identical
// output.
type Row map[string]any

// Table is one presentable table in a consent bundle.
type Table struct {
	ID    string       `json:"id"`
	Title Translatable `json:"title"`
	Rows  []Row        `json:"rows"`
}

// Bundle is everything shown to the user at consent time: one table per
// extracted concern plus the session log.
type Bundle struct {
	Tables   []Table `json:"tables"`
	LogTable Table   `json:"logTable"`
}

var logTableTitle = Translatable{
	"en": "Log messages",
	"de": "Log Nachrichten",
	"nl": "Log berichten",
}

// BuildBundle assembles extraction results and the session log into a
// consent bundle. Pure: it does not touch the log, only reads it.
func BuildBundle(results []ExtractionResult, log *Log) Bundle {
	tables := make([]Table, 0, len(results))
	for _, r := range results {
		rows := r.Rows
		if rows == nil {
			rows = []Row{}
		}
		tables = append(tables, Table{ID: r.ID, Title: r.Title, Rows: rows})
	}

	logRows := make([]Row, 0, log.Len())
	for _, e := range log.Entries() {
		logRows = append(logRows, Row{"kind": e.Kind, "message": e.Message})
	}

	return Bundle{
		Tables:   tables,
		LogTable: Table{ID: "log_messages", Title: logTableTitle, Rows: logRows},
	}
}

// AllTables returns the data tables followed by the log table.
func (b Bundle) AllTables() []Table {
	return append(append([]Table{}, b.Tables...), b.LogTable)
}

// Serialize renders the bundle as the JSON transport format donated to the
// collection endpoint: a flat array of {id, title, rows} objects.
func (b Bundle) Serialize() (string, error) {
	data, err := json.Marshal(b.AllTables())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ConsentPrompt builds the consent form presenting this bundle.
func (b Bundle) ConsentPrompt() *ConsentPrompt {
	return &ConsentPrompt{
		Tables:     b.Tables,
		MetaTables: []Table{b.LogTable},
	}
}

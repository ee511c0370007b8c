package internal

import "fmt"

// ExtractionResult is one named table produced by a single extractor.
// Immutable once returned; an extractor that finds nothing usable returns a
// result with zero rows rather than an error.
type ExtractionResult struct {
	ID    string
	Title Translatable
	Rows  []Row
}

// Empty reports whether the result carries no rows.
func (r ExtractionResult) Empty() bool {
	return len(r.Rows) == 0
}

// Extractor maps a parsed export document to one ExtractionResult. It may
// append diagnostics to the log but must never fail the run: partial or
// malformed input yields fewer rows, not an error.
type Extractor struct {
	Name string
	Run  func(doc Document, log *Log) ExtractionResult
}

// Registry is an ordered set of independent extractors for one platform's
// export format.
type Registry struct {
	extractors []Extractor
}

// NewRegistry builds a registry running the given extractors in order.
func NewRegistry(extractors ...Extractor) *Registry {
	return &Registry{extractors: extractors}
}

// Run applies every extractor to the document. Output order is declaration
// order. A panicking extractor is confined: its result is an empty table
// and a log entry, and the remaining extractors still run.
func (reg *Registry) Run(doc Document, log *Log) []ExtractionResult {
	results := make([]ExtractionResult, 0, len(reg.extractors))
	for _, ex := range reg.extractors {
		results = append(results, runOne(ex, doc, log))
	}
	return results
}

func runOne(ex Extractor, doc Document, log *Log) (result ExtractionResult) {
	defer func() {
		if r := recover(); r != nil {
			err := &ExtractionError{Extractor: ex.Name, Err: fmt.Errorf("%v", r)}
			log.Append("error", err.Error())
			result = ExtractionResult{ID: ex.Name}
		}
	}()
	return ex.Run(doc, log)
}

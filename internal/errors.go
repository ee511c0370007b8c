package internal

import "fmt"

// ParseError represents errors parsing an export document
type ParseError struct {
	Source string // "document", or a file path
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s]: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExtractionError represents a failure confined to a single extractor
type ExtractionError struct {
	Extractor string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error [%s]: %v", e.Extractor, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// DonationError represents errors handing a payload to the collection endpoint
type DonationError struct {
	Key string
	Err error
}

func (e *DonationError) Error() string {
	return fmt.Sprintf("donation error [%s]: %v", e.Key, e.Err)
}

func (e *DonationError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during bundle export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

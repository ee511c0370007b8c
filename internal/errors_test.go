package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestParseError(t *testing.T) {
	originalErr := errors.New("invalid JSON")
	err := &ParseError{
		Source: "document",
		Err:    originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "parse error") {
		t.Errorf("ParseError.Error() should contain 'parse error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "document") {
		t.Errorf("ParseError.Error() should contain source, got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("ParseError.Unwrap() should return original error")
	}
}

func TestExtractionError(t *testing.T) {
	originalErr := errors.New("unexpected structure")
	err := &ExtractionError{
		Extractor: "likes",
		Err:       originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "extraction error") {
		t.Errorf("ExtractionError.Error() should contain 'extraction error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "likes") {
		t.Errorf("ExtractionError.Error() should contain extractor name, got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("ExtractionError.Unwrap() should return original error")
	}
}

func TestDonationError(t *testing.T) {
	originalErr := errors.New("sink unavailable")
	err := &DonationError{
		Key: "session-1-TikTok",
		Err: originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "donation error") {
		t.Errorf("DonationError.Error() should contain 'donation error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "session-1-TikTok") {
		t.Errorf("DonationError.Error() should contain key, got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("DonationError.Unwrap() should return original error")
	}
}

func TestExportError(t *testing.T) {
	originalErr := errors.New("write failed")
	err := &ExportError{
		Format: "yaml",
		Path:   "/output/bundle.yaml",
		Err:    originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "export error") {
		t.Errorf("ExportError.Error() should contain 'export error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "yaml") {
		t.Errorf("ExportError.Error() should contain format, got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("ExportError.Unwrap() should return original error")
	}
}

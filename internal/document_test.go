package internal

import (
	"errors"
	"testing"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"a": {"b": 1}}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if doc == nil {
		t.Fatal("ParseDocument() returned nil document")
	}
}

func TestParseDocumentInvalid(t *testing.T) {
	_, err := ParseDocument([]byte(`not json at all`))
	if err == nil {
		t.Fatal("ParseDocument() should fail on invalid JSON")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("error type = %T, want *ParseError", err)
	}
}

func TestDocumentMap(t *testing.T) {
	doc := Document{
		"a": map[string]any{
			"b": map[string]any{"c": "value"},
		},
		"list": []any{1, 2},
	}

	tests := []struct {
		name string
		keys []string
		want int // number of keys in result
	}{
		{"nested path", []string{"a", "b"}, 1},
		{"missing key", []string{"a", "missing"}, 0},
		{"missing root", []string{"nope"}, 0},
		{"non-object value", []string{"list"}, 0},
		{"path through non-object", []string{"list", "a"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := doc.Map(tt.keys...)
			if got == nil {
				t.Fatal("Map() should never return nil")
			}
			if len(got) != tt.want {
				t.Errorf("Map(%v) has %d keys, want %d", tt.keys, len(got), tt.want)
			}
		})
	}
}

func TestDocumentList(t *testing.T) {
	doc := Document{
		"a": map[string]any{
			"items":  []any{"x", "y"},
			"scalar": "nope",
		},
	}

	if got := doc.List("a", "items"); len(got) != 2 {
		t.Errorf("List(a, items) = %v, want 2 elements", got)
	}
	if got := doc.List("a", "missing"); got != nil {
		t.Errorf("List() on missing key = %v, want nil", got)
	}
	if got := doc.List("a", "scalar"); got != nil {
		t.Errorf("List() on non-array = %v, want nil", got)
	}
	if got := doc.List(); got != nil {
		t.Errorf("List() with no keys = %v, want nil", got)
	}
}

func TestDocumentString(t *testing.T) {
	doc := Document{"s": "text", "n": float64(42), "b": true}

	if got := doc.String("s"); got != "text" {
		t.Errorf("String(s) = %q, want text", got)
	}
	if got := doc.String("n"); got != "42" {
		t.Errorf("String(n) = %q, want 42", got)
	}
	if got := doc.String("b"); got != "" {
		t.Errorf("String(b) = %q, want empty", got)
	}
	if got := doc.String("missing"); got != "" {
		t.Errorf("String(missing) = %q, want empty", got)
	}
}

func TestField(t *testing.T) {
	if got := Field(map[string]any{"k": "v"}); got.String("k") != "v" {
		t.Errorf("Field() should wrap objects, got %v", got)
	}
	if got := Field("scalar"); len(got) != 0 {
		t.Errorf("Field() on non-object = %v, want empty document", got)
	}
	if got := Field(nil); len(got) != 0 {
		t.Errorf("Field(nil) = %v, want empty document", got)
	}
}

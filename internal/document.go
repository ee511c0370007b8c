package internal

import (
	"encoding/json"
	"fmt"
)

// Document is a parsed export file: an arbitrary nested JSON mapping.
// Navigation helpers default absent or mistyped paths to empty containers
// so extractors never have to guard individual lookups.
type Document map[string]any

// ParseDocument parses raw JSON into a Document.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Source: "document", Err: err}
	}
	return doc, nil
}

// Map descends through nested objects by key. Any missing key or
// non-object value along the path yields an empty Document.
func (d Document) Map(keys ...string) Document {
	cur := d
	for _, key := range keys {
		next, ok := cur[key].(map[string]any)
		if !ok {
			return Document{}
		}
		cur = next
	}
	return cur
}

// List returns the array at the given nested path, or an empty slice.
// All but the last key must address objects; the last must address an array.
func (d Document) List(keys ...string) []any {
	if len(keys) == 0 {
		return nil
	}
	parent := d.Map(keys[:len(keys)-1]...)
	list, ok := parent[keys[len(keys)-1]].([]any)
	if !ok {
		return nil
	}
	return list
}

// String returns the string value at key, or "" when absent or not a string.
func (d Document) String(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case float64:
		// Numbers appear as float64 after json.Unmarshal; render them so
		// numeric counters in exports survive as strings.
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

// Field wraps an arbitrary array element as a Document for further
// navigation; non-object elements become an empty Document.
func Field(v any) Document {
	m, ok := v.(map[string]any)
	if !ok {
		return Document{}
	}
	return Document(m)
}

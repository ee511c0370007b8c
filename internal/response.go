package internal

import "encoding/json"

// Response is the typed payload the host returns when it resumes a
// suspended session. It is a closed set; the processor checks the concrete
// variant against the prompt that produced it and treats any mismatch as a
// skip.
type Response interface {
	isResponse()
}

// SkipResponse signals that the user skipped or cancelled the prompt.
type SkipResponse struct{}

// StringResponse carries raw text, e.g. the contents of a selected file.
type StringResponse struct {
	Value string
}

// BoolResponse carries a yes/no answer to a ConfirmPrompt.
type BoolResponse struct {
	Value bool
}

// JSONResponse carries a structured consent payload. The value may differ
// from the tables originally presented: the host may let the user edit or
// drop rows before approving.
type JSONResponse struct {
	Value json.RawMessage
}

func (SkipResponse) isResponse()   {}
func (StringResponse) isResponse() {}
func (BoolResponse) isResponse()   {}
func (JSONResponse) isResponse()   {}

package internal

// LogEntry is one diagnostic event recorded during a session.
type LogEntry struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Log is an append-only sequence of diagnostic entries owned by a single
// session. Extractors and the processor write to it; the consent form
// flushes it into the log table so the user sees exactly what was recorded.
type Log struct {
	entries []LogEntry
}

// Append records an entry and mirrors it to the debug logger.
func (l *Log) Append(kind, message string) {
	l.entries = append(l.entries, LogEntry{Kind: kind, Message: message})
	LogDebug("%s: %s", kind, message)
}

// Debug records a debug-level entry.
func (l *Log) Debug(message string) {
	l.Append("debug", message)
}

// Entries returns the recorded entries in append order.
func (l *Log) Entries() []LogEntry {
	return l.entries
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}

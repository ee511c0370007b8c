package bridge

import "context"

// MemorySink records donations in memory, preserving arrival order.
// Intended for tests and dry runs.
type MemorySink struct {
	Donations []Donation
}

// Store appends the donation to the in-memory record.
func (s *MemorySink) Store(ctx context.Context, key, payload string) error {
	s.Donations = append(s.Donations, Donation{Key: key, Payload: payload})
	return nil
}

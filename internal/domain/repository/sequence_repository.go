package repository

import "context"

// SequenceRepository backs invoice numbering with a persisted counter
type SequenceRepository interface {
	// Next atomically increments the named sequence and returns the new value.
	// The first call on a fresh store returns 1.
	Next(ctx context.Context, name string) (int64, error)
	// Peek returns the value Next would produce, without incrementing
	Peek(ctx context.Context, name string) (int64, error)
}

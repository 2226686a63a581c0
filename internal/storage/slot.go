// Package storage persists FounderStack state in a local key-value slot.
//
// The whole snapshot is stored as one JSON blob under a fixed key. Loading
// runs a forward-only migration chain over the raw document, so blobs written
// by older versions keep working. Writes go through a Writer, a single
// goroutine that coalesces rapid saves and reports their outcome.
package storage

import "context"

// Slot is a local key-value store.
type Slot interface {
	// Get returns the value stored under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

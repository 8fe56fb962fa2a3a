package kv

import "context"

// Store defines the key-value medium used for state persistence.
// Implementations must treat values as opaque blobs and keys as
// flat strings; no enumeration is required.
type Store interface {
	// Get returns the value stored under key.
	// It returns ErrKeyNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

package kv

import "context"

// NoopStore implements Store with persistence disabled: reads always
// miss and writes succeed without effect. Callers that resume from it
// simply find no prior state.
type NoopStore struct{}

// Get always returns ErrKeyNotFound.
func (NoopStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrKeyNotFound
}

// Set discards the value.
func (NoopStore) Set(ctx context.Context, key string, value []byte) error {
	return nil
}

// Delete does nothing.
func (NoopStore) Delete(ctx context.Context, key string) error {
	return nil
}

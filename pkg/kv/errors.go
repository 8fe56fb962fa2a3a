package kv

import "errors"

var (
	// ErrKeyNotFound is returned when no value exists under the requested key.
	ErrKeyNotFound = errors.New("kv: key not found")

	// ErrInvalidKey is returned when a key is empty or escapes the store's namespace.
	ErrInvalidKey = errors.New("kv: invalid key")

	// ErrInvalidConfig is returned when a store is constructed with unusable configuration.
	ErrInvalidConfig = errors.New("kv: invalid configuration")

	// ErrFailedToParseRedisURL is returned when the redis connection URL cannot be parsed.
	ErrFailedToParseRedisURL = errors.New("kv: failed to parse redis connection string")

	// ErrRedisNotReady is returned when redis does not become reachable within the retry budget.
	ErrRedisNotReady = errors.New("kv: redis did not become ready within the given time period")
)

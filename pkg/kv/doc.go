// Package kv provides a minimal key-value storage abstraction for
// persisting small opaque blobs under flat string keys.
//
// The package exists to decouple state snapshots from the medium they
// are written to. Any back-end that can get, set and delete a blob by
// key satisfies the Store interface; five implementations ship out of
// the box:
//
//   - MemoryStore — in-process map; state dies with the process
//   - FileStore   — one file per key under a base directory; survives restarts
//   - RedisStore  — redis-backed, optional TTL
//   - S3Store     — one object per key in an S3 bucket
//   - NoopStore   — persistence disabled; reads always miss
//
// # Usage
//
//	import "github.com/guardkit/guardkit/pkg/kv"
//
//	store, err := kv.NewFileStore(".state")
//	if err != nil {
//	    // handle error
//	}
//
//	if err := store.Set(ctx, "acl", blob); err != nil {
//	    // handle error
//	}
//
//	blob, err := store.Get(ctx, "acl")
//	if errors.Is(err, kv.ErrKeyNotFound) {
//	    // no prior state
//	}
//
// Redis-backed persistence:
//
//	client, err := kv.ConnectRedis(ctx, kv.RedisConfig{
//	    ConnectionURL: "redis://localhost:6379/0",
//	    RetryAttempts: 3,
//	    RetryInterval: time.Second,
//	    ConnectTimeout: 10 * time.Second,
//	})
//	store := kv.NewRedisStore(client, kv.WithTTL(24*time.Hour))
//
// # Error Handling
//
// A missing key is reported as ErrKeyNotFound from every back-end, so
// callers can treat "no prior state" uniformly with errors.Is. Empty
// keys and keys that would escape a store's namespace are rejected
// with ErrInvalidKey.
//
// # Concurrency
//
// All implementations are safe for concurrent use. No store performs
// cross-writer coordination: concurrent writers of the same key follow
// last-write-wins semantics.
package kv

// Package cache stores parsed manifests between runs.
//
// Opening every archive in a large mod folder dominates a run. Entries are
// keyed by archive path, size and modification time (see [ManifestKey]),
// so an unchanged archive is never re-read.
//
// # Backends
//
//   - [FileCache]: JSON entries under a directory, used by the CLI
//   - [MemoryCache]: in-process LRU built on golang-lru
//   - [Layered]: a fast cache in front of a slow one
//   - [NullCache]: never stores anything (--no-cache)
//
// [Loader] wraps a manifest loader with any backend. Failed loads are never
// stored.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired or corrupt entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

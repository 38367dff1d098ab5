package cache

import (
	"context"
	"time"
)

// NullCache never stores anything, so every manifest is read from its
// archive. The CLI uses it for --no-cache and when no cache directory can
// be determined; [NewRunner] falls back to it for a nil cache.
//
// [NewRunner]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/pipeline#NewRunner
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() *NullCache {
	return &NullCache{}
}

// Get always returns a cache miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)

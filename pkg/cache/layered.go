package cache

import (
	"context"
	"errors"
	"time"
)

// Layered reads through a fast cache into a slow one. Hits in the slow
// cache are copied into the fast one; writes go to both.
type Layered struct {
	fast, slow Cache
}

// NewLayered stacks fast in front of slow.
func NewLayered(fast, slow Cache) *Layered {
	return &Layered{fast: fast, slow: slow}
}

// Get checks the fast cache first, then the slow one.
func (c *Layered) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if data, ok, err := c.fast.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}
	data, ok, err := c.slow.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	_ = c.fast.Set(ctx, key, data, 0)
	return data, true, nil
}

// Set writes to both layers.
func (c *Layered) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return errors.Join(c.fast.Set(ctx, key, data, ttl), c.slow.Set(ctx, key, data, ttl))
}

// Delete removes key from both layers.
func (c *Layered) Delete(ctx context.Context, key string) error {
	return errors.Join(c.fast.Delete(ctx, key), c.slow.Delete(ctx, key))
}

// Close closes both layers.
func (c *Layered) Close() error {
	return errors.Join(c.fast.Close(), c.slow.Close())
}

// Ensure Layered implements Cache.
var _ Cache = (*Layered)(nil)

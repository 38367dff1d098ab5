package cache

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/matzehuels/modgraph/pkg/observability"
)

// TTLManifest is how long a parsed manifest stays cached. Keys already
// change with the archive, so the TTL only bounds stale disk usage.
const TTLManifest = 30 * 24 * time.Hour

// LoadFunc loads a value derived from the file at path.
type LoadFunc[T any] func(ctx context.Context, path string) (T, error)

// Loader wraps load with c. Results are keyed by [ManifestKey] on the
// file's path, size and modification time, and stored as JSON.
//
// Only successful loads are stored: a broken archive is re-read, and
// re-reported, on every run. A file that cannot be stat'ed, an unreadable
// entry, or a failing cache all fall back to calling load directly.
func Loader[T any](c Cache, ttl time.Duration, load LoadFunc[T]) LoadFunc[T] {
	return func(ctx context.Context, path string) (T, error) {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return load(ctx, path)
		}

		hooks := observability.Cache()
		key := ManifestKey(path, info.Size(), info.ModTime())

		if data, hit, err := c.Get(ctx, key); err == nil && hit {
			var v T
			if err := json.Unmarshal(data, &v); err == nil {
				hooks.OnCacheHit(ctx, key)
				return v, nil
			}
		}
		hooks.OnCacheMiss(ctx, key)

		v, err := load(ctx, path)
		if err != nil {
			return v, err
		}
		if data, err := json.Marshal(v); err == nil {
			if err := c.Set(ctx, key, data, ttl); err == nil {
				hooks.OnCacheSet(ctx, key, len(data))
			}
		}
		return v, nil
	}
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// manifestKeyVersion changes whenever the cached manifest shape changes,
// invalidating older entries.
const manifestKeyVersion = 1

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Use full SHA-256 hash (64 hex chars / 256 bits) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// ManifestKey returns the cache key for the manifest of the archive at
// path. Any change in size or modification time yields a different key.
func ManifestKey(path string, size int64, modTime time.Time) string {
	return hashKey("manifest", manifestKeyVersion, path, size, modTime.UTC().UnixNano())
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

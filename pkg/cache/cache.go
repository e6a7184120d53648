// Package cache stores solve reports and rendered artifacts between runs.
//
// Searching a maze is deterministic: the same maze text, algorithm and
// heuristic always yield the same report. The pipeline therefore keys a
// solve by a hash of those inputs and an artifact by a hash of the report
// plus its render options, and reuses earlier results when they exist.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance (HTTP server)
//   - [NullCache]: never stores anything (--no-cache)
//
// # Keys
//
// A [Keyer] builds every key. [DefaultKeyer] hashes the key inputs with
// SHA-256; [ScopedKeyer] prefixes another keyer to separate namespaces.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.SolveKey(cache.Hash(mazeText), cache.SolveKeyOpts{
//	    Algorithm: "astar",
//	    Heuristic: "manhattan",
//	})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Default TTLs. Reports never go stale, so these only bound disk and
// memory use.
const (
	TTLSolve    = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Key types passed to cache hooks.
const (
	KeyTypeSolve    = "solve"
	KeyTypeArtifact = "artifact"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Package cache stores rendered diagrams between runs.
//
// Rendering a large containment tree through Graphviz dominates the cost of a
// pipeline run, while import and containment resolution are cheap. The
// pipeline therefore caches only the final artifact, keyed by a hash of the
// DOT source and the render options: an unchanged document re-renders from
// the cache even when its file was touched.
//
// Two implementations are provided: [FileCache] for the CLI and [NullCache]
// when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss. Expired
	// entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// TTLArtifact is the default lifetime of a rendered artifact.
const TTLArtifact = 7 * 24 * time.Hour

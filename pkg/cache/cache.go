// Package cache stores generated layouts keyed by request fingerprint.
//
// Only seeded requests are cacheable: an unseeded request draws a fresh
// seed and is meant to differ on every call. Callers treat cache failures
// as misses; a broken backend slows generation down but never fails it.
//
// # Backends
//
//   - [NullCache]: caching disabled.
//   - [FileCache]: one JSON file per entry, for CLI use.
//   - [RedisCache]: shared cache for server deployments.
//   - [MongoCache]: a collection with a TTL index, for deployments that
//     already run MongoDB.
//
// Keys come from a [Keyer] so multi-tenant deployments can scope them with
// [NewScopedKeyer].
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// TTLLayout is how long generated layouts are kept.
const TTLLayout = 7 * 24 * time.Hour

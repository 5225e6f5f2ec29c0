// Package cache memoizes rendered mazes.
//
// A maze is fully determined by its dimensions and seed, so a rendering can be
// reused whenever the same rows, columns, seed, mode and format are requested
// again. The HTTP server keeps one [MemoryCache] for this; [NullCache]
// disables caching.
//
// Entries live in memory only and vanish with the process.
package cache

import (
	"context"
	"time"
)

// Cache stores byte slices under string keys.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key if present.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKeyOpts identifies one rendering of a seeded maze.
type ArtifactKeyOpts struct {
	Rows      int    `json:"rows"`
	Columns   int    `json:"columns"`
	Seed      uint64 `json:"seed"`
	Mode      string `json:"mode"`
	Format    string `json:"format"`
	Size      int    `json:"size"`
	Visualize bool   `json:"visualize"`
}

// ArtifactKey returns the cache key for a rendering.
func ArtifactKey(opts ArtifactKeyOpts) string {
	return hashKey("artifact", opts)
}

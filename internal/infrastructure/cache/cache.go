// Package cache provides the key-value caches backing the meeting projection cache.
package cache

import (
	"context"
	"time"
)

// Cache is a string key-value cache with per-entry expiration
type Cache interface {
	// Get returns the value and whether it was present and unexpired
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

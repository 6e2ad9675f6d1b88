// Package cache keeps extracted page text between polls so the same URL is
// not fetched again for every task that references it.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/openpaws/synthfeedback/internal/model"
)

// Cache stores opaque values under string keys with a time-to-live.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a fixed-length cache key for a value in the given namespace.
func Key(namespace, value string) string {
	hash := sha256.Sum256([]byte(value))
	return "synthfeedback:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}

// New builds the cache described by cfg: nothing when disabled, memory only
// when no directory is configured, memory in front of disk otherwise.
func New(cfg model.CacheConfig) Cache {
	switch {
	case !cfg.Enabled:
		return Nop{}
	case cfg.Dir == "":
		return NewMemoryCache(cfg.MemoryTTL, 10*time.Minute)
	default:
		return NewLayeredCache(cfg.MemoryTTL, cfg.Dir, cfg.DiskTTL)
	}
}

// Nop is a Cache that never holds anything.
type Nop struct{}

func (Nop) Get(string) ([]byte, bool)               { return nil, false }
func (Nop) Set(string, []byte, time.Duration) error { return nil }
func (Nop) Delete(string) error                     { return nil }
func (Nop) Clear() error                            { return nil }

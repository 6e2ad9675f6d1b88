package cache

import (
	"errors"
	"sync/atomic"
	"time"
)

// Stats counts lookups by the layer that answered them.
type Stats struct {
	MemoryHits int64
	DiskHits   int64
	Misses     int64
}

// LayeredCache reads from memory first and falls back to disk.
type LayeredCache struct {
	memory Cache
	disk   Cache

	memoryHits atomic.Int64
	diskHits   atomic.Int64
	misses     atomic.Int64
}

// NewLayeredCache creates a memory cache in front of a disk cache.
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get checks memory, then disk. Disk hits are promoted into memory.
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		c.memoryHits.Add(1)
		return val, true
	}
	val, found := c.disk.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	c.diskHits.Add(1)
	_ = c.memory.Set(key, val, 0)
	return val, true
}

// Set writes through to both layers.
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	return errors.Join(c.memory.Set(key, value, ttl), c.disk.Set(key, value, ttl))
}

func (c *LayeredCache) Delete(key string) error {
	return errors.Join(c.memory.Delete(key), c.disk.Delete(key))
}

func (c *LayeredCache) Clear() error {
	return errors.Join(c.memory.Clear(), c.disk.Clear())
}

// Stats reports lookup counts since creation.
func (c *LayeredCache) Stats() Stats {
	return Stats{
		MemoryHits: c.memoryHits.Load(),
		DiskHits:   c.diskHits.Load(),
		Misses:     c.misses.Load(),
	}
}

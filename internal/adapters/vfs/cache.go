package vfs

import (
	"sync"

	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// CacheShape names a read cache representation.
type CacheShape string

const (
	// ShapeKeyed selects KeyedCache.
	ShapeKeyed CacheShape = "keyed"
	// ShapeLegacy selects LegacyCache.
	ShapeLegacy CacheShape = "legacy"
)

// NewReadCache returns the read cache for the given shape. The empty shape selects ShapeKeyed.
func NewReadCache(shape CacheShape) (ports.ReadCache, error) {
	switch shape {
	case "", ShapeKeyed:
		return NewKeyedCache(), nil
	case ShapeLegacy:
		return NewLegacyCache(), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownCacheShape, "invalid cache shape"), "shape", string(shape))
	}
}

var (
	_ ports.ReadCache = (*KeyedCache)(nil)
	_ ports.ReadCache = (*LegacyCache)(nil)
)

// KeyedCache is a read cache backed by a keyed concurrent collection.
type KeyedCache struct {
	data sync.Map
}

// NewKeyedCache creates an empty KeyedCache.
func NewKeyedCache() *KeyedCache {
	return &KeyedCache{}
}

// Load returns the cached content for path.
func (c *KeyedCache) Load(path string) ([]byte, bool) {
	v, ok := c.data.Load(path)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Store caches content for path.
func (c *KeyedCache) Store(path string, content []byte) {
	c.data.Store(path, content)
}

// Evict drops path from the cache.
func (c *KeyedCache) Evict(path string) {
	c.data.Delete(path)
}

// LegacyCache is a read cache backed by a plain map.
type LegacyCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewLegacyCache creates an empty LegacyCache.
func NewLegacyCache() *LegacyCache {
	return &LegacyCache{data: make(map[string][]byte)}
}

// Load returns the cached content for path.
func (c *LegacyCache) Load(path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	content, ok := c.data[path]
	return content, ok
}

// Store caches content for path.
func (c *LegacyCache) Store(path string, content []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[path] = content
}

// Evict drops path from the cache if it is present.
func (c *LegacyCache) Evict(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[path]; ok {
		delete(c.data, path)
	}
}

package ports

// ReadCache holds content previously read from the virtual filesystem.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ReadCache interface {
	// Load returns the cached content for path.
	Load(path string) ([]byte, bool)
	// Store caches content for path.
	Store(path string, content []byte)
	// Evict drops path from the cache. Evicting an absent path is a no-op.
	Evict(path string)
}

// Package cas implements build info storage for incremental bundle builds.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore using a file-per-bundle strategy.
// Records that were read or written are kept in memory for the lifetime of the store.
type Store struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]domain.BuildInfo
}

// NewStore creates a new BuildInfoStore backed by the directory at the given path.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, zerr.Wrap(domain.ErrStoreWriteFailed, "build info store directory is empty")
	}
	return &Store{
		dir:   filepath.Clean(dir),
		cache: make(map[string]domain.BuildInfo),
	}, nil
}

// Get retrieves the build info for a given bundle.
func (s *Store) Get(bundle string) (*domain.BuildInfo, error) {
	s.mu.RLock()
	info, ok := s.cache[bundle]
	s.mu.RUnlock()
	if ok {
		return &info, nil
	}

	filename := s.filename(bundle)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "bundle", bundle)
	}

	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal build info"), "bundle", bundle)
	}

	s.mu.Lock()
	s.cache[bundle] = info
	s.mu.Unlock()

	return &info, nil
}

// Put stores the build info.
func (s *Store) Put(info domain.BuildInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build info")
	}

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for build info store"), "path", s.dir)
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(s.filename(info.Bundle), data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "bundle", info.Bundle)
	}

	s.mu.Lock()
	s.cache[info.Bundle] = info
	s.mu.Unlock()

	return nil
}

func (s *Store) filename(bundle string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x.json", xxhash.Sum64String(bundle)))
}

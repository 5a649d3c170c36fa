// Package vfs implements the in-memory output filesystem used by the reference host.
package vfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/adnsv/go-utils/filesystem"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/zerr"
)

type entry struct {
	content []byte
	times   domain.Timestamps
}

// Overlay is an in-memory filesystem keyed by absolute path.
//
// Reads go through a ReadCache. Writes never touch the cache, so a writer must
// call Invalidate before Write for the next Read to observe the new content.
type Overlay struct {
	mu      sync.RWMutex
	entries map[string]entry
	cache   ports.ReadCache
}

// NewOverlay creates an empty Overlay reading through cache.
func NewOverlay(cache ports.ReadCache) *Overlay {
	return &Overlay{
		entries: make(map[string]entry),
		cache:   cache,
	}
}

// Invalidate evicts any cached read of path.
func (o *Overlay) Invalidate(path string) {
	o.cache.Evict(filepath.Clean(path))
}

// Write stores content at path.
func (o *Overlay) Write(path string, content []byte, times domain.Timestamps) error {
	if !filepath.IsAbs(path) {
		return zerr.With(zerr.New("virtual path must be absolute"), "path", path)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries[filepath.Clean(path)] = entry{content: slices.Clone(content), times: times}
	return nil
}

// Read returns the content at path, serving a cached read when one exists.
func (o *Overlay) Read(path string) ([]byte, error) {
	path = filepath.Clean(path)
	if content, ok := o.cache.Load(path); ok {
		return content, nil
	}

	o.mu.RLock()
	e, ok := o.entries[path]
	o.mu.RUnlock()
	if !ok {
		return nil, zerr.With(zerr.Wrap(fs.ErrNotExist, "virtual file not found"), "path", path)
	}

	o.cache.Store(path, e.content)
	return e.content, nil
}

// Times returns the timestamps stored with path.
func (o *Overlay) Times(path string) (domain.Timestamps, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	e, ok := o.entries[filepath.Clean(path)]
	return e.times, ok
}

// Digest returns the xxhash of the content stored at path.
func (o *Overlay) Digest(path string) (uint64, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	e, ok := o.entries[filepath.Clean(path)]
	if !ok {
		return 0, false
	}
	return xxhash.Sum64(e.content), true
}

// Paths returns every stored path in lexical order.
func (o *Overlay) Paths() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	paths := make([]string, 0, len(o.entries))
	for p := range o.entries {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Flush writes the given virtual paths to disk. target maps a virtual path to
// its location on disk. Unchanged files are left alone; timestamps are applied
// whenever the entry carries a modification time.
func (o *Overlay) Flush(paths []string, target func(string) string) error {
	for _, p := range paths {
		o.mu.RLock()
		e, ok := o.entries[filepath.Clean(p)]
		o.mu.RUnlock()
		if !ok {
			return zerr.With(zerr.Wrap(fs.ErrNotExist, "virtual file not found"), "path", p)
		}

		dest := target(p)
		if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dest)
		}
		if err := filesystem.WriteFileIfChanged(dest, e.content); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write output"), "path", dest)
		}
		if !e.times.Mtime.IsZero() {
			atime := e.times.Atime
			if atime.IsZero() {
				atime = e.times.Mtime
			}
			if err := os.Chtimes(dest, atime, e.times.Mtime); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to set output timestamps"), "path", dest)
			}
		}
	}
	return nil
}

// Package host implements the build-system side of a transform for the CLI.
package host

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/fontpack/internal/adapters/vfs"
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Host = (*Host)(nil)

// Host serves one bundle. Outputs land in a shared Overlay; dependencies and
// written paths are tracked per bundle so they can be persisted and flushed.
type Host struct {
	overlay *vfs.Overlay
	baseDir string
	outDir  string

	mu      sync.Mutex
	deps    domain.Dependencies
	written []string
}

// New creates a Host for a bundle living in baseDir, flushing into outDir.
func New(overlay *vfs.Overlay, baseDir, outDir string) *Host {
	return &Host{
		overlay: overlay,
		baseDir: baseDir,
		outDir:  outDir,
	}
}

// AddDependency implements ports.DependencyTracker.
func (h *Host) AddDependency(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deps.Files = append(h.deps.Files, path)
}

// AddContextDependency implements ports.DependencyTracker.
func (h *Host) AddContextDependency(dir string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deps.Directories = append(h.deps.Directories, dir)
}

// Invalidate implements ports.VirtualFS.
func (h *Host) Invalidate(path string) {
	h.overlay.Invalidate(path)
}

// Write implements ports.VirtualFS.
func (h *Host) Write(path string, content []byte, times domain.Timestamps) error {
	if err := h.overlay.Write(path, content, times); err != nil {
		return err
	}
	h.record(filepath.Clean(path))
	return nil
}

// EmitFile implements ports.AssetEmitter. Relative names are placed next to the bundle.
func (h *Host) EmitFile(name string, content []byte) error {
	if name == "" {
		return zerr.New("asset name is empty")
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(h.baseDir, filepath.FromSlash(name))
	}
	h.overlay.Invalidate(path)
	return h.Write(path, content, domain.Timestamps{})
}

// Timestamps implements ports.Host.
func (h *Host) Timestamps(path string) (domain.Timestamps, error) {
	return vfs.StatTimes(path)
}

func (h *Host) record(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !slices.Contains(h.written, path) {
		h.written = append(h.written, path)
	}
}

// Dependencies returns a copy of the registered dependencies.
func (h *Host) Dependencies() domain.Dependencies {
	h.mu.Lock()
	defer h.mu.Unlock()
	return domain.Dependencies{
		Files:       slices.Clone(h.deps.Files),
		Directories: slices.Clone(h.deps.Directories),
	}
}

// Written returns the virtual paths written through this host, in write order.
func (h *Host) Written() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.written)
}

// Target maps a virtual path to its location under the output directory.
// Paths outside the bundle directory keep only their base name.
func (h *Host) Target(path string) string {
	rel, err := filepath.Rel(h.baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(path)
	}
	return filepath.Join(h.outDir, rel)
}

// Flush writes every output of this host to disk and returns the disk paths.
func (h *Host) Flush() ([]string, error) {
	written := h.Written()
	if err := h.overlay.Flush(written, h.Target); err != nil {
		return nil, err
	}
	outputs := make([]string, len(written))
	for i, p := range written {
		outputs[i] = h.Target(p)
	}
	return outputs, nil
}

package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// missingMarker is hashed in place of a file that does not exist.
const missingMarker = "\x00missing"

// Hasher provides hashing functionality for bundles and files.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeInputHash hashes the bundle's source documents, its file
// dependencies and the full contents of its watched directories.
//
// A missing file hashes to a fixed marker instead of failing, so a deleted
// input is reported by the rebuild rather than by the cache check.
func (h *Hasher) ComputeInputHash(sources []string, deps domain.Dependencies, baseDir string) (string, error) {
	hasher := xxhash.New()

	for _, source := range sources {
		if err := h.hashFile(source, hasher); err != nil {
			return "", err
		}
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, file := range deps.Files {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		if err := h.hashFile(path, hasher); err != nil {
			return "", err
		}
	}
	_, _ = hasher.Write([]byte{0})

	for _, dir := range deps.Directories {
		if err := h.hashDirectory(dir, hasher); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashDirectory(dir string, mainHasher io.Writer) error {
	_, _ = mainHasher.Write([]byte(dir))
	_, _ = mainHasher.Write([]byte{0})

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			_, _ = io.WriteString(mainHasher, missingMarker)
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to stat directory"), "path", dir)
	}
	if !info.IsDir() {
		return h.hashFile(dir, mainHasher)
	}

	for filePath := range h.walker.WalkFiles(dir) {
		if err := h.hashFile(filePath, mainHasher); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashFile(path string, mainHasher io.Writer) error {
	_, _ = mainHasher.Write([]byte(path))
	_, _ = mainHasher.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			_, _ = io.WriteString(mainHasher, missingMarker)
			return nil
		}
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}

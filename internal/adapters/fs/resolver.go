package fs

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PatternResolver = (*Resolver)(nil)

// Resolver implements the PatternResolver interface using doublestar globs.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve expands the patterns against baseDir.
//
// Literal patterns are resolved without touching the disk and recorded verbatim
// as file dependencies. Glob patterns append their matches in the glob engine's
// order and record every directory matched by the pattern's parent as a
// directory dependency. Neither the files nor the dependencies are de-duplicated.
func (r *Resolver) Resolve(patterns []string, baseDir string) (*domain.ResolvedFileSet, error) {
	set := &domain.ResolvedFileSet{Files: make([]string, 0, len(patterns))}

	for _, pattern := range patterns {
		if !domain.IsGlob(pattern) {
			set.Files = append(set.Files, absPath(baseDir, pattern))
			set.Dependencies.Files = append(set.Dependencies.Files, pattern)
			continue
		}

		root, rest := splitPattern(baseDir, pattern)
		if !doublestar.ValidatePattern(rest) {
			return set, zerr.With(zerr.Wrap(domain.ErrBadPattern, "failed to glob path"), "pattern", pattern)
		}

		matches, err := doublestar.Glob(os.DirFS(root), rest, doublestar.WithFilesOnly())
		if err != nil {
			return set, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
		}
		for _, match := range matches {
			set.Files = append(set.Files, filepath.Join(root, filepath.FromSlash(match)))
		}

		dirs, err := r.watchDirectories(baseDir, pattern)
		if err != nil {
			return set, err
		}
		set.Dependencies.Directories = append(set.Dependencies.Directories, dirs...)
	}

	return set, nil
}

// watchDirectories returns every existing directory matching the parent portion of pattern.
func (r *Resolver) watchDirectories(baseDir, pattern string) ([]string, error) {
	parent := path.Dir(filepath.ToSlash(pattern))

	var candidates []string
	if domain.IsGlob(parent) {
		root, rest := splitPattern(baseDir, parent)
		matches, err := doublestar.Glob(os.DirFS(root), rest)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob directory"), "pattern", parent)
		}
		for _, match := range matches {
			candidates = append(candidates, filepath.Join(root, filepath.FromSlash(match)))
		}
	} else {
		candidates = []string{absPath(baseDir, parent)}
	}

	dirs := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat directory"), "path", candidate)
		}
		if !info.IsDir() {
			continue
		}
		dirs = append(dirs, withTrailingSeparator(candidate))
	}
	return dirs, nil
}

// splitPattern separates the literal leading directories of pattern from its
// glob remainder. The literal part is resolved against baseDir and becomes the
// filesystem root the remainder is matched in, so neither baseDir nor the
// literal prefix is ever interpreted as a pattern.
func splitPattern(baseDir, pattern string) (string, string) {
	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
	return absPath(baseDir, base), rest
}

func absPath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, filepath.FromSlash(p))
}

func withTrailingSeparator(dir string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir
	}
	return dir + string(filepath.Separator)
}

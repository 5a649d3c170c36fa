package ports

import "go.trai.ch/fontpack/internal/core/domain"

// PatternResolver expands bundle file patterns into concrete input files.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PatternResolver interface {
	// Resolve expands the patterns against baseDir, in pattern order.
	// On a malformed pattern it returns the set resolved so far together with the error.
	Resolve(patterns []string, baseDir string) (*domain.ResolvedFileSet, error)
}

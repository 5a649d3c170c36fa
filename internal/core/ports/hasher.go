package ports

import "go.trai.ch/fontpack/internal/core/domain"

// Hasher defines the interface for computing hashes.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash computes the input hash of a bundle from its source
	// documents and the dependencies recorded by its last build.
	ComputeInputHash(sources []string, deps domain.Dependencies, baseDir string) (string, error)
}

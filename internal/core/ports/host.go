package ports

import "go.trai.ch/fontpack/internal/core/domain"

// DependencyTracker records the paths a transform must be rebuilt for.
type DependencyTracker interface {
	// AddDependency registers a file dependency.
	AddDependency(path string)
	// AddContextDependency registers a directory whose contents are watched.
	AddContextDependency(dir string)
}

// VirtualFS is the build's in-memory output filesystem.
type VirtualFS interface {
	// Invalidate evicts any cached read of path.
	Invalidate(path string)
	// Write stores content at path with the given timestamps.
	Write(path string, content []byte, times domain.Timestamps) error
}

// AssetEmitter emits auxiliary build outputs.
type AssetEmitter interface {
	// EmitFile emits content under the given output-relative name.
	EmitFile(name string, content []byte) error
}

// Host is everything a transform needs from the build system that runs it.
//
//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Host interface {
	DependencyTracker
	VirtualFS
	AssetEmitter

	// Timestamps returns the access, modify and change times of path.
	Timestamps(path string) (domain.Timestamps, error)
}

package ports

import (
	"context"

	"go.trai.ch/fontpack/internal/core/domain"
)

// CodepointEmitter writes glyph name to codepoint mappings as side outputs.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type CodepointEmitter interface {
	// Emit writes one file per target. Target fields left empty fall back to
	// the first target of the caller layer.
	Emit(
		ctx context.Context,
		host AssetEmitter,
		targets domain.EmitCodepoints,
		req *domain.GenerationRequest,
		caller *domain.BundleConfig,
	) error
}

// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/fontpack/internal/core/domain"
)

// FontCompiler turns glyph sources into binary fonts.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type FontCompiler interface {
	// Compile produces every format named by the request.
	//
	// It is the only blocking step of a transform. Errors are returned to the
	// transform's caller unchanged.
	Compile(ctx context.Context, req *domain.GenerationRequest) (*domain.CompilationResult, error)
}

package transform

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fontpack/internal/adapters/codepoints" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fontpack/internal/adapters/compiler"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fontpack/internal/adapters/fs"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fontpack/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fontpack/internal/core/ports"
)

// NodeID is the unique identifier for the transformer Graft node.
const NodeID graft.ID = "engine.transform"

func init() {
	graft.Register(graft.Node[*Transformer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			compiler.NodeID,
			codepoints.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Transformer, error) {
			resolver, err := graft.Dep[ports.PatternResolver](ctx)
			if err != nil {
				return nil, err
			}

			fontCompiler, err := graft.Dep[ports.FontCompiler](ctx)
			if err != nil {
				return nil, err
			}

			emitter, err := graft.Dep[ports.CodepointEmitter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(resolver, fontCompiler, emitter, log), nil
		},
	})
}

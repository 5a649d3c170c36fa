package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fontpack/internal/adapters/logger"
	"go.trai.ch/fontpack/internal/adapters/stylesheet"
	"go.trai.ch/fontpack/internal/core/ports"
)

// NodeID is the unique identifier for the font compiler Graft node.
const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[ports.FontCompiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, stylesheet.NodeID},
		Run: func(ctx context.Context) (ports.FontCompiler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[*stylesheet.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(log, renderer, CommandFromEnv()), nil
		},
	})
}

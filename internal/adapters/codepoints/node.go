package codepoints

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fontpack/internal/adapters/logger"
	"go.trai.ch/fontpack/internal/core/ports"
)

// NodeID is the unique identifier for the codepoint emitter Graft node.
const NodeID graft.ID = "adapter.codepoints"

func init() {
	graft.Register(graft.Node[ports.CodepointEmitter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CodepointEmitter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEmitter(log), nil
		},
	})
}

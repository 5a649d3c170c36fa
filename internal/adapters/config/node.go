package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fontpack/internal/adapters/logger"
	"go.trai.ch/fontpack/internal/core/ports"
)

// NodeID is the unique identifier for the config parser Graft node.
const NodeID graft.ID = "adapter.config_parser"

func init() {
	graft.Register(graft.Node[ports.ConfigParser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigParser, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewParser(log), nil
		},
	})
}

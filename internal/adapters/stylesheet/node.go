package stylesheet

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the stylesheet renderer Graft node.
const NodeID graft.ID = "adapter.stylesheet"

func init() {
	graft.Register(graft.Node[*Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Renderer, error) {
			return New(), nil
		},
	})
}

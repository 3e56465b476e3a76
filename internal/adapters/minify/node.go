package minify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylecache/internal/core/ports"
)

// NodeID is the unique identifier for the CSS post-processor Graft node.
const NodeID graft.ID = "adapter.minify"

func init() {
	graft.Register(graft.Node[ports.PostProcessor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PostProcessor, error) {
			return New(), nil
		},
	})
}

package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylecache/internal/core/ports"
)

// NodeID is the unique identifier for the source finder Graft node.
const NodeID graft.ID = "adapter.fs.walker"

func init() {
	graft.Register(graft.Node[ports.SourceFinder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceFinder, error) {
			return NewWalker(), nil
		},
	})
}

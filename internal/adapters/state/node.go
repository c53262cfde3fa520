package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/remake/internal/core/ports"
)

const NodeID graft.ID = "adapter.state_store"

func init() {
	graft.Register(graft.Node[ports.StateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.StateStore, error) {
			store, err := NewStore(DefaultPath)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}

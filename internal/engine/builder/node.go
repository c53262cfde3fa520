package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/remake/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/remake/internal/adapters/state"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/remake/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/remake/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			state.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			store, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, tel, log), nil
		},
	})
}

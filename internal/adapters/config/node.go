package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/remake/internal/adapters/fs"     //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/remake/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/remake/internal/adapters/shell"  //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/remake/internal/adapters/state"  //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/remake/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.HasherNodeID,
			state.NodeID,
			fs.ResolverNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.InputResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewLoader(executor, hasher, store, resolver, log), nil
		},
	})
}

package wirer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swap/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/swap/internal/adapters/pool"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/swap/internal/core/ports"
)

// NodeID is the unique identifier for the wirer Graft node.
const NodeID graft.ID = "engine.wirer"

func init() {
	graft.Register(graft.Node[*Wirer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pool.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Wirer, error) {
			catalog, err := graft.Dep[ports.BackendCatalog](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(catalog, log), nil
		},
	})
}

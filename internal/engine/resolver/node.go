package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swap/internal/adapters/pool"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/swap/internal/adapters/registry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/swap/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/swap/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			pool.NodeID,
			telemetry.MetricsNodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			reg, err := graft.Dep[*registry.Registry](ctx)
			if err != nil {
				return nil, err
			}

			catalog, err := graft.Dep[ports.BackendCatalog](ctx)
			if err != nil {
				return nil, err
			}

			metrics, err := graft.Dep[*telemetry.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			return New(reg, catalog, metrics), nil
		},
	})
}

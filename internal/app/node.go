package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swap/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/swap/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/swap/internal/adapters/pool"      //nolint:depguard // Wired in app layer
	"go.trai.ch/swap/internal/adapters/registry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/swap/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/swap/internal/core/ports"
	"go.trai.ch/swap/internal/engine/resolver"
	"go.trai.ch/swap/internal/engine/wirer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			registry.NodeID,
			pool.NodeID,
			telemetry.MetricsNodeID,
			logger.NodeID,
			wirer.NodeID,
			resolver.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

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

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[*wirer.Wirer](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, reg, w, res, catalog, metrics, log), nil
}

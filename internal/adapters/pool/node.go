package pool

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/swap/internal/core/ports"
)

// NodeID is the unique identifier for the backend catalog Graft node.
const NodeID graft.ID = "adapter.backend_catalog"

func init() {
	graft.Register(graft.Node[ports.BackendCatalog]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BackendCatalog, error) {
			return DefaultCatalog(domain.DefaultPoolDir()), nil
		},
	})
}

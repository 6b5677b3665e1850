package ports

import "go.trai.ch/swap/internal/core/domain"

// Metrics records wiring outcomes and cache pool traffic.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Metrics interface {
	// ObserveWiring records the outcome of one wiring run. plan is nil when err is set.
	ObserveWiring(plan *domain.Plan, err error)

	// InstrumentPool wraps pool so its operations are counted under backend.
	InstrumentPool(backend string, pool CachePool) CachePool

	// WriteTextfile writes every collected metric to path in the Prometheus text format.
	WriteTextfile(path string) error
}

// Package telemetry records wiring outcomes and cache pool traffic as Prometheus metrics.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/swap/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	resultOK         = "ok"
	resultInvalid    = "invalid"
	resultWiringFail = "wiring_error"
	resultError      = "error"
	cacheNone        = "none"
)

// Metrics implements ports.Metrics on a private Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	WiringsTotal          *prometheus.CounterVec
	ProvidersWired        prometheus.Gauge
	PoolOperationsTotal   *prometheus.CounterVec
	PoolOperationDuration *prometheus.HistogramVec
}

// NewMetrics registers the swap collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		WiringsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swap_wirings_total",
				Help: "Total number of wiring attempts by result and cache backend",
			},
			[]string{"result", "cache"},
		),

		ProvidersWired: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "swap_providers_wired",
				Help: "Number of providers registered on the builder by the last successful wiring",
			},
		),

		PoolOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swap_cache_pool_operations_total",
				Help: "Total number of cache pool operations",
			},
			[]string{"backend", "op", "result"},
		),

		PoolOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "swap_cache_pool_operation_duration_seconds",
				Help:    "Cache pool operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"backend", "op"},
		),
	}
}

// Gatherer exposes the registry for exporters and tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes every metric to path in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", path)
	}
	return nil
}

// ObserveWiring counts one wiring attempt. plan may be nil when planning failed.
func (m *Metrics) ObserveWiring(plan *domain.Plan, err error) {
	cache := cacheNone
	if plan != nil && plan.Cache != nil {
		cache = plan.Cache.Kind.String()
	}

	m.WiringsTotal.WithLabelValues(wiringResult(err), cache).Inc()
	if err == nil && plan != nil {
		m.ProvidersWired.Set(float64(len(plan.CallsFor(domain.MethodAdd))))
	}
}

// InstrumentPool wraps pool so its operations are counted under backend.
func (m *Metrics) InstrumentPool(backend string, pool ports.CachePool) ports.CachePool {
	return &instrumentedPool{backend: backend, next: pool, metrics: m}
}

func wiringResult(err error) string {
	switch {
	case err == nil:
		return resultOK
	case domain.IsValidationError(err):
		return resultInvalid
	case domain.IsWiringError(err):
		return resultWiringFail
	default:
		return resultError
	}
}

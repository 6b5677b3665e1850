package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/swap/internal/core/ports"
)

type instrumentedPool struct {
	backend string
	next    ports.CachePool
	metrics *Metrics
}

func (p *instrumentedPool) observe(op string) func(result string) {
	timer := prometheus.NewTimer(p.metrics.PoolOperationDuration.WithLabelValues(p.backend, op))
	return func(result string) {
		timer.ObserveDuration()
		p.metrics.PoolOperationsTotal.WithLabelValues(p.backend, op, result).Inc()
	}
}

func (p *instrumentedPool) Get(ctx context.Context, key string) ([]byte, bool, error) {
	done := p.observe("get")
	value, ok, err := p.next.Get(ctx, key)
	switch {
	case err != nil:
		done(resultError)
	case ok:
		done("hit")
	default:
		done("miss")
	}
	return value, ok, err
}

func (p *instrumentedPool) Set(ctx context.Context, key string, value []byte) error {
	done := p.observe("set")
	err := p.next.Set(ctx, key, value)
	done(result(err))
	return err
}

func (p *instrumentedPool) Delete(ctx context.Context, key string) error {
	done := p.observe("delete")
	err := p.next.Delete(ctx, key)
	done(result(err))
	return err
}

func (p *instrumentedPool) Clear(ctx context.Context) error {
	done := p.observe("clear")
	err := p.next.Clear(ctx)
	done(result(err))
	return err
}

func result(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}

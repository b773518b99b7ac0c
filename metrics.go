package nnueaccum

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func directionAttr(dir Direction) attribute.KeyValue {
	if dir == Forward {
		return attribute.String("direction", "forward")
	}
	return attribute.String("direction", "backward")
}

// Metrics counts update steps: each incremental step (forward or backward)
// and each cache-assisted refresh (from Reset as well as from
// evaluate_side), plus the per-step feature-delta size on the incremental
// path. A nil *Metrics
// is valid everywhere it's accepted and every method becomes a no-op, so
// wiring diagnostics in never changes evaluation behavior.
type Metrics struct {
	incremental metric.Int64Counter
	refresh     metric.Int64Counter
	deltaSize   metric.Int64Histogram
}

// NewMetrics registers this package's instruments against meter. Callers
// typically obtain meter from an otel MeterProvider configured elsewhere;
// passing the global no-op provider's meter is fine for a build with
// diagnostics compiled in but not exported anywhere.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	incremental, err := meter.Int64Counter(
		"nnueaccum.evaluate.incremental_path",
		metric.WithDescription("forward or backward update_incremental steps"),
	)
	if err != nil {
		return nil, err
	}
	refresh, err := meter.Int64Counter(
		"nnueaccum.evaluate.refresh_path",
		metric.WithDescription("cache-assisted refreshes, from reset or evaluate_side"),
	)
	if err != nil {
		return nil, err
	}
	deltaSize, err := meter.Int64Histogram(
		"nnueaccum.update.delta_size",
		metric.WithDescription("added+removed feature count for one update_incremental step"),
	)
	if err != nil {
		return nil, err
	}
	return &Metrics{incremental: incremental, refresh: refresh, deltaSize: deltaSize}, nil
}

func (m *Metrics) recordIncremental(ctx context.Context, dir Direction, added, removed int) {
	if m == nil {
		return
	}
	attr := metric.WithAttributes(directionAttr(dir))
	m.incremental.Add(ctx, 1, attr)
	m.deltaSize.Record(ctx, int64(added+removed), attr)
}

func (m *Metrics) recordRefresh(ctx context.Context) {
	if m == nil {
		return
	}
	m.refresh.Add(ctx, 1)
}

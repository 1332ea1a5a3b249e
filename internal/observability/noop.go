package observability

import (
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// NewNoopTracer creates a tracer that does nothing.
func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer:      tracenoop.NewTracerProvider().Tracer(""),
		serviceName: "",
	}
}

// NewNoopMetrics creates metrics that do nothing.
func NewNoopMetrics() *Metrics {
	meter := noop.NewMeterProvider().Meter("")
	m := &Metrics{}

	// Note: noop meter never returns errors, but we must check them to satisfy the linter.
	m.parseDuration, _ = meter.Float64Histogram("symtree.parse.duration")       //nolint:errcheck
	m.parseCount, _ = meter.Int64Counter("symtree.parse.count")                 //nolint:errcheck
	m.evaluateDuration, _ = meter.Float64Histogram("symtree.evaluate.duration") //nolint:errcheck
	m.evaluateCount, _ = meter.Int64Counter("symtree.evaluate.count")           //nolint:errcheck
	m.transformCount, _ = meter.Int64Counter("symtree.transform.count")         //nolint:errcheck
	m.errorCount, _ = meter.Int64Counter("symtree.error.count")                 //nolint:errcheck

	return m
}

/**
 * Copyright 2026 The Symtree Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the engine-specific metric instruments.
type Metrics struct {
	parseDuration    metric.Float64Histogram
	parseCount       metric.Int64Counter
	evaluateDuration metric.Float64Histogram
	evaluateCount    metric.Int64Counter
	transformCount   metric.Int64Counter
	errorCount       metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) *Metrics {
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	// Note: errors from meter instrument creation are unlikely in practice
	// and would only occur with invalid parameters. We use explicit checks
	// to satisfy the linter while continuing with partial metrics on error.
	var err error

	m.parseDuration, err = meter.Float64Histogram(
		"symtree.parse.duration",
		metric.WithDescription("Duration of expression parses in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		m.parseDuration, _ = meter.Float64Histogram("symtree.parse.duration")
	}

	m.parseCount, err = meter.Int64Counter(
		"symtree.parse.count",
		metric.WithDescription("Total number of expression parses"),
		metric.WithUnit("{expression}"),
	)
	if err != nil {
		m.parseCount, _ = meter.Int64Counter("symtree.parse.count")
	}

	m.evaluateDuration, err = meter.Float64Histogram(
		"symtree.evaluate.duration",
		metric.WithDescription("Duration of expression evaluations in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		m.evaluateDuration, _ = meter.Float64Histogram("symtree.evaluate.duration")
	}

	m.evaluateCount, err = meter.Int64Counter(
		"symtree.evaluate.count",
		metric.WithDescription("Total number of expression evaluations"),
		metric.WithUnit("{expression}"),
	)
	if err != nil {
		m.evaluateCount, _ = meter.Int64Counter("symtree.evaluate.count")
	}

	m.transformCount, err = meter.Int64Counter(
		"symtree.transform.count",
		metric.WithDescription("Total number of expression transformations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		m.transformCount, _ = meter.Int64Counter("symtree.transform.count")
	}

	m.errorCount, err = meter.Int64Counter(
		"symtree.error.count",
		metric.WithDescription("Total number of engine errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		m.errorCount, _ = meter.Int64Counter("symtree.error.count")
	}

	return m
}

// RecordParse records metrics for a completed parse.
func (m *Metrics) RecordParse(ctx context.Context, engine string, duration time.Duration) {
	attrs := metric.WithAttributes(
		EngineAttr(engine),
		OperationAttr(OpParse),
	)
	m.parseDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	m.parseCount.Add(ctx, 1, attrs)
}

// RecordEvaluate records metrics for a completed evaluation.
func (m *Metrics) RecordEvaluate(ctx context.Context, engine string, duration time.Duration) {
	attrs := metric.WithAttributes(
		EngineAttr(engine),
		OperationAttr(OpEvaluate),
	)
	m.evaluateDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	m.evaluateCount.Add(ctx, 1, attrs)
}

// RecordTransform records a completed tree transformation.
func (m *Metrics) RecordTransform(ctx context.Context, engine, operation string) {
	attrs := metric.WithAttributes(
		EngineAttr(engine),
		OperationAttr(operation),
	)
	m.transformCount.Add(ctx, 1, attrs)
}

// RecordError records an error occurrence.
func (m *Metrics) RecordError(ctx context.Context, engine, operation, errorKind string) {
	attrs := metric.WithAttributes(
		EngineAttr(engine),
		OperationAttr(operation),
		ErrorKindAttr(errorKind),
	)
	m.errorCount.Add(ctx, 1, attrs)
}

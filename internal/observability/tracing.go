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

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an OpenTelemetry tracer with engine-specific span creation methods.
type Tracer struct {
	tracer      trace.Tracer
	serviceName string
}

// NewTracer creates a new Tracer using the given TracerProvider.
func NewTracer(tp trace.TracerProvider, serviceName string) *Tracer {
	return &Tracer{
		tracer:      tp.Tracer(TracerName),
		serviceName: serviceName,
	}
}

// StartSpan starts a new span with the given name and attributes.
func (t *Tracer) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}

// StartParse starts a span for parsing an expression.
func (t *Tracer) StartParse(ctx context.Context, engine, text string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "symtree.parse", trace.WithAttributes(
		EngineAttr(engine),
		OperationAttr(OpParse),
		ExpressionTextAttr(text),
	))
}

// StartEvaluate starts a span for evaluating an expression.
func (t *Tracer) StartEvaluate(ctx context.Context, engine, text string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "symtree.evaluate", trace.WithAttributes(
		EngineAttr(engine),
		OperationAttr(OpEvaluate),
		ExpressionTextAttr(text),
	))
}

// StartDifferentiate starts a span for differentiating an expression.
func (t *Tracer) StartDifferentiate(ctx context.Context, engine, text, variable string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "symtree.differentiate", trace.WithAttributes(
		EngineAttr(engine),
		OperationAttr(OpDifferentiate),
		ExpressionTextAttr(text),
		VariableAttr(variable),
	))
}

// StartSimplify starts a span for simplifying an expression.
func (t *Tracer) StartSimplify(ctx context.Context, engine, text string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "symtree.simplify", trace.WithAttributes(
		EngineAttr(engine),
		OperationAttr(OpSimplify),
		ExpressionTextAttr(text),
	))
}

// RecordError records an error on the span.
func (t *Tracer) RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// LoggerWithTrace returns a log entry enriched with trace context.
func LoggerWithTrace(ctx context.Context, entry *log.Entry) *log.Entry {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return entry
	}
	return entry.WithFields(log.Fields{
		LogFieldTraceID: span.SpanContext().TraceID().String(),
		LogFieldSpanID:  span.SpanContext().SpanID().String(),
	})
}

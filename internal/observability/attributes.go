// Package observability provides OpenTelemetry-based instrumentation for the
// symbolic expression engine.
//
// All observability features are opt-in. When not configured, no-op
// implementations are used with zero performance overhead.
package observability

import "go.opentelemetry.io/otel/attribute"

// Instrumentation identity constants
const (
	// TracerName is the instrumentation name for tracing.
	TracerName = "github.com/dr0pdb/symtree"
	// MeterName is the instrumentation name for metrics.
	MeterName = "github.com/dr0pdb/symtree"
)

// Semantic attribute keys following OpenTelemetry conventions.
const (
	// Engine attributes
	AttrEngine    = "symtree.engine"
	AttrOperation = "symtree.operation"

	// Expression attributes
	AttrExpressionText = "symtree.expression.text"
	AttrVariable       = "symtree.expression.variable"

	// Error attributes
	AttrErrorKind = "symtree.error.kind"
)

// Operation types for the symtree.operation attribute.
const (
	OpParse         = "parse"
	OpEvaluate      = "evaluate"
	OpDifferentiate = "differentiate"
	OpSimplify      = "simplify"
)

// Log field keys for structured logging with trace context.
const (
	LogFieldTraceID = "trace_id"
	LogFieldSpanID  = "span_id"
)

// EngineAttr creates an attribute for the engine name.
func EngineAttr(name string) attribute.KeyValue {
	return attribute.String(AttrEngine, name)
}

// OperationAttr creates an attribute for the operation type.
func OperationAttr(op string) attribute.KeyValue {
	return attribute.String(AttrOperation, op)
}

// ExpressionTextAttr creates an attribute for the expression text.
func ExpressionTextAttr(text string) attribute.KeyValue {
	return attribute.String(AttrExpressionText, text)
}

// VariableAttr creates an attribute for the variable of differentiation.
func VariableAttr(name string) attribute.KeyValue {
	return attribute.String(AttrVariable, name)
}

// ErrorKindAttr creates an attribute for the error kind.
func ErrorKindAttr(kind string) attribute.KeyValue {
	return attribute.String(AttrErrorKind, kind)
}

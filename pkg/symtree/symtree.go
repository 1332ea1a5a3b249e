package symtree

import (
	"context"
	"time"

	"github.com/alecthomas/repr"
	"github.com/dr0pdb/symtree/internal/observability"
	"github.com/dr0pdb/symtree/pkg/common"
	"github.com/dr0pdb/symtree/pkg/frontend"
	"github.com/dr0pdb/symtree/pkg/symbolic"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Engine is the entry point for working with symbolic expressions.
// It parses expression strings and runs evaluation and the tree
// transformations, with optional tracing and metrics around each operation.
type Engine struct {
	name string
	conf *common.Config

	obs     *observability.Config
	obsOpts []observability.Option
}

// Option is a functional option for configuring the engine.
type Option func(*Engine)

// WithConfig sets the engine config.
func WithConfig(conf *common.Config) Option {
	return func(e *Engine) {
		e.conf = conf
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) {
		e.obsOpts = append(e.obsOpts, observability.WithTracerProvider(tp))
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(e *Engine) {
		e.obsOpts = append(e.obsOpts, observability.WithMeterProvider(mp))
	}
}

// NewEngine creates a new expression engine.
func NewEngine(name string, opts ...Option) *Engine {
	e := &Engine{
		name: name,
		conf: common.NewDefaultConfig(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.obs = observability.NewConfig(append([]observability.Option{observability.WithServiceName(name)}, e.obsOpts...)...)
	_ = e.obs.Initialize() // never fails

	return e
}

// MakeExpression parses the given text into an expression tree.
func (e *Engine) MakeExpression(ctx context.Context, text string) (symbolic.Expression, error) {
	start := time.Now()
	ctx, span := e.obs.Tracer().StartParse(ctx, e.name, text)
	defer span.End()

	observability.LoggerWithTrace(ctx, log.WithFields(log.Fields{"name": e.name, "text": text})).Info("symtree::symtree::MakeExpression; starting parse of expression;")

	p := frontend.NewParserWithConfig(e.name, text, e.conf)
	ex, err := p.Parse()
	if err != nil {
		e.obs.Tracer().RecordError(span, err)
		e.obs.Metrics().RecordError(ctx, e.name, observability.OpParse, errorKind(err))
		log.WithFields(log.Fields{"name": e.name, "text": text, "err": err}).Error("symtree::symtree::MakeExpression; error in parsing the expression;")
		return nil, err
	}

	e.obs.Metrics().RecordParse(ctx, e.name, time.Since(start))
	log.WithFields(log.Fields{"name": e.name, "expression": repr.String(ex)}).Debug("symtree::symtree::MakeExpression; done;")
	return ex, nil
}

// Evaluate computes the numeric value of the expression under the given bindings.
func (e *Engine) Evaluate(ctx context.Context, ex symbolic.Expression, bindings symbolic.Binding) (float64, error) {
	start := time.Now()
	ctx, span := e.obs.Tracer().StartEvaluate(ctx, e.name, ex.String())
	defer span.End()

	observability.LoggerWithTrace(ctx, log.WithFields(log.Fields{"name": e.name, "expression": ex.String()})).Info("symtree::symtree::Evaluate; starting evaluation of expression;")

	val, err := ex.Evaluate(bindings)
	if err != nil {
		e.obs.Tracer().RecordError(span, err)
		e.obs.Metrics().RecordError(ctx, e.name, observability.OpEvaluate, errorKind(err))
		log.WithFields(log.Fields{"name": e.name, "expression": ex.String(), "err": err}).Error("symtree::symtree::Evaluate; error in evaluating the expression;")
		return 0, err
	}

	e.obs.Metrics().RecordEvaluate(ctx, e.name, time.Since(start))
	return val, nil
}

// Differentiate computes the symbolic derivative of the expression
// with respect to the given variable.
func (e *Engine) Differentiate(ctx context.Context, ex symbolic.Expression, variable string) symbolic.Expression {
	ctx, span := e.obs.Tracer().StartDifferentiate(ctx, e.name, ex.String(), variable)
	defer span.End()

	observability.LoggerWithTrace(ctx, log.WithFields(log.Fields{"name": e.name, "expression": ex.String(), "variable": variable})).Info("symtree::symtree::Differentiate; starting differentiation of expression;")

	d := ex.Differentiate(variable)
	e.obs.Metrics().RecordTransform(ctx, e.name, observability.OpDifferentiate)
	log.WithFields(log.Fields{"name": e.name, "derivative": repr.String(d)}).Debug("symtree::symtree::Differentiate; done;")
	return d
}

// Simplify returns a simplified form of the expression.
func (e *Engine) Simplify(ctx context.Context, ex symbolic.Expression) symbolic.Expression {
	ctx, span := e.obs.Tracer().StartSimplify(ctx, e.name, ex.String())
	defer span.End()

	observability.LoggerWithTrace(ctx, log.WithFields(log.Fields{"name": e.name, "expression": ex.String()})).Info("symtree::symtree::Simplify; starting simplification of expression;")

	s := ex.Simplify()
	e.obs.Metrics().RecordTransform(ctx, e.name, observability.OpSimplify)
	log.WithFields(log.Fields{"name": e.name, "simplified": repr.String(s)}).Debug("symtree::symtree::Simplify; done;")
	return s
}

// errorKind classifies an engine error for metric attributes.
func errorKind(err error) string {
	switch err.(type) {
	case common.LexError:
		return "lex"
	case common.ParseError:
		return "parse"
	case common.EvaluationError:
		return "evaluation"
	case common.DivisionByZeroError:
		return "division_by_zero"
	default:
		return "unknown"
	}
}

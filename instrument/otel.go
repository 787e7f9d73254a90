package instrument

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/skematic/jsonschema"
)

const scopeName = "github.com/skematic/jsonschema/instrument"

// Validator decorates a schema node with OpenTelemetry spans and metrics.
// The wrapped node's validation outcome is returned unchanged.
type Validator struct {
	schema jsonschema.Schema
	tracer trace.Tracer
	logger *slog.Logger

	// validations counts Validate calls; violations counts leaf violations;
	// duration records call latency in milliseconds.
	validations metric.Int64Counter
	violations  metric.Int64Counter
	duration    metric.Float64Histogram
}

type options struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	logger         *slog.Logger
}

// Option configures a Validator.
type Option func(*options)

// WithTracerProvider enables span creation through the given provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider enables metric recording through the given provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// WithLogger sets the logger used for dropped telemetry errors. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Wrap builds an instrumented validator around s. Metric instruments are
// created once, here; instrument creation errors surface from Wrap and never
// from Validate.
func Wrap(s jsonschema.Schema, opts ...Option) (*Validator, error) {
	if s == nil {
		return nil, jsonschema.NewNullArgumentError("instrument.Wrap",
			errors.New("schema cannot be nil"))
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	v := &Validator{
		schema: s,
		logger: o.logger,
	}
	if v.logger == nil {
		v.logger = slog.Default()
	}

	if o.tracerProvider != nil {
		v.tracer = o.tracerProvider.Tracer(scopeName)
	}

	if o.meterProvider != nil {
		meter := o.meterProvider.Meter(scopeName)
		var err error

		v.validations, err = meter.Int64Counter(
			"schema.validations",
			metric.WithDescription("Number of validation calls performed"),
			metric.WithUnit("1"),
		)
		if err != nil {
			return nil, fmt.Errorf("create validations counter: %w", err)
		}

		v.violations, err = meter.Int64Counter(
			"schema.violations",
			metric.WithDescription("Number of leaf constraint violations reported"),
			metric.WithUnit("1"),
		)
		if err != nil {
			return nil, fmt.Errorf("create violations counter: %w", err)
		}

		v.duration, err = meter.Float64Histogram(
			"schema.validation.duration",
			metric.WithDescription("Validation call duration in milliseconds"),
			metric.WithUnit("ms"),
		)
		if err != nil {
			return nil, fmt.Errorf("create duration histogram: %w", err)
		}
	}

	return v, nil
}

// Schema returns the wrapped schema node.
func (v *Validator) Schema() jsonschema.Schema {
	return v.schema
}

// Validate runs the wrapped node's validation and records telemetry around
// it. The returned error is exactly what the node produced: nil, or a
// *jsonschema.ValidationError carrying the complete violation list.
func (v *Validator) Validate(ctx context.Context, value any) error {
	start := time.Now()

	var span trace.Span
	if v.tracer != nil {
		ctx, span = v.tracer.Start(ctx, "jsonschema.validate")
		defer span.End()
	}

	err := v.schema.Validate(value)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	attrs := metric.WithAttributes(v.schemaAttributes()...)
	if v.validations != nil {
		v.validations.Add(ctx, 1, attrs)
	}
	if v.duration != nil {
		v.duration.Record(ctx, elapsed, attrs)
	}

	if err == nil {
		if span != nil {
			span.SetStatus(codes.Ok, "value conforms")
		}
		return nil
	}

	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		count := verr.ViolationCount()
		if v.violations != nil {
			v.violations.Add(ctx, int64(count), attrs)
		}
		if span != nil {
			span.SetAttributes(attribute.Int("schema.violation_count", count))
			span.SetStatus(codes.Error, fmt.Sprintf("%d violations", count))
		}
	} else {
		// Not a validation outcome; record it but pass it through untouched.
		v.logger.Warn("schema validation returned a non-validation error",
			"error", err)
		if span != nil {
			span.SetStatus(codes.Error, err.Error())
		}
	}

	return err
}

func (v *Validator) schemaAttributes() []attribute.KeyValue {
	meta := v.schema.Meta()
	attrs := make([]attribute.KeyValue, 0, 2)
	if meta.ID != "" {
		attrs = append(attrs, attribute.String("schema.id", meta.ID))
	}
	if meta.Title != "" {
		attrs = append(attrs, attribute.String("schema.title", meta.Title))
	}
	return attrs
}

// Package instrument provides OpenTelemetry instrumentation for schema
// validation.
//
// Wrap decorates any schema node with a validator that records one span and a
// set of metrics per Validate call, without changing the validation outcome.
// Providers are optional: with no tracer or meter configured the wrapper is a
// plain pass-through.
//
//	v, err := instrument.Wrap(schema,
//		instrument.WithTracerProvider(tp),
//		instrument.WithMeterProvider(mp))
//	if err != nil {
//		return err
//	}
//	err = v.Validate(ctx, value)
package instrument

package tools

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedDispatcher is an instrumented version of the Dispatcher that
// records a span and call metrics per dispatch.
type InstrumentedDispatcher struct {
	inner  *Dispatcher
	tracer trace.Tracer

	callsCounter  metric.Int64Counter
	errorsCounter metric.Int64Counter
	durationHist  metric.Float64Histogram
}

// NewInstrumentedDispatcher wraps a dispatcher with tracing and metrics.
func NewInstrumentedDispatcher(inner *Dispatcher, tracer trace.Tracer, meter metric.Meter) *InstrumentedDispatcher {
	callsCounter, _ := meter.Int64Counter("tool_calls_total",
		metric.WithDescription("Total number of tool calls dispatched"))
	errorsCounter, _ := meter.Int64Counter("tool_calls_failed_total",
		metric.WithDescription("Total number of tool calls that returned an error result"))
	durationHist, _ := meter.Float64Histogram("tool_call_duration_seconds",
		metric.WithDescription("Duration of individual tool calls in seconds"))

	return &InstrumentedDispatcher{
		inner:         inner,
		tracer:        tracer,
		callsCounter:  callsCounter,
		errorsCounter: errorsCounter,
		durationHist:  durationHist,
	}
}

// Dispatch executes one call with full instrumentation. The envelope contract
// is identical to Dispatcher.Dispatch.
func (d *InstrumentedDispatcher) Dispatch(ctx context.Context, call Call) Result {
	ctx, span := d.tracer.Start(ctx, "Dispatcher.Dispatch", trace.WithAttributes(
		attribute.String("tool.name", call.Name),
	))
	defer span.End()

	toolAttr := metric.WithAttributes(attribute.String("tool", call.Name))
	d.callsCounter.Add(ctx, 1, toolAttr)

	start := time.Now()
	res := d.inner.Dispatch(ctx, call)
	d.durationHist.Record(ctx, time.Since(start).Seconds(), toolAttr)

	if res.Status == StatusError {
		d.errorsCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("tool", call.Name),
			attribute.String("kind", string(res.Error.Kind)),
		))
		span.SetStatus(codes.Error, res.Error.Message)
		span.SetAttributes(attribute.String("error.kind", string(res.Error.Kind)))
	}
	return res
}

// Package telemetry exports splitter drag sessions as OpenTelemetry spans.
package telemetry

import (
	"context"
	"os"

	"panekit/internal/layout"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DragSpanName is the name of the span recorded per drag session.
const DragSpanName = "splitter.drag"

// Exporter records drag sessions. A nil *Exporter is valid and records
// nothing.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured.
func NewExporter(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "panekit"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewExporterWithProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewExporterWithProvider records into an existing provider.
func NewExporterWithProvider(tp *sdktrace.TracerProvider) *Exporter {
	return &Exporter{
		provider: tp,
		tracer:   tp.Tracer("panekit/layout"),
	}
}

// RecordDrag records one span covering a finished drag session.
func (e *Exporter) RecordDrag(ctx context.Context, st layout.DragStats) {
	if e == nil {
		return
	}
	_, span := e.tracer.Start(ctx, DragSpanName,
		oteltrace.WithTimestamp(st.Started),
		oteltrace.WithAttributes(
			attribute.String("panekit.orientation", st.Orientation.String()),
			attribute.Int("panekit.prev.start", st.PrevStart),
			attribute.Int("panekit.next.start", st.NextStart),
			attribute.Int("panekit.prev.end", st.PrevEnd),
			attribute.Int("panekit.next.end", st.NextEnd),
			attribute.Int("panekit.moves.accepted", st.Accepted),
			attribute.Int("panekit.moves.rejected", st.Rejected),
		),
	)
	span.End(oteltrace.WithTimestamp(st.Ended))
}

// Shutdown flushes pending spans.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}

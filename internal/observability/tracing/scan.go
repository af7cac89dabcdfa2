package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const scanTracerName = "github.com/despensa-app/expiry-notifier/internal/service/scan"

func ScanTracer() trace.Tracer {
	return otel.Tracer(scanTracerName)
}

func StartScanSpan(ctx context.Context, scope, runID string, reference time.Time) (context.Context, trace.Span) {
	return ScanTracer().Start(ctx, "scan.pass",
		trace.WithAttributes(
			attribute.String("scan.scope", scope),
			attribute.String("scan.run_id", runID),
			attribute.String("scan.reference", reference.Format(time.RFC3339)),
		),
	)
}

func StartDeliverySpan(ctx context.Context, itemID, tier string, dayOffset int) (context.Context, trace.Span) {
	return ScanTracer().Start(ctx, "scan.delivery",
		trace.WithAttributes(
			attribute.String("item_id", itemID),
			attribute.String("tier", tier),
			attribute.Int("day_offset", dayOffset),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordScanResult(span trace.Span, attempted, sent, failed, skipped, invalidDates int, err error) {
	span.SetAttributes(
		attribute.Int("scan.attempted", attempted),
		attribute.Int("scan.sent", sent),
		attribute.Int("scan.failed", failed),
		attribute.Int("scan.skipped", skipped),
		attribute.Int("scan.invalid_dates", invalidDates),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordDeliveryResult(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

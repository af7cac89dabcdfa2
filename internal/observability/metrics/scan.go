package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const scanMeterName = "expiry.scan"

// ScanMetrics instruments scan passes and delivery outcomes. All record
// methods are nil-receiver safe so callers can run without metrics wired.
type ScanMetrics struct {
	scansTotal         metric.Int64Counter
	scanDuration       metric.Float64Histogram
	notificationsTotal metric.Int64Counter
	tierDistribution   metric.Int64Counter
}

func NewScanMetrics() (*ScanMetrics, error) {
	meter := otel.Meter(scanMeterName)

	scansTotal, err := meter.Int64Counter(
		"expiry_scans_total",
		metric.WithDescription("Total number of scan passes"),
		metric.WithUnit("{scan}"),
	)
	if err != nil {
		return nil, err
	}

	scanDuration, err := meter.Float64Histogram(
		"expiry_scan_duration_seconds",
		metric.WithDescription("Wall time of one scan pass"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120,
		),
	)
	if err != nil {
		return nil, err
	}

	notificationsTotal, err := meter.Int64Counter(
		"expiry_notifications_total",
		metric.WithDescription("Delivery attempts by result"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	tierDistribution, err := meter.Int64Counter(
		"expiry_tier_distribution_total",
		metric.WithDescription("Distribution of due reminders across urgency tiers"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	return &ScanMetrics{
		scansTotal:         scansTotal,
		scanDuration:       scanDuration,
		notificationsTotal: notificationsTotal,
		tierDistribution:   tierDistribution,
	}, nil
}

func (m *ScanMetrics) RecordScan(ctx context.Context, scope string, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("scope", scope))
	m.scansTotal.Add(ctx, 1, attrs)
	m.scanDuration.Record(ctx, duration.Seconds(), attrs)
}

func (m *ScanMetrics) RecordNotification(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.notificationsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func (m *ScanMetrics) RecordTier(ctx context.Context, tier string) {
	if m == nil {
		return
	}
	m.tierDistribution.Add(ctx, 1, metric.WithAttributes(attribute.String("tier", tier)))
}

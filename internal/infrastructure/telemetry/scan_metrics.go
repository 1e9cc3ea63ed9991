package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScanMetrics tracks scan ingestion, enrichment health, and short-link
// redirect activity.
type ScanMetrics struct {
	scansIngestedTotal      metric.Int64Counter
	enrichmentFailuresTotal metric.Int64Counter
	redirectsResolvedTotal  metric.Int64Counter
	conversionsTotal        metric.Int64Counter
}

// NewScanMetrics creates the scan pipeline instrument set on the given meter
func NewScanMetrics(meter metric.Meter) (*ScanMetrics, error) {
	sm := &ScanMetrics{}

	var err error
	sm.scansIngestedTotal, err = meter.Int64Counter(
		"scanlink_scans_ingested_total",
		metric.WithDescription("Total number of scans ingested"),
		metric.WithUnit("{scans}"),
	)
	if err != nil {
		return nil, err
	}

	sm.enrichmentFailuresTotal, err = meter.Int64Counter(
		"scanlink_enrichment_failures_total",
		metric.WithDescription("Total number of failed enrichment lookups"),
		metric.WithUnit("{lookups}"),
	)
	if err != nil {
		return nil, err
	}

	sm.redirectsResolvedTotal, err = meter.Int64Counter(
		"scanlink_redirects_resolved_total",
		metric.WithDescription("Total number of short-link redirects resolved"),
		metric.WithUnit("{redirects}"),
	)
	if err != nil {
		return nil, err
	}

	sm.conversionsTotal, err = meter.Int64Counter(
		"scanlink_conversions_total",
		metric.WithDescription("Total number of scans linked to an order"),
		metric.WithUnit("{conversions}"),
	)
	if err != nil {
		return nil, err
	}

	return sm, nil
}

// RecordScanIngested records one ingested scan for a campaign
func (sm *ScanMetrics) RecordScanIngested(ctx context.Context, source string) {
	sm.scansIngestedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
	))
}

// RecordEnrichmentFailure records one failed enrichment lookup.
// kind is "geocode" or "weather".
func (sm *ScanMetrics) RecordEnrichmentFailure(ctx context.Context, kind string) {
	sm.enrichmentFailuresTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

// RecordRedirectResolved records one resolved short-link redirect.
// cached reports whether the resolver answered from cache.
func (sm *ScanMetrics) RecordRedirectResolved(ctx context.Context, cached bool) {
	sm.redirectsResolvedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("cached", cached),
	))
}

// RecordConversion records one scan-to-order attribution
func (sm *ScanMetrics) RecordConversion(ctx context.Context) {
	sm.conversionsTotal.Add(ctx, 1)
}

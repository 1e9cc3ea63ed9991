package tracking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/domain/shared"
	"github.com/scanlink/backend/internal/domain/tracking"
)

// IngestMetrics records scan pipeline activity. Implemented by
// telemetry.ScanMetrics; may be nil.
type IngestMetrics interface {
	RecordScanIngested(ctx context.Context, source string)
	RecordEnrichmentFailure(ctx context.Context, kind string)
}

// IngestService records scan events. Enrichment lookups are strictly
// best-effort: each external call is bounded by its own timeout and any
// failure degrades the scan's enrichment, never the ingestion.
type IngestService struct {
	scanRepo     tracking.ScanRepository
	campaignRepo campaign.CampaignRepository
	geocoder     tracking.Geocoder
	weather      tracking.WeatherProvider
	timeout      time.Duration
	logger       *zap.Logger
	metrics      IngestMetrics
}

// NewIngestService creates a new IngestService. timeout bounds each
// individual enrichment call. geocoder, weather and metrics may be nil.
func NewIngestService(
	scanRepo tracking.ScanRepository,
	campaignRepo campaign.CampaignRepository,
	geocoder tracking.Geocoder,
	weather tracking.WeatherProvider,
	timeout time.Duration,
	logger *zap.Logger,
	metrics IngestMetrics,
) *IngestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngestService{
		scanRepo:     scanRepo,
		campaignRepo: campaignRepo,
		geocoder:     geocoder,
		weather:      weather,
		timeout:      timeout,
		logger:       logger,
		metrics:      metrics,
	}
}

// Ingest validates and records one scan event. Scans are accepted even
// outside the campaign's validity window; the window gates attribution,
// not observation.
func (s *IngestService) Ingest(ctx context.Context, req IngestScanRequest) (*ScanResponse, error) {
	if _, err := s.campaignRepo.FindByID(ctx, req.CampaignID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Campaign not found")
		}
		return nil, err
	}

	scan, err := tracking.NewScan(req.CampaignID, req.ScannedAt, req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	scan.City = req.City
	scan.Suburb = req.Suburb
	scan.Region = req.Region
	if !req.Weather.IsEmpty() {
		scan.Weather = req.Weather
	}
	scan.StoreDistanceM = req.StoreDistanceM
	scan.PoiDistanceM = req.PoiDistanceM
	scan.UserAgent = req.UserAgent
	scan.DeviceType = req.DeviceType
	scan.Referrer = req.Referrer
	scan.ScanSource = req.ScanSource

	s.enrich(ctx, scan)

	if err := s.scanRepo.Save(ctx, scan); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordScanIngested(ctx, scan.ScanSource)
	}

	return toScanResponse(scan), nil
}

// enrich fills unset place and weather fields from the external
// providers. Client-supplied values are never overwritten.
func (s *IngestService) enrich(ctx context.Context, scan *tracking.Scan) {
	if s.geocoder != nil && scan.NeedsPlaceEnrichment() {
		lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
		place, err := s.geocoder.ReverseGeocode(lookupCtx, scan.Latitude, scan.Longitude)
		cancel()
		if err != nil {
			s.recordEnrichmentFailure(ctx, "geocode", scan, err)
		} else {
			scan.MergePlace(place)
		}
	}

	if s.weather != nil && scan.NeedsWeatherEnrichment() {
		lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
		snapshot, err := s.weather.Snapshot(lookupCtx, scan.Latitude, scan.Longitude, scan.ScannedAt)
		cancel()
		if err != nil {
			s.recordEnrichmentFailure(ctx, "weather", scan, err)
		} else {
			scan.MergeWeather(snapshot)
		}
	}
}

func (s *IngestService) recordEnrichmentFailure(ctx context.Context, kind string, scan *tracking.Scan, err error) {
	s.logger.Warn("enrichment lookup failed",
		zap.String("kind", kind),
		zap.String("scan_id", scan.ID.String()),
		zap.String("campaign_id", scan.CampaignID.String()),
		zap.Error(err),
	)
	if s.metrics != nil {
		s.metrics.RecordEnrichmentFailure(ctx, kind)
	}
}

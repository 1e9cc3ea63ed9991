package tracking

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/domain/tracking"
)

// AggregationService computes reporting views over recorded scans
type AggregationService struct {
	scanRepo     tracking.ScanRepository
	campaignRepo campaign.CampaignRepository
}

// NewAggregationService creates a new AggregationService
func NewAggregationService(scanRepo tracking.ScanRepository, campaignRepo campaign.CampaignRepository) *AggregationService {
	return &AggregationService{
		scanRepo:     scanRepo,
		campaignRepo: campaignRepo,
	}
}

// SummaryByCity returns the per-city scan aggregate across all
// campaigns, descending by scan count. Unresolved cities are excluded.
func (s *AggregationService) SummaryByCity(ctx context.Context) ([]CitySummaryResponse, error) {
	rows, err := s.scanRepo.SummaryByCity(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CitySummaryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, CitySummaryResponse{
			City:      row.City,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			ScanCount: row.ScanCount,
		})
	}
	return out, nil
}

// CampaignSummary aggregates one campaign's scan and conversion
// activity. An unknown campaign returns shared.ErrNotFound.
func (s *AggregationService) CampaignSummary(ctx context.Context, campaignID uuid.UUID) (*CampaignSummaryResponse, error) {
	if _, err := s.campaignRepo.FindByID(ctx, campaignID); err != nil {
		return nil, err
	}

	scans, err := s.scanRepo.FindByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	summary := &CampaignSummaryResponse{
		CampaignID:        campaignID,
		ScanCount:         int64(len(scans)),
		Cities:            []string{},
		Regions:           []string{},
		DeviceTypes:       []string{},
		Sources:           []string{},
		Referrers:         []string{},
		GeoPoints:         make([]GeoPoint, 0, len(scans)),
		WeatherConditions: []string{},
	}

	cities := map[string]struct{}{}
	regions := map[string]struct{}{}
	devices := map[string]struct{}{}
	sources := map[string]struct{}{}
	referrers := map[string]struct{}{}
	conditions := map[string]struct{}{}

	var firstScan, lastScan time.Time
	var tempSum float64
	var tempCount int

	for i := range scans {
		scan := &scans[i]

		if scan.IsConverted() {
			summary.Conversions++
		}

		if firstScan.IsZero() || scan.ScannedAt.Before(firstScan) {
			firstScan = scan.ScannedAt
		}
		if lastScan.IsZero() || scan.ScannedAt.After(lastScan) {
			lastScan = scan.ScannedAt
		}

		if scan.City != nil {
			cities[*scan.City] = struct{}{}
		}
		if scan.Region != nil {
			regions[*scan.Region] = struct{}{}
		}
		if scan.DeviceType != "" {
			devices[scan.DeviceType] = struct{}{}
		}
		if scan.ScanSource != "" {
			sources[scan.ScanSource] = struct{}{}
		}
		if scan.Referrer != "" {
			referrers[scan.Referrer] = struct{}{}
		}

		summary.GeoPoints = append(summary.GeoPoints, GeoPoint{
			Latitude:  scan.Latitude,
			Longitude: scan.Longitude,
		})

		if scan.Weather != nil {
			if scan.Weather.Condition != "" {
				conditions[scan.Weather.Condition] = struct{}{}
			}
			if scan.Weather.TemperatureC != nil {
				tempSum += *scan.Weather.TemperatureC
				tempCount++
			}
		}
	}

	if len(scans) > 0 {
		summary.FirstScanAt = &firstScan
		summary.LastScanAt = &lastScan
		summary.ConversionRate = float64(summary.Conversions) / float64(summary.ScanCount)
	}
	if tempCount > 0 {
		mean := tempSum / float64(tempCount)
		summary.MeanTemperatureC = &mean
	}

	summary.Cities = sortedKeys(cities)
	summary.Regions = sortedKeys(regions)
	summary.DeviceTypes = sortedKeys(devices)
	summary.Sources = sortedKeys(sources)
	summary.Referrers = sortedKeys(referrers)
	summary.WeatherConditions = sortedKeys(conditions)

	return summary, nil
}

// sortedKeys returns the set's keys in lexical order for stable output
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

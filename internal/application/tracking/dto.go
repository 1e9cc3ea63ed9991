package tracking

import (
	"time"

	"github.com/google/uuid"

	"github.com/scanlink/backend/internal/domain/tracking"
)

// IngestScanRequest carries one scan event from a client device.
// Place names and weather are optional; unset fields are filled by
// best-effort enrichment.
type IngestScanRequest struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	ScannedAt  time.Time `json:"scanned_at"`
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lon"`

	City   *string `json:"city,omitempty"`
	Suburb *string `json:"suburb,omitempty"`
	Region *string `json:"region,omitempty"`

	Weather *tracking.WeatherSnapshot `json:"weather,omitempty"`

	StoreDistanceM *int `json:"store_distance_m,omitempty"`
	PoiDistanceM   *int `json:"poi_distance_m,omitempty"`

	UserAgent  string `json:"user_agent,omitempty"`
	DeviceType string `json:"device_type,omitempty"`
	Referrer   string `json:"referrer,omitempty"`
	ScanSource string `json:"scan_source,omitempty"`
}

// ScanResponse is the API representation of a recorded scan
type ScanResponse struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	ScannedAt  time.Time `json:"scanned_at"`
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lon"`

	City   *string `json:"city,omitempty"`
	Suburb *string `json:"suburb,omitempty"`
	Region *string `json:"region,omitempty"`

	Weather *tracking.WeatherSnapshot `json:"weather,omitempty"`

	StoreDistanceM *int `json:"store_distance_m,omitempty"`
	PoiDistanceM   *int `json:"poi_distance_m,omitempty"`

	UserAgent  string `json:"user_agent,omitempty"`
	DeviceType string `json:"device_type,omitempty"`
	Referrer   string `json:"referrer,omitempty"`
	ScanSource string `json:"scan_source,omitempty"`

	ConvertedOrderID *uuid.UUID `json:"converted_order_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// CitySummaryResponse is one row of the per-city aggregate
type CitySummaryResponse struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	ScanCount int64   `json:"scan_count"`
}

// GeoPoint is one scan location in a campaign summary
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// CampaignSummaryResponse aggregates a campaign's scan and conversion activity
type CampaignSummaryResponse struct {
	CampaignID     uuid.UUID  `json:"campaign_id"`
	ScanCount      int64      `json:"scan_count"`
	Conversions    int64      `json:"conversions"`
	ConversionRate float64    `json:"conversion_rate"`
	FirstScanAt    *time.Time `json:"first_scan_at,omitempty"`
	LastScanAt     *time.Time `json:"last_scan_at,omitempty"`

	Cities      []string `json:"cities"`
	Regions     []string `json:"regions"`
	DeviceTypes []string `json:"device_types"`
	Sources     []string `json:"sources"`
	Referrers   []string `json:"referrers"`

	GeoPoints []GeoPoint `json:"geo_points"`

	MeanTemperatureC  *float64 `json:"mean_temperature_c,omitempty"`
	WeatherConditions []string `json:"weather_conditions"`
}

// toScanResponse converts a domain scan to its API representation
func toScanResponse(s *tracking.Scan) *ScanResponse {
	return &ScanResponse{
		ID:               s.ID,
		CampaignID:       s.CampaignID,
		ScannedAt:        s.ScannedAt,
		Latitude:         s.Latitude,
		Longitude:        s.Longitude,
		City:             s.City,
		Suburb:           s.Suburb,
		Region:           s.Region,
		Weather:          s.Weather,
		StoreDistanceM:   s.StoreDistanceM,
		PoiDistanceM:     s.PoiDistanceM,
		UserAgent:        s.UserAgent,
		DeviceType:       s.DeviceType,
		Referrer:         s.Referrer,
		ScanSource:       s.ScanSource,
		ConvertedOrderID: s.ConvertedOrderID,
		CreatedAt:        s.CreatedAt,
	}
}

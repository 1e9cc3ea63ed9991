package tracking

import (
	"time"

	"github.com/google/uuid"

	"github.com/scanlink/backend/internal/domain/shared"
)

// WeatherSnapshot captures ambient conditions at scan time.
// All fields are optional; a partially filled snapshot is valid.
type WeatherSnapshot struct {
	Condition    string   `json:"condition,omitempty"`
	TemperatureC *float64 `json:"temperature_c,omitempty"`
	Humidity     *int     `json:"humidity,omitempty"`
	WindSpeedKmh *float64 `json:"wind_speed_kmh,omitempty"`
}

// IsEmpty reports whether no field of the snapshot is set
func (w *WeatherSnapshot) IsEmpty() bool {
	return w == nil || (w.Condition == "" && w.TemperatureC == nil && w.Humidity == nil && w.WindSpeedKmh == nil)
}

// Scan is one immutable resolution event of a campaign's code.
// The conversion pointer is the only field ever mutated after creation,
// and only once (set exactly once, never cleared).
type Scan struct {
	shared.BaseEntity
	CampaignID uuid.UUID
	ScannedAt  time.Time

	Latitude  float64
	Longitude float64

	// Resolved place names; filled by enrichment only when absent
	City   *string
	Suburb *string
	Region *string

	Weather *WeatherSnapshot

	// Proximity metrics, metres
	StoreDistanceM *int
	PoiDistanceM   *int

	// Client metadata, captured verbatim
	UserAgent  string
	DeviceType string
	Referrer   string
	ScanSource string

	// Back-reference to the converting order, set at most once
	ConvertedOrderID *uuid.UUID
}

// NewScan creates a new scan event. Campaign, scan time and a full
// coordinate pair are required; everything else is optional.
func NewScan(campaignID uuid.UUID, scannedAt time.Time, latitude, longitude float64) (*Scan, error) {
	if campaignID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CAMPAIGN", "Campaign ID cannot be empty")
	}
	if scannedAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_SCAN_TIME", "Scan timestamp cannot be empty")
	}
	if latitude < -90 || latitude > 90 {
		return nil, shared.NewDomainError("INVALID_COORDINATES", "Latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return nil, shared.NewDomainError("INVALID_COORDINATES", "Longitude must be between -180 and 180")
	}

	return &Scan{
		BaseEntity: shared.NewBaseEntity(),
		CampaignID: campaignID,
		ScannedAt:  scannedAt,
		Latitude:   latitude,
		Longitude:  longitude,
	}, nil
}

// NeedsPlaceEnrichment reports whether any place name field is still unset
func (s *Scan) NeedsPlaceEnrichment() bool {
	return s.City == nil || s.Suburb == nil || s.Region == nil
}

// NeedsWeatherEnrichment reports whether the weather snapshot is still unset
func (s *Scan) NeedsWeatherEnrichment() bool {
	return s.Weather.IsEmpty()
}

// MergePlace fills unset place fields from an enrichment result.
// Client-supplied values are never overwritten.
func (s *Scan) MergePlace(p *Place) {
	if p == nil {
		return
	}
	if s.City == nil && p.City != "" {
		city := p.City
		s.City = &city
	}
	if s.Suburb == nil && p.Suburb != "" {
		suburb := p.Suburb
		s.Suburb = &suburb
	}
	if s.Region == nil && p.Region != "" {
		region := p.Region
		s.Region = &region
	}
}

// MergeWeather fills the weather snapshot from an enrichment result
// unless the client already supplied one.
func (s *Scan) MergeWeather(w *WeatherSnapshot) {
	if w.IsEmpty() || !s.Weather.IsEmpty() {
		return
	}
	s.Weather = w
}

// IsConverted reports whether a conversion pointer has been recorded
func (s *Scan) IsConverted() bool {
	return s.ConvertedOrderID != nil
}

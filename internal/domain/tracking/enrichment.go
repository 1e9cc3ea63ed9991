package tracking

import (
	"context"
	"time"
)

// Place is the result of a reverse-geocode lookup
type Place struct {
	City   string
	Suburb string
	Region string
}

// Geocoder resolves coordinates to place names. Implementations are
// best-effort: callers bound each call with a short timeout and treat
// any error as a degraded lookup, never a failed ingestion.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (*Place, error)
}

// WeatherProvider resolves coordinates and a scan time to an ambient
// weather snapshot, with the same best-effort contract as Geocoder.
type WeatherProvider interface {
	Snapshot(ctx context.Context, latitude, longitude float64, at time.Time) (*WeatherSnapshot, error)
}

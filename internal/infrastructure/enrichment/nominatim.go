// Package enrichment holds the best-effort adapters for the two external
// lookups performed during scan ingestion. Both are bounded by the
// caller's context; any failure degrades a single scan's enrichment and
// never an ingestion.
package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/scanlink/backend/internal/domain/tracking"
)

// maxResponseSize caps enrichment responses (1MB)
const maxResponseSize = 1 * 1024 * 1024

// NominatimGeocoder implements tracking.Geocoder against a
// Nominatim-compatible reverse geocoding endpoint.
type NominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimGeocoder creates a geocoder for the given endpoint.
// Nominatim's usage policy requires an identifying User-Agent.
func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// nominatimResponse is the subset of the reverse geocode payload we read
type nominatimResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Suburb  string `json:"suburb"`
		State   string `json:"state"`
	} `json:"address"`
}

// ReverseGeocode resolves coordinates to place names
func (g *NominatimGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*tracking.Place, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set("zoom", "14")

	endpoint := fmt.Sprintf("%s/reverse?%s", g.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build reverse geocode request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverse geocode status %d", resp.StatusCode)
	}

	var payload nominatimResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode reverse geocode response: %w", err)
	}

	city := payload.Address.City
	if city == "" {
		city = payload.Address.Town
	}
	if city == "" {
		city = payload.Address.Village
	}

	return &tracking.Place{
		City:   city,
		Suburb: payload.Address.Suburb,
		Region: payload.Address.State,
	}, nil
}

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

// OpenMeteoProvider implements tracking.WeatherProvider against an
// Open-Meteo-compatible forecast endpoint.
type OpenMeteoProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenMeteoProvider creates a weather provider for the given endpoint
func NewOpenMeteoProvider(baseURL string, timeout time.Duration) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// openMeteoResponse is the subset of the forecast payload we read
type openMeteoResponse struct {
	Current struct {
		TemperatureC *float64 `json:"temperature_2m"`
		Humidity     *int     `json:"relative_humidity_2m"`
		WindSpeedKmh *float64 `json:"wind_speed_10m"`
		WeatherCode  *int     `json:"weather_code"`
	} `json:"current"`
}

// Snapshot resolves coordinates to current ambient conditions. Scans are
// ingested in near real time, so current conditions stand in for the
// conditions at the supplied scan time.
func (p *OpenMeteoProvider) Snapshot(ctx context.Context, latitude, longitude float64, at time.Time) (*tracking.WeatherSnapshot, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code")

	endpoint := fmt.Sprintf("%s/v1/forecast?%s", p.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather status %d", resp.StatusCode)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	snapshot := &tracking.WeatherSnapshot{
		TemperatureC: payload.Current.TemperatureC,
		Humidity:     payload.Current.Humidity,
		WindSpeedKmh: payload.Current.WindSpeedKmh,
	}
	if payload.Current.WeatherCode != nil {
		snapshot.Condition = conditionFromCode(*payload.Current.WeatherCode)
	}
	return snapshot, nil
}

// conditionFromCode maps WMO weather interpretation codes to a label
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code <= 3:
		return "partly cloudy"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code >= 61 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "rain showers"
	case code == 85 || code == 86:
		return "snow showers"
	case code >= 95:
		return "thunderstorm"
	default:
		return "unknown"
	}
}

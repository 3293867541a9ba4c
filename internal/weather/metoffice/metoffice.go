// Package metoffice implements the weather.Provider interface against the
// Met Office DataHub site-specific hourly feed. The feed needs an API key
// and always reports in base units, so values are converted locally.
package metoffice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"weathr/internal/weather"
)

const (
	defaultBaseURL    = "https://data.hub.api.metoffice.gov.uk/sitespecific/v0"
	defaultDataSource = "BD1"
	requestTimeout    = 10 * time.Second
)

// ErrMissingAPIKey is returned by New when no key is configured.
var ErrMissingAPIKey = errors.New("met office provider needs an api key")

type Provider struct {
	baseURL    string
	apiKey     string
	dataSource string
	client     *http.Client

	// The hourly feed covers two days, so one response serves many
	// refreshes. Guarded by mu.
	mu   sync.Mutex
	last *pointResponse
}

func New(apiKey, dataSource string) (*Provider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if dataSource == "" {
		dataSource = defaultDataSource
	}
	return &Provider{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		dataSource: dataSource,
		client:     &http.Client{Timeout: requestTimeout},
	}, nil
}

// NewWithBaseURL points the provider at an alternate endpoint, used by tests.
func NewWithBaseURL(apiKey, baseURL string) (*Provider, error) {
	p, err := New(apiKey, "")
	if err != nil {
		return nil, err
	}
	p.baseURL = baseURL
	return p, nil
}

func (p *Provider) Attribution() string {
	// Wording required by the Met Office DataHub terms.
	return "Data supplied by the Met Office"
}

type pointResponse struct {
	Features []struct {
		Properties struct {
			TimeSeries []timeSeries `json:"timeSeries"`
		} `json:"properties"`
	} `json:"features"`
	Parameters []map[string]parameter `json:"parameters"`
}

type parameter struct {
	Unit struct {
		Label string `json:"label"`
	} `json:"unit"`
}

type timeSeries struct {
	Time                   string  `json:"time"`
	ScreenTemperature      float64 `json:"screenTemperature"`
	FeelsLikeTemperature   float64 `json:"feelsLikeTemperature"`
	ScreenRelativeHumidity float64 `json:"screenRelativeHumidity"`
	PrecipitationRate      float64 `json:"precipitationRate"`
	WindGustSpeed10m       float64 `json:"windGustSpeed10m"`
	WindDirectionFrom10m   float64 `json:"windDirectionFrom10m"`
	Visibility             float64 `json:"visibility"`
	MSLP                   float64 `json:"mslp"`
	UVIndex                int     `json:"uvIndex"`
	SignificantWeatherCode int     `json:"significantWeatherCode"`
}

// Current fetches (or reuses) the hourly series and maps the entry covering
// the present hour onto a snapshot.
func (p *Provider) Current(ctx context.Context, loc weather.Location, units weather.Units) (weather.Snapshot, error) {
	now := time.Now().UTC()

	data, err := p.fetchOrReuse(ctx, loc, now)
	if err != nil {
		return weather.Snapshot{}, err
	}
	cur, ok := seriesFor(data, now)
	if !ok {
		return weather.Snapshot{}, fmt.Errorf("met office series has no entry for %s", now.Format(time.RFC3339))
	}

	celsius := unitLabel(data, "screenTemperature") != "degrees Fahrenheit"
	return weather.Snapshot{
		Condition:           weather.FromMetOfficeCode(cur.SignificantWeatherCode),
		Temperature:         convertTemperature(cur.ScreenTemperature, celsius, units),
		ApparentTemperature: convertTemperature(cur.FeelsLikeTemperature, celsius, units),
		Humidity:            cur.ScreenRelativeHumidity,
		Precipitation:       cur.PrecipitationRate,
		WindSpeed:           convertWind(cur.WindGustSpeed10m, units),
		WindDirection:       cur.WindDirectionFrom10m,
		CloudCover:          coarseCloudCover(cur.SignificantWeatherCode),
		Pressure:            cur.MSLP / 100, // Pa to hPa
		IsDay:               cur.UVIndex > 0,
		MoonPhase:           weather.MoonPhase(now),
		Timestamp:           cur.Time,
	}, nil
}

// fetchOrReuse returns the last response while it still covers the current
// hour, hitting the API otherwise.
func (p *Provider) fetchOrReuse(ctx context.Context, loc weather.Location, now time.Time) (*pointResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.last != nil {
		if _, ok := seriesFor(p.last, now); ok {
			return p.last, nil
		}
	}

	url := fmt.Sprintf("%s/point/hourly?latitude=%.4f&longitude=%.4f&includeLocationName=true&dataSource=%s",
		p.baseURL, loc.Latitude, loc.Longitude, p.dataSource)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("met office returned status %d", resp.StatusCode)
	}
	var data pointResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}
	p.last = &data
	return &data, nil
}

// seriesFor picks the hourly entry whose window contains t.
func seriesFor(data *pointResponse, t time.Time) (timeSeries, bool) {
	if len(data.Features) == 0 {
		return timeSeries{}, false
	}
	for _, entry := range data.Features[0].Properties.TimeSeries {
		start, err := parseSeriesTime(entry.Time)
		if err != nil {
			continue
		}
		if !t.Before(start) && t.Before(start.Add(time.Hour)) {
			return entry, true
		}
	}
	return timeSeries{}, false
}

// parseSeriesTime accepts the feed's loose stamps, which omit seconds and
// sometimes minutes.
func parseSeriesTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z", "2006-01-02T15Z"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable series time %q", s)
}

// unitLabel looks up a field's declared unit, empty when the feed omits it.
func unitLabel(data *pointResponse, field string) string {
	for _, group := range data.Parameters {
		if param, ok := group[field]; ok {
			return param.Unit.Label
		}
	}
	return ""
}

func convertTemperature(v float64, celsius bool, units weather.Units) float64 {
	if !celsius {
		v = (v - 32) * 5 / 9
	}
	if units.Temperature == "fahrenheit" {
		return v*9/5 + 32
	}
	return v
}

// convertWind maps the feed's m/s onto the requested display unit.
func convertWind(ms float64, units weather.Units) float64 {
	if units.WindSpeed == "mph" {
		return ms * 2.23694
	}
	return ms * 3.6
}

// coarseCloudCover synthesizes a cover percentage from the weather code;
// the feed has no direct cloud cover field.
func coarseCloudCover(code int) float64 {
	switch weather.FromMetOfficeCode(code) {
	case weather.Clear:
		return 5
	case weather.PartlyCloudy:
		return 40
	case weather.Cloudy:
		return 75
	default:
		return 95
	}
}

// Package openmeteo implements the weather.Provider interface against the
// free Open-Meteo forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"weathr/internal/weather"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	requestTimeout = 10 * time.Second
)

type Provider struct {
	baseURL string
	client  *http.Client
}

func New() *Provider {
	return &Provider{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// NewWithBaseURL points the provider at an alternate endpoint, used by tests.
func NewWithBaseURL(baseURL string) *Provider {
	p := New()
	p.baseURL = baseURL
	return p
}

func (p *Provider) Attribution() string {
	return "Weather data by Open-Meteo.com"
}

type currentResponse struct {
	Current struct {
		Temperature         float64 `json:"temperature_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		Humidity            float64 `json:"relative_humidity_2m"`
		Precipitation       float64 `json:"precipitation"`
		WeatherCode         int     `json:"weather_code"`
		CloudCover          float64 `json:"cloud_cover"`
		Pressure            float64 `json:"pressure_msl"`
		WindSpeed           float64 `json:"wind_speed_10m"`
		WindDirection       float64 `json:"wind_direction_10m"`
		IsDay               int     `json:"is_day"`
		Time                string  `json:"time"`
	} `json:"current"`
}

// Current fetches current conditions for the location.
func (p *Provider) Current(ctx context.Context, loc weather.Location, units weather.Units) (weather.Snapshot, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", loc.Latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", loc.Longitude))
	q.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,"+
		"precipitation,weather_code,cloud_cover,pressure_msl,"+
		"wind_speed_10m,wind_direction_10m,is_day")
	q.Set("temperature_unit", units.Temperature)
	q.Set("wind_speed_unit", units.WindSpeed)
	q.Set("precipitation_unit", units.Precipitation)
	q.Set("timezone", "auto")

	var resp currentResponse
	if err := p.get(ctx, q, &resp); err != nil {
		return weather.Snapshot{}, err
	}

	cur := resp.Current
	return weather.Snapshot{
		Condition:           weather.FromWMOCode(cur.WeatherCode),
		Temperature:         cur.Temperature,
		ApparentTemperature: cur.ApparentTemperature,
		Humidity:            cur.Humidity,
		Precipitation:       cur.Precipitation,
		WindSpeed:           cur.WindSpeed,
		WindDirection:       cur.WindDirection,
		CloudCover:          cur.CloudCover,
		Pressure:            cur.Pressure,
		IsDay:               cur.IsDay == 1,
		MoonPhase:           weather.MoonPhase(time.Now()),
		Timestamp:           cur.Time,
	}, nil
}

// HourlyPoint is one forecast sample for the chart output.
type HourlyPoint struct {
	Time        string
	Temperature float64
}

type hourlyResponse struct {
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
	} `json:"hourly"`
}

// Hourly fetches the next `hours` hourly temperatures for the location.
func (p *Provider) Hourly(ctx context.Context, loc weather.Location, units weather.Units, hours int) ([]HourlyPoint, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", loc.Latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", loc.Longitude))
	q.Set("hourly", "temperature_2m")
	q.Set("forecast_hours", fmt.Sprintf("%d", hours))
	q.Set("temperature_unit", units.Temperature)
	q.Set("timezone", "auto")

	var resp hourlyResponse
	if err := p.get(ctx, q, &resp); err != nil {
		return nil, err
	}

	n := len(resp.Hourly.Time)
	if len(resp.Hourly.Temperature) < n {
		n = len(resp.Hourly.Temperature)
	}
	points := make([]HourlyPoint, n)
	for i := 0; i < n; i++ {
		points[i] = HourlyPoint{
			Time:        resp.Hourly.Time[i],
			Temperature: resp.Hourly.Temperature[i],
		}
	}
	return points, nil
}

func (p *Provider) get(ctx context.Context, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("open-meteo returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode weather response: %w", err)
	}
	return nil
}

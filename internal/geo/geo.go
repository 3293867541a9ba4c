// Package geo turns place names and IP addresses into coordinates, via
// the Open-Meteo geocoding API and ipinfo.io.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	geocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	ipinfoURL    = "https://ipinfo.io/json"

	maxRetries        = 3
	initialRetryDelay = 500 * time.Millisecond
)

// ErrCityNotFound is returned when geocoding finds no match; it is not
// retried.
var ErrCityNotFound = errors.New("city not found")

// Place is one geocoding result.
type Place struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Label is the display form: city plus region or country when known.
func (p Place) Label() string {
	switch {
	case p.Country != "":
		return p.Name + ", " + p.Country
	case p.Admin1 != "":
		return p.Name + ", " + p.Admin1
	default:
		return p.Name
	}
}

type Geocoder struct {
	baseURL string
	client  *http.Client
}

func NewGeocoder() *Geocoder {
	return NewGeocoderWithBaseURL(geocodingURL)
}

func NewGeocoderWithBaseURL(base string) *Geocoder {
	return &Geocoder{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Search returns the best match for a city name, retrying transient
// failures with exponential backoff. A definitive no-match returns
// ErrCityNotFound immediately.
func (g *Geocoder) Search(ctx context.Context, city string) (Place, error) {
	places, err := g.SearchAll(ctx, city, 1)
	if err != nil {
		return Place{}, err
	}
	return places[0], nil
}

// SearchAll returns up to count candidate places for an ambiguous name.
func (g *Geocoder) SearchAll(ctx context.Context, city string, count int) ([]Place, error) {
	var lastErr error
	delay := initialRetryDelay

	for attempt := 1; attempt <= maxRetries; attempt++ {
		places, err := g.fetch(ctx, city, count)
		switch {
		case err == nil:
			return places, nil
		case errors.Is(err, ErrCityNotFound):
			return nil, fmt.Errorf("%w: %s", ErrCityNotFound, city)
		case ctx.Err() != nil:
			return nil, ctx.Err()
		}
		lastErr = err
		if attempt < maxRetries {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			delay *= 2
		}
	}
	return nil, fmt.Errorf("geocoding %q after %d attempts: %w", city, maxRetries, lastErr)
}

func (g *Geocoder) fetch(ctx context.Context, city string, count int) ([]Place, error) {
	params := url.Values{}
	params.Set("name", city)
	params.Set("count", strconv.Itoa(count))
	params.Set("language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned %s", resp.Status)
	}

	var body struct {
		Results []Place `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding geocoding response: %w", err)
	}
	if len(body.Results) == 0 {
		return nil, ErrCityNotFound
	}
	return body.Results, nil
}

// IPLocator resolves the caller's approximate location from their
// public IP address.
type IPLocator struct {
	baseURL string
	client  *http.Client
}

func NewIPLocator() *IPLocator {
	return NewIPLocatorWithBaseURL(ipinfoURL)
}

func NewIPLocatorWithBaseURL(base string) *IPLocator {
	return &IPLocator{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (l *IPLocator) Locate(ctx context.Context) (Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL, nil)
	if err != nil {
		return Place{}, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("ip lookup: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("ip lookup returned %s", resp.Status)
	}

	var body struct {
		City    string `json:"city"`
		Country string `json:"country"`
		Loc     string `json:"loc"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Place{}, fmt.Errorf("decoding ip lookup response: %w", err)
	}

	lat, lon, err := parseLoc(body.Loc)
	if err != nil {
		return Place{}, err
	}
	return Place{
		Name:      body.City,
		Country:   body.Country,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// parseLoc splits the "lat,lon" pair ipinfo returns.
func parseLoc(loc string) (float64, float64, error) {
	parts := strings.Split(loc, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed loc field %q", loc)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed latitude in %q", loc)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed longitude in %q", loc)
	}
	return lat, lon, nil
}

package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"weathr/internal/weather"
)

func TestCurrentParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("latitude") != "52.5200" || q.Get("longitude") != "13.4100" {
			t.Errorf("unexpected coordinates: %s,%s", q.Get("latitude"), q.Get("longitude"))
		}
		if q.Get("temperature_unit") != "celsius" {
			t.Errorf("unexpected temperature unit %q", q.Get("temperature_unit"))
		}
		w.Write([]byte(`{"current":{
			"temperature_2m": 3.4,
			"apparent_temperature": 0.9,
			"relative_humidity_2m": 81,
			"precipitation": 0.2,
			"weather_code": 71,
			"cloud_cover": 90,
			"pressure_msl": 1004.5,
			"wind_speed_10m": 18.2,
			"wind_direction_10m": 250,
			"is_day": 1,
			"time": "2026-01-12T09:00"
		}}`))
	}))
	defer srv.Close()

	p := NewWithBaseURL(srv.URL)
	snap, err := p.Current(context.Background(), weather.Location{Latitude: 52.52, Longitude: 13.41}, weather.Metric())
	if err != nil {
		t.Fatalf("Current() error: %v", err)
	}

	if snap.Condition != weather.Snow {
		t.Errorf("condition = %s, want snow (code 71)", snap.Condition)
	}
	if snap.Temperature != 3.4 {
		t.Errorf("temperature = %v, want 3.4", snap.Temperature)
	}
	if !snap.IsDay {
		t.Error("is_day=1 should map to daytime")
	}
	if snap.Offline {
		t.Error("live fetch must not be offline")
	}
}

func TestCurrentRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewWithBaseURL(srv.URL)
	if _, err := p.Current(context.Background(), weather.Location{}, weather.Metric()); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestHourlyPairsTimesWithTemperatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hourly":{
			"time": ["2026-01-12T00:00","2026-01-12T01:00","2026-01-12T02:00"],
			"temperature_2m": [1.5, 1.1]
		}}`))
	}))
	defer srv.Close()

	p := NewWithBaseURL(srv.URL)
	points, err := p.Hourly(context.Background(), weather.Location{}, weather.Metric(), 3)
	if err != nil {
		t.Fatalf("Hourly() error: %v", err)
	}
	// Mismatched lengths truncate to the shorter series.
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[1].Time != "2026-01-12T01:00" || points[1].Temperature != 1.1 {
		t.Errorf("unexpected point %+v", points[1])
	}
}

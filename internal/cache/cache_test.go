package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"weathr/internal/weather"
)

func testLoc() weather.Location {
	return weather.Location{Latitude: 51.5074, Longitude: -0.1278}
}

func TestWeatherRoundTrip(t *testing.T) {
	store := NewAt(t.TempDir())
	snap := weather.Snapshot{Condition: weather.Snow, Temperature: -3.5, IsDay: true}

	if err := store.SaveWeather(snap, testLoc()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok := store.LoadWeather(testLoc())
	if !ok {
		t.Fatal("expected a fresh cache hit")
	}
	if got.Condition != weather.Snow || got.Temperature != -3.5 {
		t.Errorf("snapshot = %+v", got)
	}
}

func TestWeatherMissForDifferentLocation(t *testing.T) {
	store := NewAt(t.TempDir())
	if err := store.SaveWeather(weather.Snapshot{Condition: weather.Rain}, testLoc()); err != nil {
		t.Fatal(err)
	}

	elsewhere := weather.Location{Latitude: 35.68, Longitude: 139.69}
	if _, ok := store.LoadWeather(elsewhere); ok {
		t.Fatal("cache must be keyed by location")
	}
}

func TestNearbyCoordinatesShareAnEntry(t *testing.T) {
	store := NewAt(t.TempDir())
	if err := store.SaveWeather(weather.Snapshot{Condition: weather.Fog}, testLoc()); err != nil {
		t.Fatal(err)
	}

	// Within the two-decimal rounding window.
	nearby := weather.Location{Latitude: 51.5101, Longitude: -0.1302}
	if _, ok := store.LoadWeather(nearby); !ok {
		t.Fatal("coordinates rounding to the same key should hit")
	}
}

func TestExpiredWeatherIsIgnored(t *testing.T) {
	dir := t.TempDir()
	store := NewAt(dir)
	if err := store.SaveWeather(weather.Snapshot{Condition: weather.Rain}, testLoc()); err != nil {
		t.Fatal(err)
	}

	backdate(t, filepath.Join(dir, "weather.json"), time.Now().Add(-6*time.Minute))

	if _, ok := store.LoadWeather(testLoc()); ok {
		t.Fatal("entries past the five-minute TTL must miss")
	}
}

func TestLocationRoundTripAndExpiry(t *testing.T) {
	dir := t.TempDir()
	store := NewAt(dir)

	if err := store.SaveLocation(testLoc(), "London"); err != nil {
		t.Fatalf("save: %v", err)
	}
	loc, city, ok := store.LoadLocation()
	if !ok || city != "London" || loc != testLoc() {
		t.Fatalf("load = %v %q %v", loc, city, ok)
	}

	backdate(t, filepath.Join(dir, "location.json"), time.Now().Add(-25*time.Hour))
	if _, _, ok := store.LoadLocation(); ok {
		t.Fatal("fixes older than a day must miss")
	}
}

func TestCorruptCacheFileMisses(t *testing.T) {
	dir := t.TempDir()
	store := NewAt(dir)
	if err := os.WriteFile(filepath.Join(dir, "weather.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.LoadWeather(testLoc()); ok {
		t.Fatal("corrupt entries must read as a miss")
	}
}

// backdate rewrites the entry's cached_at timestamp in place.
func backdate(t *testing.T, path string, to time.Time) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatal(err)
	}
	entry["cached_at"] = to.Format(time.RFC3339Nano)
	data, err = json.Marshal(entry)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
}

// Package cache persists the most recent weather and geolocation results as
// JSON files so restarts (and offline fallback) can reuse them.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"weathr/internal/weather"
)

const (
	weatherTTL  = 5 * time.Minute
	locationTTL = 24 * time.Hour
)

type Store struct {
	baseDir string
}

// New returns a store rooted at the user cache directory. The directory is
// created lazily on first save.
func New() (*Store, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir: %w", err)
	}
	return &Store{baseDir: filepath.Join(base, "weathr")}, nil
}

// NewAt roots the store at an explicit directory, used by tests.
func NewAt(dir string) *Store {
	return &Store{baseDir: dir}
}

// locationKey rounds coordinates to ~1 km so nearby fixes share one entry.
func locationKey(loc weather.Location) string {
	return fmt.Sprintf("%.2f,%.2f", loc.Latitude, loc.Longitude)
}

type weatherEntry struct {
	Data        weather.Snapshot `json:"data"`
	CachedAt    time.Time        `json:"cached_at"`
	LocationKey string           `json:"location_key"`
}

// SaveWeather records a snapshot for the given location. Errors are
// returned but callers treat them as advisory; a failed cache write must
// never interrupt rendering.
func (s *Store) SaveWeather(snap weather.Snapshot, loc weather.Location) error {
	return s.write("weather.json", weatherEntry{
		Data:        snap,
		CachedAt:    time.Now(),
		LocationKey: locationKey(loc),
	})
}

// LoadWeather returns the cached snapshot for the location if it is still
// fresh, or false.
func (s *Store) LoadWeather(loc weather.Location) (weather.Snapshot, bool) {
	var entry weatherEntry
	if !s.read("weather.json", &entry) {
		return weather.Snapshot{}, false
	}
	if entry.LocationKey != locationKey(loc) {
		return weather.Snapshot{}, false
	}
	if time.Since(entry.CachedAt) >= weatherTTL {
		return weather.Snapshot{}, false
	}
	return entry.Data, true
}

type locationEntry struct {
	Location weather.Location `json:"location"`
	City     string           `json:"city"`
	CachedAt time.Time        `json:"cached_at"`
}

// SaveLocation records an IP-geolocation fix.
func (s *Store) SaveLocation(loc weather.Location, city string) error {
	return s.write("location.json", locationEntry{
		Location: loc,
		City:     city,
		CachedAt: time.Now(),
	})
}

// LoadLocation returns a cached geolocation fix younger than a day.
func (s *Store) LoadLocation() (weather.Location, string, bool) {
	var entry locationEntry
	if !s.read("location.json", &entry) {
		return weather.Location{}, "", false
	}
	if time.Since(entry.CachedAt) >= locationTTL {
		return weather.Location{}, "", false
	}
	return entry.Location, entry.City, true
}

func (s *Store) write(name string, v any) error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (s *Store) read(name string, v any) bool {
	data, err := os.ReadFile(filepath.Join(s.baseDir, name))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

package weather

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Location is the coordinate pair handed to providers. Immutable once the
// fetch goroutine is spawned; the frame loop and fetcher share it read-only.
type Location struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Units selects the measurement system requested from providers and shown
// on the HUD.
type Units struct {
	Temperature   string `json:"temperature" yaml:"temperature"`     // "celsius" or "fahrenheit"
	WindSpeed     string `json:"wind_speed" yaml:"wind_speed"`       // "kmh" or "mph"
	Precipitation string `json:"precipitation" yaml:"precipitation"` // "mm" or "inch"
}

func Metric() Units {
	return Units{Temperature: "celsius", WindSpeed: "kmh", Precipitation: "mm"}
}

func Imperial() Units {
	return Units{Temperature: "fahrenheit", WindSpeed: "mph", Precipitation: "inch"}
}

// TemperatureSymbol returns the HUD suffix for temperatures.
func (u Units) TemperatureSymbol() string {
	if u.Temperature == "fahrenheit" {
		return "°F"
	}
	return "°C"
}

// WindSymbol returns the HUD suffix for wind speed.
func (u Units) WindSymbol() string {
	if u.WindSpeed == "mph" {
		return "mph"
	}
	return "km/h"
}

// Snapshot is one observation of the weather, consumed by the engine until
// the next one arrives. The engine reads only the fields it needs for layer
// selection and the HUD.
type Snapshot struct {
	Condition           Condition `json:"condition"`
	Temperature         float64   `json:"temperature"`
	ApparentTemperature float64   `json:"apparent_temperature"`
	Humidity            float64   `json:"humidity"`
	Precipitation       float64   `json:"precipitation"`
	WindSpeed           float64   `json:"wind_speed"`
	WindDirection       float64   `json:"wind_direction"`
	CloudCover          float64   `json:"cloud_cover"`
	Pressure            float64   `json:"pressure"`
	IsDay               bool      `json:"is_day"`
	MoonPhase           float64   `json:"moon_phase"`
	Timestamp           string    `json:"timestamp"`

	// Offline marks a degraded snapshot produced without a live fetch.
	Offline bool `json:"-"`
	// Location is the display label, not used for fetching.
	Location string `json:"-"`
}

// StatusLine formats the HUD summary for this snapshot.
func (s Snapshot) StatusLine(units Units, hideLocation bool) string {
	line := fmt.Sprintf("%s %.1f%s (feels %.1f%s)  %.0f%%RH  %.0f%s",
		s.Condition.Describe(),
		s.Temperature, units.TemperatureSymbol(),
		s.ApparentTemperature, units.TemperatureSymbol(),
		s.Humidity,
		s.WindSpeed, units.WindSymbol(),
	)
	if s.Location != "" && !hideLocation {
		line = s.Location + "  " + line
	}
	if s.Offline {
		line += "  [offline]"
	}
	return line
}

// Simulated builds the fixed snapshot used by --simulate: no fetcher runs
// and the values only need to be plausible enough to drive the layers.
func Simulated(cond Condition, night bool) Snapshot {
	precip := 0.0
	if cond.IsRaining() {
		precip = 2.5
	}
	wind := 10.0
	if cond.IsThunderstorm() {
		wind = 45.0
	}
	return Snapshot{
		Condition:           cond,
		Temperature:         20.0,
		ApparentTemperature: 19.0,
		Humidity:            65.0,
		Precipitation:       precip,
		WindSpeed:           wind,
		WindDirection:       225.0,
		CloudCover:          50.0,
		Pressure:            1013.0,
		IsDay:               !night,
		MoonPhase:           0.5,
		Timestamp:           "simulated",
	}
}

// MoonPhase approximates the lunar phase at t as a fraction of the synodic
// cycle: 0 is new, 0.5 is full. Accurate to within about a day, which is
// enough to pick one of eight sprites.
func MoonPhase(t time.Time) float64 {
	// New moon reference: 2000-01-06 18:14 UTC.
	ref := time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)
	const synodic = 29.530588853
	days := t.Sub(ref).Hours() / 24.0
	phase := math.Mod(days/synodic, 1.0)
	if phase < 0 {
		phase += 1.0
	}
	return phase
}

// GenerateOffline invents a plausible snapshot when no live data and no
// cache is available. The day flag tracks the local clock so the scene at
// least agrees with the sky outside.
func GenerateOffline(rng *rand.Rand, now time.Time) Snapshot {
	conditions := []Condition{Clear, PartlyCloudy, Cloudy, Rain}
	cond := conditions[rng.Intn(len(conditions))]

	precip := 0.0
	if cond.IsRaining() {
		precip = 1.0 + rng.Float64()*4.0
	}

	hour := now.Hour()
	return Snapshot{
		Condition:           cond,
		Temperature:         10.0 + rng.Float64()*15.0,
		ApparentTemperature: 10.0 + rng.Float64()*15.0,
		Humidity:            40.0 + rng.Float64()*40.0,
		Precipitation:       precip,
		WindSpeed:           5.0 + rng.Float64()*10.0,
		WindDirection:       rng.Float64() * 360.0,
		CloudCover:          20.0 + rng.Float64()*60.0,
		Pressure:            1000.0 + rng.Float64()*20.0,
		IsDay:               hour >= 6 && hour < 18,
		MoonPhase:           MoonPhase(now),
		Timestamp:           now.Format("2006-01-02T15:04:05"),
		Offline:             true,
	}
}

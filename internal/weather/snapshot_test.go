package weather

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestMoonPhaseKnownDates(t *testing.T) {
	tests := []struct {
		date string
		want float64 // fraction of the synodic cycle
		tol  float64
	}{
		// Full moon 2024-01-25.
		{"2024-01-25T18:00:00Z", 0.5, 0.04},
		// New moon 2024-02-09.
		{"2024-02-09T23:00:00Z", 0.0, 0.04},
	}
	for _, tt := range tests {
		when, err := time.Parse(time.RFC3339, tt.date)
		if err != nil {
			t.Fatalf("bad test date %q: %v", tt.date, err)
		}
		got := MoonPhase(when)
		diff := math.Abs(got - tt.want)
		if diff > 0.5 {
			diff = 1.0 - diff
		}
		if diff > tt.tol {
			t.Errorf("MoonPhase(%s) = %.3f, want %.3f ± %.2f", tt.date, got, tt.want, tt.tol)
		}
	}
}

func TestMoonPhaseInRange(t *testing.T) {
	when := time.Date(1980, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 400; i++ {
		p := MoonPhase(when)
		if p < 0 || p >= 1 {
			t.Fatalf("MoonPhase(%s) = %f out of [0,1)", when, p)
		}
		when = when.Add(24 * time.Hour)
	}
}

func TestSimulatedMatchesCondition(t *testing.T) {
	snap := Simulated(Thunderstorm, true)
	if snap.IsDay {
		t.Error("night flag ignored")
	}
	if snap.Precipitation <= 0 {
		t.Error("thunderstorm without precipitation")
	}
	if snap.WindSpeed < 40 {
		t.Errorf("thunderstorm wind = %.1f, expected storm-force", snap.WindSpeed)
	}

	clear := Simulated(Clear, false)
	if !clear.IsDay {
		t.Error("day flag ignored")
	}
	if clear.Precipitation != 0 {
		t.Error("clear sky with precipitation")
	}
}

func TestGenerateOfflineFollowsClock(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	noon := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	if snap := GenerateOffline(rng, noon); !snap.IsDay || !snap.Offline {
		t.Errorf("noon snapshot: IsDay=%v Offline=%v", snap.IsDay, snap.Offline)
	}
	midnight := time.Date(2026, time.June, 1, 0, 30, 0, 0, time.UTC)
	if snap := GenerateOffline(rng, midnight); snap.IsDay {
		t.Error("midnight snapshot marked as day")
	}
}

func TestUnitsSymbols(t *testing.T) {
	if got := Metric().TemperatureSymbol(); got != "°C" {
		t.Errorf("metric temperature symbol = %q", got)
	}
	if got := Imperial().TemperatureSymbol(); got != "°F" {
		t.Errorf("imperial temperature symbol = %q", got)
	}
	if got := Metric().WindSymbol(); got != "km/h" {
		t.Errorf("metric wind symbol = %q", got)
	}
	if got := Imperial().WindSymbol(); got != "mph" {
		t.Errorf("imperial wind symbol = %q", got)
	}
}

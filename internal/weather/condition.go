package weather

import (
	"fmt"
	"strings"
)

// Condition is the weather category that drives scene and animation
// selection. Categories mirror the WMO weather interpretation codes
// reported by Open-Meteo, collapsed to what the renderer distinguishes.
type Condition int

const (
	Clear Condition = iota
	PartlyCloudy
	Cloudy
	Overcast
	Fog
	Drizzle
	Rain
	FreezingRain
	RainShowers
	Snow
	SnowGrains
	SnowShowers
	Thunderstorm
	ThunderstormHail
)

var conditionNames = map[Condition]string{
	Clear:            "clear",
	PartlyCloudy:     "partly-cloudy",
	Cloudy:           "cloudy",
	Overcast:         "overcast",
	Fog:              "fog",
	Drizzle:          "drizzle",
	Rain:             "rain",
	FreezingRain:     "freezing-rain",
	RainShowers:      "rain-showers",
	Snow:             "snow",
	SnowGrains:       "snow-grains",
	SnowShowers:      "snow-showers",
	Thunderstorm:     "thunderstorm",
	ThunderstormHail: "thunderstorm-hail",
}

func (c Condition) String() string {
	if name, ok := conditionNames[c]; ok {
		return name
	}
	return "unknown"
}

// Describe returns a human-readable label for the HUD.
func (c Condition) Describe() string {
	name := strings.ReplaceAll(c.String(), "-", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseCondition resolves a CLI condition string such as "rain-showers".
func ParseCondition(s string) (Condition, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for c, name := range conditionNames {
		if name == needle {
			return c, nil
		}
	}
	return Clear, fmt.Errorf("unknown weather condition: %q (try: clear, rain, snow, thunderstorm, fog)", s)
}

// ConditionNames lists every accepted condition string, for help output.
func ConditionNames() []string {
	names := make([]string, 0, len(conditionNames))
	for c := Clear; c <= ThunderstormHail; c++ {
		names = append(names, conditionNames[c])
	}
	return names
}

// FromWMOCode maps an Open-Meteo weather_code to a Condition. Unknown codes
// fall back to Clear rather than failing: a wrong sky beats no sky.
func FromWMOCode(code int) Condition {
	switch code {
	case 0:
		return Clear
	case 1, 2:
		return PartlyCloudy
	case 3:
		return Overcast
	case 45, 48:
		return Fog
	case 51, 53, 55:
		return Drizzle
	case 56, 57, 66, 67:
		return FreezingRain
	case 61, 63, 65:
		return Rain
	case 71, 73, 75:
		return Snow
	case 77:
		return SnowGrains
	case 80, 81, 82:
		return RainShowers
	case 85, 86:
		return SnowShowers
	case 95:
		return Thunderstorm
	case 96, 99:
		return ThunderstormHail
	default:
		return Clear
	}
}

// FromMetOfficeCode maps a Met Office significant weather code to a
// Condition. The scale interleaves day and night variants of the same
// weather; both collapse to one category here. Unknown codes fall back to
// Clear, same as the WMO mapping.
func FromMetOfficeCode(code int) Condition {
	switch code {
	case 0, 1:
		return Clear
	case 2, 3:
		return PartlyCloudy
	case 5, 6:
		return Fog
	case 7:
		return Cloudy
	case 8:
		return Overcast
	case 9, 10, 13, 14:
		return RainShowers
	case 11:
		return Drizzle
	case 12, 15:
		return Rain
	case 16, 17, 18:
		return FreezingRain
	case 19, 20, 21:
		return ThunderstormHail
	case 22, 23, 25, 26:
		return SnowShowers
	case 24, 27:
		return Snow
	case 28, 29, 30:
		return Thunderstorm
	default:
		return Clear
	}
}

// Intensity grades how strongly a particle layer renders.
type Intensity int

const (
	None Intensity = iota
	Light
	Medium
	Heavy
)

func (c Condition) IsRaining() bool {
	switch c {
	case Drizzle, Rain, FreezingRain, RainShowers, Thunderstorm, ThunderstormHail:
		return true
	}
	return false
}

func (c Condition) IsSnowing() bool {
	switch c {
	case Snow, SnowGrains, SnowShowers:
		return true
	}
	return false
}

func (c Condition) IsThunderstorm() bool {
	return c == Thunderstorm || c == ThunderstormHail
}

// RainIntensity grades the rain particle layer for this condition.
func (c Condition) RainIntensity() Intensity {
	switch c {
	case Drizzle:
		return Light
	case Rain, FreezingRain:
		return Medium
	case RainShowers, Thunderstorm, ThunderstormHail:
		return Heavy
	default:
		return None
	}
}

// SnowIntensity grades the snow particle layer for this condition.
func (c Condition) SnowIntensity() Intensity {
	switch c {
	case SnowGrains:
		return Light
	case Snow:
		return Medium
	case SnowShowers:
		return Heavy
	default:
		return None
	}
}

// FogIntensity grades the fog layer. The fog condition is dense, drizzle
// carries mist, and heavy overcast gets a thin haze.
func (c Condition) FogIntensity() Intensity {
	switch c {
	case Fog:
		return Heavy
	case Drizzle:
		return Medium
	case Overcast:
		return Light
	default:
		return None
	}
}

// CloudCoverIntensity grades the scrolling cloud layer.
func (c Condition) CloudCoverIntensity() Intensity {
	switch c {
	case PartlyCloudy:
		return Light
	case Cloudy, RainShowers, SnowShowers:
		return Medium
	case Overcast, Rain, FreezingRain, Drizzle, Snow, SnowGrains,
		Thunderstorm, ThunderstormHail:
		return Heavy
	default:
		return None
	}
}

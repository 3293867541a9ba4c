package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultUnits           = "metric"
	DefaultRefreshInterval = 5 * time.Minute
)

type Config struct {
	Location  LocationConfig  `yaml:"location"`
	Units     string          `yaml:"units"`
	Display   DisplayConfig   `yaml:"display"`
	Refresh   time.Duration   `yaml:"refresh_interval"`
	Provider  string          `yaml:"provider,omitempty"`
	MetOffice MetOfficeConfig `yaml:"met_office,omitempty"`
}

// MetOfficeConfig holds the credentials for the Met Office DataHub
// provider, used when provider is "met-office".
type MetOfficeConfig struct {
	APIKey     string `yaml:"api_key,omitempty"`
	DataSource string `yaml:"data_source,omitempty"`
}

type LocationConfig struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	City      string  `yaml:"city,omitempty"`
	Country   string  `yaml:"country,omitempty"`

	// Auto asks for IP geolocation on every run, ignoring any saved
	// coordinates.
	Auto bool `yaml:"auto,omitempty"`
}

type DisplayConfig struct {
	HideHUD      bool `yaml:"hide_hud"`
	HideLocation bool `yaml:"hide_location"`
	ShowLeaves   bool `yaml:"show_leaves"`
}

// HasLocation reports whether a usable default location has been saved.
func (l LocationConfig) HasLocation() bool {
	return l.Latitude != 0 || l.Longitude != 0 || l.City != ""
}

// Label is the human-readable form shown in the HUD.
func (l LocationConfig) Label() string {
	if l.City == "" {
		return ""
	}
	if l.Country == "" {
		return l.City
	}
	return l.City + ", " + l.Country
}

func DefaultConfig() *Config {
	return &Config{
		Units:   DefaultUnits,
		Refresh: DefaultRefreshInterval,
	}
}

// DefaultPath is where Load and Save look when given an empty path:
// $XDG_CONFIG_HOME/weathr/config.yaml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "weathr", "config.yaml"), nil
}

// Load reads the config at path, filling unset fields with defaults. A
// missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Refresh <= 0 {
		cfg.Refresh = DefaultRefreshInterval
	}
	if cfg.Units != "metric" && cfg.Units != "imperial" {
		return nil, fmt.Errorf("units must be metric or imperial, got %q", cfg.Units)
	}
	switch cfg.Provider {
	case "", "open-meteo", "met-office":
	default:
		return nil, fmt.Errorf("provider must be open-meteo or met-office, got %q", cfg.Provider)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Package config defines the chart engine configuration and provides
// validation helpers.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by CRIUS_* environment variables.
type Config struct {
	Chart    ChartConfig    `toml:"chart"`
	Observer ObserverConfig `toml:"observer"`
	Horizons HorizonsConfig `toml:"horizons"`
	Watch    WatchConfig    `toml:"watch"`
	LogLevel string         `toml:"log_level"`
}

// ChartConfig selects the zodiac, house system, and body set. DateMin and
// DateMax narrow the engine's supported date window; both must be set
// together as YYYY-MM-DD, or both left empty for the built-in window.
type ChartConfig struct {
	Zodiac      string   `toml:"zodiac"`
	Ayanamsa    string   `toml:"ayanamsa"`
	HouseSystem string   `toml:"house_system"`
	Bodies      []string `toml:"bodies"`
	DateMin     string   `toml:"date_min"`
	DateMax     string   `toml:"date_max"`
}

// DateRange parses the configured date window. ok is false when the config
// leaves the engine's default window in place. The maximum is extended to
// the end of its day so the bound stays inclusive.
func (c *ChartConfig) DateRange() (min, max time.Time, ok bool, err error) {
	if c.DateMin == "" && c.DateMax == "" {
		return time.Time{}, time.Time{}, false, nil
	}
	if c.DateMin == "" || c.DateMax == "" {
		return time.Time{}, time.Time{}, false, fmt.Errorf("date_min and date_max must be set together")
	}
	min, err = time.Parse("2006-01-02", c.DateMin)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("date_min: %w", err)
	}
	max, err = time.Parse("2006-01-02", c.DateMax)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("date_max: %w", err)
	}
	max = max.Add(24*time.Hour - time.Second)
	if !min.Before(max) {
		return time.Time{}, time.Time{}, false, fmt.Errorf("date_min %s is not before date_max %s", c.DateMin, c.DateMax)
	}
	return min, max, true, nil
}

// ObserverConfig holds the geographic location houses are computed for.
// Houses are skipped entirely unless Enabled is set.
type ObserverConfig struct {
	Enabled bool    `toml:"enabled"`
	Lat     float64 `toml:"lat"`
	Lon     float64 `toml:"lon"`
}

// HorizonsConfig holds JPL Horizons client parameters.
type HorizonsConfig struct {
	BaseURL string   `toml:"base_url"`
	Timeout duration `toml:"timeout"`
}

// WatchConfig controls the periodic refresh used by watch and TUI modes.
type WatchConfig struct {
	Interval duration `toml:"interval"`
}

// duration wraps time.Duration so TOML values like "30s" parse directly.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Chart: ChartConfig{
			Zodiac:      "tropical",
			Ayanamsa:    "lahiri",
			HouseSystem: "placidus",
		},
		Horizons: HorizonsConfig{
			Timeout: duration{30 * time.Second},
		},
		Watch: WatchConfig{
			Interval: duration{time.Minute},
		},
		LogLevel: "info",
	}
}

// Validate checks ranges and enumerations. It is called after Load so a
// half-written TOML file fails loudly instead of producing a skewed chart.
func (c *Config) Validate() error {
	if c.Observer.Lat < -90 || c.Observer.Lat > 90 {
		return fmt.Errorf("observer latitude %v out of range [-90, 90]", c.Observer.Lat)
	}
	if c.Observer.Lon < -180 || c.Observer.Lon > 180 {
		return fmt.Errorf("observer longitude %v out of range [-180, 180]", c.Observer.Lon)
	}
	switch c.Chart.Zodiac {
	case "tropical", "sidereal":
	default:
		return fmt.Errorf("unknown zodiac %q", c.Chart.Zodiac)
	}
	if c.Watch.Interval.Duration <= 0 {
		return fmt.Errorf("watch interval must be positive, got %v", c.Watch.Interval.Duration)
	}
	if c.Horizons.Timeout.Duration <= 0 {
		return fmt.Errorf("horizons timeout must be positive, got %v", c.Horizons.Timeout.Duration)
	}
	if _, _, _, err := c.Chart.DateRange(); err != nil {
		return fmt.Errorf("chart date range: %w", err)
	}
	return nil
}

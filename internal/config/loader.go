package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies CRIUS_* environment variable overrides, and
// returns the final Config. An empty path skips the file and uses defaults
// plus overrides. The returned Config has NOT been validated; the caller
// should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known CRIUS_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This
// lets deployments adjust behavior without touching the TOML file.
func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Chart.Zodiac, "CRIUS_CHART_ZODIAC")
	setStr(&cfg.Chart.Ayanamsa, "CRIUS_CHART_AYANAMSA")
	setStr(&cfg.Chart.HouseSystem, "CRIUS_CHART_HOUSE_SYSTEM")
	setStringSlice(&cfg.Chart.Bodies, "CRIUS_CHART_BODIES")
	setStr(&cfg.Chart.DateMin, "CRIUS_CHART_DATE_MIN")
	setStr(&cfg.Chart.DateMax, "CRIUS_CHART_DATE_MAX")

	setBool(&cfg.Observer.Enabled, "CRIUS_OBSERVER_ENABLED")
	setFloat64(&cfg.Observer.Lat, "CRIUS_OBSERVER_LAT")
	setFloat64(&cfg.Observer.Lon, "CRIUS_OBSERVER_LON")

	setStr(&cfg.Horizons.BaseURL, "CRIUS_HORIZONS_BASE_URL")
	setDuration(&cfg.Horizons.Timeout, "CRIUS_HORIZONS_TIMEOUT")

	setDuration(&cfg.Watch.Interval, "CRIUS_WATCH_INTERVAL")

	setStr(&cfg.LogLevel, "CRIUS_LOG_LEVEL")
}

// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
		}
	}
}

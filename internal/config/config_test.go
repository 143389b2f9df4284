package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.Chart.Zodiac != "tropical" {
		t.Errorf("default zodiac = %q, want tropical", cfg.Chart.Zodiac)
	}
	if cfg.Chart.HouseSystem != "placidus" {
		t.Errorf("default house system = %q, want placidus", cfg.Chart.HouseSystem)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crius.toml")
	content := `
log_level = "debug"

[chart]
zodiac = "sidereal"
ayanamsa = "fagan_bradley"
bodies = ["sun", "moon", "chiron"]

[observer]
enabled = true
lat = 51.4779
lon = -0.0015

[watch]
interval = "30s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Chart.Zodiac != "sidereal" {
		t.Errorf("zodiac = %q, want sidereal", cfg.Chart.Zodiac)
	}
	if len(cfg.Chart.Bodies) != 3 {
		t.Errorf("bodies = %v, want 3 entries", cfg.Chart.Bodies)
	}
	if !cfg.Observer.Enabled || cfg.Observer.Lat != 51.4779 {
		t.Errorf("observer not loaded: %+v", cfg.Observer)
	}
	if cfg.Watch.Interval.Duration != 30*time.Second {
		t.Errorf("interval = %v, want 30s", cfg.Watch.Interval.Duration)
	}
	// Untouched sections keep their defaults.
	if cfg.Chart.HouseSystem != "placidus" {
		t.Errorf("house system = %q, want default placidus", cfg.Chart.HouseSystem)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing config file should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CRIUS_CHART_ZODIAC", "sidereal")
	t.Setenv("CRIUS_OBSERVER_LAT", "-33.8688")
	t.Setenv("CRIUS_OBSERVER_ENABLED", "true")
	t.Setenv("CRIUS_CHART_BODIES", "sun, moon ,north_node")
	t.Setenv("CRIUS_WATCH_INTERVAL", "5m")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Chart.Zodiac != "sidereal" {
		t.Errorf("zodiac = %q, want sidereal", cfg.Chart.Zodiac)
	}
	if cfg.Observer.Lat != -33.8688 || !cfg.Observer.Enabled {
		t.Errorf("observer override missed: %+v", cfg.Observer)
	}
	want := []string{"sun", "moon", "north_node"}
	if len(cfg.Chart.Bodies) != len(want) {
		t.Fatalf("bodies = %v, want %v", cfg.Chart.Bodies, want)
	}
	for i := range want {
		if cfg.Chart.Bodies[i] != want[i] {
			t.Errorf("bodies[%d] = %q, want %q", i, cfg.Chart.Bodies[i], want[i])
		}
	}
	if cfg.Watch.Interval.Duration != 5*time.Minute {
		t.Errorf("interval = %v, want 5m", cfg.Watch.Interval.Duration)
	}
}

func TestDateRange(t *testing.T) {
	var chart ChartConfig
	if _, _, ok, err := chart.DateRange(); ok || err != nil {
		t.Errorf("empty config: ok=%v err=%v, want default window", ok, err)
	}

	chart.DateMin = "1800-01-01"
	chart.DateMax = "2100-12-31"
	min, max, ok, err := chart.DateRange()
	if err != nil || !ok {
		t.Fatalf("DateRange failed: ok=%v err=%v", ok, err)
	}
	if min.Year() != 1800 {
		t.Errorf("min = %v, want year 1800", min)
	}
	// Maximum bound is inclusive of its whole day.
	endOfDay := time.Date(2100, 12, 31, 23, 59, 59, 0, time.UTC)
	if !max.Equal(endOfDay) {
		t.Errorf("max = %v, want %v", max, endOfDay)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"lat too high", func(c *Config) { c.Observer.Lat = 91 }},
		{"lon too low", func(c *Config) { c.Observer.Lon = -181 }},
		{"bad zodiac", func(c *Config) { c.Chart.Zodiac = "draconic" }},
		{"zero interval", func(c *Config) { c.Watch.Interval.Duration = 0 }},
		{"date min without max", func(c *Config) { c.Chart.DateMin = "1800-01-01" }},
		{"malformed date", func(c *Config) {
			c.Chart.DateMin = "1800-01-01"
			c.Chart.DateMax = "not-a-date"
		}},
		{"inverted window", func(c *Config) {
			c.Chart.DateMin = "2100-01-01"
			c.Chart.DateMax = "1800-01-01"
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

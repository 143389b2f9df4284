// Command crius-jpl computes celestial body positions and house cusps by
// reconciling the JPL Horizons ephemeris with an analytic fallback source.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/criusastro/crius-jpl/internal/analytic"
	"github.com/criusastro/crius-jpl/internal/config"
	"github.com/criusastro/crius-jpl/internal/ephem"
	"github.com/criusastro/crius-jpl/internal/jpl"
	"github.com/criusastro/crius-jpl/internal/logging"
	"github.com/criusastro/crius-jpl/internal/state"
	"github.com/criusastro/crius-jpl/internal/ui"
)

// CLI flags
var (
	configPath  string
	timeStr     string
	latFlag     float64
	lonFlag     float64
	bodiesFlag  string
	houseSystem string
	zodiacFlag  string
	ayanamsa    string
	jsonPath    string
	summaryMode bool
	watchFlag   time.Duration
	logLevel    string
	horizonsURL string
)

func main() {
	flag.StringVar(&configPath, "config", "", "Path to TOML config file")
	flag.StringVar(&timeStr, "time", "", "Chart instant, RFC3339 (default: now)")
	flag.Float64Var(&latFlag, "lat", 0, "Observer latitude in degrees (enables houses with -lon)")
	flag.Float64Var(&lonFlag, "lon", 0, "Observer longitude in degrees, east positive")
	flag.StringVar(&bodiesFlag, "bodies", "", "Comma-separated body list (default: all supported)")
	flag.StringVar(&houseSystem, "house-system", "", "House system (placidus, koch, whole_sign, equal, regiomontanus, campanus, alcabitius, morinus)")
	flag.StringVar(&zodiacFlag, "zodiac", "", "Zodiac type (tropical, sidereal)")
	flag.StringVar(&ayanamsa, "ayanamsa", "", "Sidereal ayanamsa (lahiri, fagan_bradley, raman, krishnamurti)")
	flag.StringVar(&jsonPath, "json", "", "Export chart JSON to file (use - for stdout)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.DurationVar(&watchFlag, "watch", 0, "Repeat calculation at interval (e.g., 30s)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&horizonsURL, "horizons-url", "", "Override the Horizons API endpoint")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	instant := time.Now().UTC()
	explicitTime := timeStr != ""
	if explicitTime {
		instant, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -time: %v\n", err)
			os.Exit(1)
		}
		instant = instant.UTC()
	}

	settings := ephem.Settings{
		ZodiacType:     ephem.ParseZodiacType(cfg.Chart.Zodiac),
		Ayanamsa:       ephem.ParseAyanamsa(cfg.Chart.Ayanamsa),
		HouseSystem:    ephem.ParseHouseSystem(cfg.Chart.HouseSystem),
		IncludeObjects: cfg.Chart.Bodies,
	}
	if len(settings.IncludeObjects) == 0 {
		settings.IncludeObjects = ephem.DefaultBodies
	}

	var location *ephem.GeoLocation
	if cfg.Observer.Enabled {
		location = &ephem.GeoLocation{LatDeg: cfg.Observer.Lat, LonDeg: cfg.Observer.Lon}
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// The source pair is built once and shared; a failed build surfaces
	// here as a load/download error instead of per-body omissions later.
	shared := ephem.NewSharedSources(func() (ephem.Sources, error) {
		opts := []jpl.Option{jpl.WithTimeout(cfg.Horizons.Timeout.Duration)}
		if cfg.Horizons.BaseURL != "" {
			opts = append(opts, jpl.WithBaseURL(cfg.Horizons.BaseURL))
		}
		primary := jpl.NewSource(opts...)
		if err := primary.Check(); err != nil {
			return ephem.Sources{}, err
		}
		return ephem.Sources{Primary: primary, Secondary: analytic.NewSource()}, nil
	})

	sources, err := shared.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error acquiring ephemeris sources: %v\n", err)
		os.Exit(1)
	}

	engineOpts := []ephem.Option{ephem.WithLogger(logger.WithPrefix("engine"))}
	if min, max, ok, _ := cfg.Chart.DateRange(); ok {
		engineOpts = append(engineOpts, ephem.WithDateRange(min, max))
	}
	engine := ephem.NewEngine(sources.Primary, sources.Secondary, engineOpts...)

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = cfg.Watch.Interval.Duration
	if watchFlag > 0 {
		stateCfg.RefreshInterval = watchFlag
	}
	stateMgr := state.NewManager(stateCfg)

	// Headless when output flags or an explicit instant are given, or when
	// stdout is not a terminal.
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	headless := summaryMode || jsonPath != "" || explicitTime || !isTTY
	if headless {
		runHeadless(ctx, engine, instant, explicitTime, location, settings)
		return
	}

	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go runCalcLoop(ctx, engine, stateMgr, location, settings, p, logger)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// applyFlagOverrides writes explicitly set CLI flags over the loaded config.
func applyFlagOverrides(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			cfg.Observer.Lat = latFlag
			cfg.Observer.Enabled = true
		case "lon":
			cfg.Observer.Lon = lonFlag
			cfg.Observer.Enabled = true
		case "bodies":
			cfg.Chart.Bodies = splitList(bodiesFlag)
		case "house-system":
			cfg.Chart.HouseSystem = houseSystem
		case "zodiac":
			cfg.Chart.Zodiac = zodiacFlag
		case "ayanamsa":
			cfg.Chart.Ayanamsa = ayanamsa
		case "log-level":
			cfg.LogLevel = logLevel
		case "horizons-url":
			cfg.Horizons.BaseURL = horizonsURL
		case "watch":
			cfg.Watch.Interval.Duration = watchFlag
		}
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// runCalcLoop drives periodic chart refreshes for the TUI.
func runCalcLoop(ctx context.Context, engine *ephem.Engine, stateMgr *state.Manager, location *ephem.GeoLocation, settings ephem.Settings, p *tea.Program, logger *logging.Logger) {
	doCalc(engine, stateMgr, location, settings, p, logger)

	ticker := time.NewTicker(stateMgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Calc loop shutting down")
			return
		case <-ticker.C:
			doCalc(engine, stateMgr, location, settings, p, logger)
		}
	}
}

func doCalc(engine *ephem.Engine, stateMgr *state.Manager, location *ephem.GeoLocation, settings ephem.Settings, p *tea.Program, logger *logging.Logger) {
	instant := time.Now().UTC()
	start := time.Now()

	positions, err := engine.Calc(instant, location, settings)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error("Calc failed: %v", err)
		stateMgr.Update(instant, nil, elapsed, err)
		p.Send(ui.ErrorMsg{Error: err})
		return
	}

	logger.Debug("Calc complete: %d bodies in %v", len(positions.Planets), elapsed)
	stateMgr.Update(instant, &positions, elapsed, nil)
	p.Send(ui.DataUpdateMsg{Snapshot: stateMgr.Snapshot()})
}

// runHeadless handles all headless modes without starting the TUI.
func runHeadless(ctx context.Context, engine *ephem.Engine, instant time.Time, fixedInstant bool, location *ephem.GeoLocation, settings ephem.Settings) {
	outputOnce := func(t time.Time) error {
		positions, err := engine.Calc(t, location, settings)
		if err != nil {
			return err
		}

		if jsonPath != "" {
			export := ephem.ExportChart(t, location, positions)
			if jsonPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(jsonPath)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode || jsonPath == "" {
			ephem.WriteSummaryTable(os.Stdout, t, positions)
		}
		return nil
	}

	// Single run
	if watchFlag == 0 {
		if err := outputOnce(instant); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval. A fixed -time stays fixed; otherwise
	// each refresh uses the current instant.
	if err := outputOnce(instant); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchFlag)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t := time.Now().UTC()
			if fixedInstant {
				t = instant
			}
			fmt.Println()
			if err := outputOnce(t); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

package ephem

import (
	"sync"
	"time"

	"github.com/criusastro/crius-jpl/internal/astro"
	"github.com/criusastro/crius-jpl/internal/logging"
)

// Engine resolves body positions across the two ephemeris sources. A single
// Engine is safe for concurrent callers: per-call state is local, and the
// lazily-populated body-handle cache is guarded by a mutex. The cache grows
// to at most the fixed known-body set and is never invalidated.
type Engine struct {
	primary   PrimarySource
	secondary SecondarySource
	log       *logging.Logger

	minDate time.Time
	maxDate time.Time

	mu      sync.Mutex
	handles map[Body]BodyHandle
}

// Option configures an Engine.
type Option func(*Engine)

// WithDateRange overrides the supported date window (inclusive bounds).
func WithDateRange(min, max time.Time) Option {
	return func(e *Engine) {
		e.minDate = min
		e.maxDate = max
	}
}

// WithLogger sets the engine logger. Defaults to a discarding logger.
func WithLogger(log *logging.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine creates an engine over an already-constructed source pair.
func NewEngine(primary PrimarySource, secondary SecondarySource, opts ...Option) *Engine {
	e := &Engine{
		primary:   primary,
		secondary: secondary,
		log:       logging.Discard(),
		minDate:   DefaultMinDate,
		maxDate:   DefaultMaxDate,
		handles:   make(map[Body]BodyHandle),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calc computes positions for the requested bodies at a UTC instant, plus
// house cusps and angles when a location is supplied.
//
// The date-range check is the only per-call failure that propagates; any
// single body that cannot be computed is logged and omitted from the
// result, so callers must treat a missing key, not an error, as the
// per-body failure signal.
func (e *Engine) Calc(t time.Time, location *GeoLocation, settings Settings) (LayerPositions, error) {
	if err := checkDateRange(t, e.minDate, e.maxDate); err != nil {
		return LayerPositions{}, err
	}

	// Time representations both backends need, converted once per call.
	utc := t.UTC()
	jd := astro.JulianDay(utc)

	result := LayerPositions{
		Planets: make(map[string]PlanetPosition, len(settings.IncludeObjects)),
	}

	for _, id := range settings.IncludeObjects {
		body := ParseBody(id)

		pos, ok := e.calcBody(body, utc, jd, settings)
		if !ok {
			if body != BodyUnknown {
				e.log.Warn("skipping %s: computation failed", body)
			}
			continue
		}
		result.Planets[body.String()] = pos
	}

	if location != nil {
		result.Houses = e.calcHouses(jd, *location, settings)
	}

	return result, nil
}

// calcBody dispatches a single body to its strategy. A false return means
// the body is omitted; it never aborts the call.
func (e *Engine) calcBody(body Body, t time.Time, jd float64, settings Settings) (PlanetPosition, bool) {
	switch strategyFor(body) {
	case strategyPrimary:
		handle, err := e.bodyHandle(body)
		if err != nil {
			e.log.Debug("resolve %s: %v", body, err)
			return PlanetPosition{}, false
		}
		pos, err := estimatePosition(e.primary, handle, t)
		if err != nil {
			e.log.Debug("observe %s: %v", body, err)
			return PlanetPosition{}, false
		}
		return pos, true

	case strategyTrueNode:
		return e.calcNorthNode(jd)

	case strategyOpposition:
		// The opposition point is derived from a freshly computed north
		// node; the computation is time-dependent, so a value from another
		// call is never reused.
		north, ok := e.calcNorthNode(jd)
		if !ok {
			return PlanetPosition{}, false
		}
		return PlanetPosition{
			Lon:        astro.Normalize360(north.Lon + 180),
			Lat:        0,
			SpeedLon:   north.SpeedLon,
			Retrograde: north.Retrograde,
		}, true

	case strategySecondaryBody:
		// Hybrid path: the primary source does not model this body. The
		// sidereal offset applies to this one lookup only.
		flags := CalcFlags{}
		if settings.ZodiacType == ZodiacSidereal {
			flags.Sidereal = true
			flags.Ayanamsa = settings.Ayanamsa
		}
		pos, err := e.secondary.BodyPosition(jd, SecondaryChiron, flags)
		if err != nil {
			e.log.Debug("secondary %s: %v", body, err)
			return PlanetPosition{}, false
		}
		return PlanetPosition{
			Lon:        astro.Normalize360(pos.LonDeg),
			Lat:        pos.LatDeg,
			SpeedLon:   pos.SpeedLon,
			Retrograde: pos.SpeedLon < 0,
		}, true

	default:
		return PlanetPosition{}, false
	}
}

// calcNorthNode runs the secondary source's true-node algorithm. Node
// latitude is zero by construction.
func (e *Engine) calcNorthNode(jd float64) (PlanetPosition, bool) {
	pos, err := e.secondary.BodyPosition(jd, SecondaryTrueNode, CalcFlags{})
	if err != nil {
		e.log.Debug("true node: %v", err)
		return PlanetPosition{}, false
	}
	return PlanetPosition{
		Lon:        astro.Normalize360(pos.LonDeg),
		Lat:        0,
		SpeedLon:   pos.SpeedLon,
		Retrograde: pos.SpeedLon < 0,
	}, true
}

// calcHouses computes and normalizes house output. Failures degrade to an
// empty structure; houses are best-effort.
func (e *Engine) calcHouses(jd float64, location GeoLocation, settings Settings) *HousePositions {
	cusps, angles, err := e.secondary.Houses(jd, location.LatDeg, location.LonDeg, settings.HouseSystem.Token())
	if err != nil {
		e.log.Warn("houses (%s): %v", settings.HouseSystem, err)
		return normalizeHouses(settings.HouseSystem, nil, nil)
	}
	return normalizeHouses(settings.HouseSystem, cusps, angles)
}

// bodyHandle returns the cached primary-source handle for a body,
// resolving it on first use.
func (e *Engine) bodyHandle(body Body) (BodyHandle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if h, ok := e.handles[body]; ok {
		return h, nil
	}

	h, err := e.primary.ResolveBody(body.String())
	if err != nil {
		return nil, err
	}
	e.handles[body] = h
	return h, nil
}

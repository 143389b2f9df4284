// Package jpl implements the primary position source against the JPL
// Horizons API. It serves geocentric ecliptic positions for the major
// bodies; minor bodies, nodes and houses belong to the secondary source.
package jpl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/criusastro/crius-jpl/internal/ephem"
)

const (
	// HorizonsAPIURL is the JPL Horizons JSON API endpoint.
	HorizonsAPIURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

	// RequestTimeout is the HTTP request timeout.
	RequestTimeout = 30 * time.Second

	// positionCacheTTL is how long observed positions stay cached. Body
	// positions for a fixed instant never change; the TTL only bounds
	// memory across long-running processes.
	positionCacheTTL = 15 * time.Minute
)

// horizonsCommands maps canonical body identifiers to Horizons COMMAND
// values. The outer planets resolve to barycenters, matching what the
// underlying DE ephemeris models.
var horizonsCommands = map[string]string{
	"sun":     "10",
	"moon":    "301",
	"mercury": "199",
	"venus":   "299",
	"mars":    "499",
	"jupiter": "5",
	"saturn":  "6",
	"uranus":  "7",
	"neptune": "8",
	"pluto":   "9",
}

// handle is the opaque body handle this source hands to the engine.
type handle struct {
	id      string
	command string
}

// Source queries JPL Horizons for body positions.
type Source struct {
	client  *http.Client
	baseURL string

	mu    sync.RWMutex
	cache map[cacheKey]cachedPosition
}

type cacheKey struct {
	command string
	unix    int64
}

type cachedPosition struct {
	pos       ephem.EclipticPosition
	fetchedAt time.Time
}

// Option configures a Source.
type Option func(*Source)

// WithBaseURL overrides the Horizons endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(s *Source) { s.baseURL = u }
}

// WithTimeout overrides the HTTP request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) { s.client.Timeout = d }
}

// NewSource creates a new Horizons API client.
func NewSource(opts ...Option) *Source {
	s := &Source{
		client:  &http.Client{Timeout: RequestTimeout},
		baseURL: HorizonsAPIURL,
		cache:   make(map[cacheKey]cachedPosition),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements ephem.PrimarySource.
func (s *Source) Name() string { return "horizons" }

// ResolveBody implements ephem.PrimarySource.
func (s *Source) ResolveBody(name string) (ephem.BodyHandle, error) {
	cmd, ok := horizonsCommands[name]
	if !ok {
		return nil, fmt.Errorf("horizons does not model %q", name)
	}
	return handle{id: name, command: cmd}, nil
}

// Observe implements ephem.PrimarySource. Positions are cached per
// (body, instant); the engine observes each body twice per call for its
// velocity estimate, and repeated calls for the same chart are common.
func (s *Source) Observe(body ephem.BodyHandle, t time.Time) (ephem.EclipticPosition, error) {
	h, ok := body.(handle)
	if !ok {
		return ephem.EclipticPosition{}, fmt.Errorf("foreign body handle %T", body)
	}

	key := cacheKey{command: h.command, unix: t.UTC().Unix()}

	s.mu.RLock()
	cached, hit := s.cache[key]
	s.mu.RUnlock()
	if hit && time.Since(cached.fetchedAt) < positionCacheTTL {
		return cached.pos, nil
	}

	pos, err := s.queryPosition(h, t)
	if err != nil {
		return ephem.EclipticPosition{}, err
	}

	s.mu.Lock()
	s.cache[key] = cachedPosition{pos: pos, fetchedAt: time.Now()}
	s.mu.Unlock()

	return pos, nil
}

// Check performs a minimal query so construction-time failures surface as
// the distinct load/download error kinds instead of a per-body omission.
func (s *Source) Check() error {
	h, _ := s.ResolveBody("sun")
	if _, err := s.Observe(h, time.Now().UTC().Truncate(time.Minute)); err != nil {
		if strings.Contains(err.Error(), "request failed") {
			return &ephem.DownloadError{Source: "horizons", Err: err}
		}
		return &ephem.LoadError{Source: "horizons", Err: err}
	}
	return nil
}

// queryPosition requests a single observer-table point.
// Quantities: 31 = observer ecliptic lon/lat, 20 = range and range rate.
func (s *Source) queryPosition(h handle, t time.Time) (ephem.EclipticPosition, error) {
	// Values must be quoted with single quotes.
	params := url.Values{}
	params.Set("format", "json")
	params.Set("COMMAND", fmt.Sprintf("'%s'", h.command))
	params.Set("OBJ_DATA", "NO")
	params.Set("MAKE_EPHEM", "YES")
	params.Set("EPHEM_TYPE", "OBSERVER")
	params.Set("CENTER", "'500@399'") // geocentric
	params.Set("QUANTITIES", "'31,20'")
	params.Set("START_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(t)))
	params.Set("STOP_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(t.Add(time.Minute))))
	params.Set("STEP_SIZE", "'1 m'")

	reqURL := s.baseURL + "?" + params.Encode()

	resp, err := s.client.Get(reqURL)
	if err != nil {
		return ephem.EclipticPosition{}, fmt.Errorf("horizons request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return ephem.EclipticPosition{}, fmt.Errorf("horizons returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ephem.EclipticPosition{}, fmt.Errorf("failed to read response: %w", err)
	}

	points, err := parseObserverResponse(body)
	if err != nil {
		return ephem.EclipticPosition{}, err
	}
	if len(points) == 0 {
		return ephem.EclipticPosition{}, fmt.Errorf("no data returned for %s", h.id)
	}
	return points[0], nil
}

// horizonsResponse represents the JSON API envelope.
type horizonsResponse struct {
	Signature struct {
		Version string `json:"version"`
		Source  string `json:"source"`
	} `json:"signature"`
	Result string `json:"result"`
}

// parseObserverResponse parses the Horizons JSON response; the ephemeris
// itself is a text table inside the result field.
func parseObserverResponse(body []byte) ([]ephem.EclipticPosition, error) {
	var resp horizonsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return parseObserverTable(resp.Result)
}

// parseObserverTable extracts positions from the $$SOE/$$EOE data section.
func parseObserverTable(result string) ([]ephem.EclipticPosition, error) {
	soeIdx := strings.Index(result, "$$SOE")
	eoeIdx := strings.Index(result, "$$EOE")
	if soeIdx == -1 || eoeIdx == -1 || soeIdx >= eoeIdx {
		return nil, fmt.Errorf("could not find ephemeris data markers")
	}

	var points []ephem.EclipticPosition
	for _, line := range strings.Split(result[soeIdx+5:eoeIdx], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		point, err := parseObserverLine(line)
		if err != nil {
			continue // skip unparseable lines
		}
		points = append(points, point)
	}
	return points, nil
}

// parseObserverLine parses a single data line.
// Format for QUANTITIES='31,20':
//
//	2024-Jan-01 12:00 *   280.123456  -0.000123  0.98330567  0.0123456
//
// Fields: date, time, optional flags, ObsEcLon, ObsEcLat, delta, deldot.
// Flag fields (*, Cm, Nm, ...) are non-numeric and skipped.
func parseObserverLine(line string) (ephem.EclipticPosition, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return ephem.EclipticPosition{}, fmt.Errorf("insufficient fields: %d", len(fields))
	}

	var values []float64
	for i := 2; i < len(fields); i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			continue
		}
		values = append(values, v)
		if len(values) == 3 {
			break
		}
	}

	if len(values) < 3 {
		return ephem.EclipticPosition{}, fmt.Errorf("could not find lon/lat/delta values")
	}

	return ephem.EclipticPosition{
		LonDeg:   values[0],
		LatDeg:   values[1],
		Distance: values[2],
	}, nil
}

// formatHorizonsTime formats a time for the Horizons API.
func formatHorizonsTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}

// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/criusastro/crius-jpl/internal/astro"
	"github.com/criusastro/crius-jpl/internal/ephem"
)

// EventType represents the type of chart change event.
type EventType string

const (
	// EventIngress fires when a body crosses into a new sign.
	EventIngress EventType = "INGRESS"
	// EventRetrograde fires when a body's motion turns retrograde.
	EventRetrograde EventType = "RETROGRADE"
	// EventDirect fires when a body's motion turns direct.
	EventDirect EventType = "DIRECT"
)

// Event represents a change detected between two chart refreshes.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Body      string    `json:"body"`
	OldSign   string    `json:"old_sign,omitempty"`
	NewSign   string    `json:"new_sign,omitempty"`
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	current      *ephem.LayerPositions
	instant      time.Time
	lastCalc     time.Time
	lastError    error
	calcDuration time.Duration

	// Previous planet positions for event detection
	prevPlanets map[string]ephem.PlanetPosition

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Configuration
	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:       50,
		RefreshInterval: time.Minute,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
		prevPlanets:     make(map[string]ephem.PlanetPosition),
	}
}

// Update atomically records a chart refresh. A nil positions value keeps the
// previous chart and only records the error.
func (m *Manager) Update(instant time.Time, positions *ephem.LayerPositions, calcDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCalc = time.Now()
	m.lastError = err
	m.calcDuration = calcDuration

	if positions == nil {
		return
	}

	// Detect events before replacing current state
	m.detectEvents(instant, positions)

	m.current = positions
	m.instant = instant

	m.prevPlanets = make(map[string]ephem.PlanetPosition, len(positions.Planets))
	for name, pos := range positions.Planets {
		m.prevPlanets[name] = pos
	}
}

// detectEvents compares new planet positions with the previous refresh and
// generates ingress and station events. Bodies appearing for the first time
// produce nothing; there is no prior state to compare against.
func (m *Manager) detectEvents(instant time.Time, positions *ephem.LayerPositions) {
	for name, pos := range positions.Planets {
		prev, wasPrev := m.prevPlanets[name]
		if !wasPrev {
			continue
		}

		oldSign := astro.SignName(prev.Lon)
		newSign := astro.SignName(pos.Lon)
		if oldSign != newSign {
			m.addEvent(Event{
				Type:      EventIngress,
				Timestamp: instant,
				Body:      name,
				OldSign:   oldSign,
				NewSign:   newSign,
			})
		}

		if prev.Retrograde != pos.Retrograde {
			typ := EventDirect
			if pos.Retrograde {
				typ = EventRetrograde
			}
			m.addEvent(Event{
				Type:      typ,
				Timestamp: instant,
				Body:      name,
			})
		}
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Positions    *ephem.LayerPositions
	Instant      time.Time
	LastCalc     time.Time
	LastError    error
	CalcDuration time.Duration
	Events       []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Positions:    m.current,
		Instant:      m.instant,
		LastCalc:     m.lastCalc,
		LastError:    m.lastError,
		CalcDuration: m.calcDuration,
		Events:       m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true if at least one chart has been computed.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}

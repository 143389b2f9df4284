// Package ephem implements the position-resolution engine: it decides which
// ephemeris source computes each requested body, derives angular velocity,
// synthesizes derived points, and merges house output into one result.
package ephem

import "time"

// BodyHandle is an opaque reference to a body inside a primary source.
// Handles are resolved once per body and cached by the engine; a handle is
// only meaningful to the source that produced it.
type BodyHandle interface{}

// EclipticPosition is a geocentric astrometric position in the
// ecliptic-of-date frame.
type EclipticPosition struct {
	LonDeg   float64 // ecliptic longitude, degrees
	LatDeg   float64 // ecliptic latitude, degrees
	Distance float64 // distance in AU
}

// PrimarySource is the high-precision backend used for the major bodies.
// It has no notion of house systems or sidereal zodiacs; its output is
// always effectively tropical.
type PrimarySource interface {
	// Name returns the source name for display/logging.
	Name() string

	// ResolveBody maps a canonical body identifier (e.g. "jupiter") to an
	// opaque handle, or fails if the source does not model the body.
	ResolveBody(name string) (BodyHandle, error)

	// Observe returns the geocentric ecliptic position of a body at t.
	Observe(body BodyHandle, t time.Time) (EclipticPosition, error)
}

// SecondaryBody identifies the calculations only the secondary source can
// perform for the engine.
type SecondaryBody int

const (
	// SecondaryTrueNode is the true (osculating) lunar ascending node.
	SecondaryTrueNode SecondaryBody = iota
	// SecondaryChiron is the minor body 2060 Chiron.
	SecondaryChiron
)

// String returns the body name.
func (b SecondaryBody) String() string {
	switch b {
	case SecondaryTrueNode:
		return "true_node"
	case SecondaryChiron:
		return "chiron"
	default:
		return "unknown"
	}
}

// CalcFlags modify a single secondary-source body calculation. The sidereal
// offset applies only to the one lookup carrying the flag; it must never
// leak into bodies computed by the primary source.
type CalcFlags struct {
	Sidereal bool
	Ayanamsa Ayanamsa
}

// SecondaryPosition is a secondary-source body result. Unlike the primary
// source, the secondary computes longitudinal speed directly.
type SecondaryPosition struct {
	LonDeg   float64
	LatDeg   float64
	SpeedLon float64 // degrees/day, signed
}

// SecondarySource is the backend used for bodies the primary source does
// not model, and for house-system computation.
type SecondarySource interface {
	// Name returns the source name for display/logging.
	Name() string

	// BodyPosition computes a body at a continuous Julian Day.
	BodyPosition(jd float64, body SecondaryBody, flags CalcFlags) (SecondaryPosition, error)

	// Houses returns raw house cusps and angles for a location and time.
	// The cusp slice is either 12 entries (houses 1-12 at indices 0-11) or
	// 13 entries (houses 1-12 at indices 1-12, index 0 unused). The angle
	// slice carries at least [asc, mc].
	Houses(jd float64, latDeg, lonDeg float64, system byte) (cusps, angles []float64, err error)
}

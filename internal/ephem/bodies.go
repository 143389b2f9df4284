package ephem

import "strings"

// Body is a closed enumeration of the celestial points the engine knows how
// to resolve. Unknown identifiers parse to BodyUnknown and are skipped
// silently; per-body lookups are best-effort.
type Body int

const (
	BodyUnknown Body = iota
	BodySun
	BodyMoon
	BodyMercury
	BodyVenus
	BodyMars
	BodyJupiter
	BodySaturn
	BodyUranus
	BodyNeptune
	BodyPluto
	BodyNorthNode
	BodySouthNode
	BodyChiron
)

// bodyNames maps bodies to their canonical identifiers.
var bodyNames = map[Body]string{
	BodySun:       "sun",
	BodyMoon:      "moon",
	BodyMercury:   "mercury",
	BodyVenus:     "venus",
	BodyMars:      "mars",
	BodyJupiter:   "jupiter",
	BodySaturn:    "saturn",
	BodyUranus:    "uranus",
	BodyNeptune:   "neptune",
	BodyPluto:     "pluto",
	BodyNorthNode: "north_node",
	BodySouthNode: "south_node",
	BodyChiron:    "chiron",
}

var bodiesByName = func() map[string]Body {
	m := make(map[string]Body, len(bodyNames))
	for b, name := range bodyNames {
		m[name] = b
	}
	return m
}()

// String returns the canonical identifier, e.g. "north_node".
func (b Body) String() string {
	if name, ok := bodyNames[b]; ok {
		return name
	}
	return "unknown"
}

// ParseBody parses a case-insensitive body identifier.
func ParseBody(s string) Body {
	if b, ok := bodiesByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return b
	}
	return BodyUnknown
}

// DefaultBodies is the body set used when a caller requests no explicit
// include list: the ten major bodies plus both lunar nodes and Chiron.
var DefaultBodies = []string{
	"sun", "moon", "mercury", "venus", "mars",
	"jupiter", "saturn", "uranus", "neptune", "pluto",
	"north_node", "south_node", "chiron",
}

// strategy selects how a body is computed.
type strategy int

const (
	// strategySkip drops the body from the result without error.
	strategySkip strategy = iota
	// strategyPrimary observes the body via the primary source and
	// estimates velocity by finite difference.
	strategyPrimary
	// strategyTrueNode runs the secondary source's osculating-node
	// algorithm, which yields longitude and speed directly.
	strategyTrueNode
	// strategyOpposition derives the body from a freshly computed north
	// node by adding 180° to its longitude.
	strategyOpposition
	// strategySecondaryBody computes the body directly via the secondary
	// source, honoring the sidereal settings for that one lookup.
	strategySecondaryBody
)

// strategyFor returns the computation strategy for a body. The dispatch is
// exhaustive over the enumeration; anything unlisted is skipped.
func strategyFor(b Body) strategy {
	switch b {
	case BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars,
		BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto:
		return strategyPrimary
	case BodyNorthNode:
		return strategyTrueNode
	case BodySouthNode:
		return strategyOpposition
	case BodyChiron:
		return strategySecondaryBody
	default:
		return strategySkip
	}
}

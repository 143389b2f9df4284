package ephem

import (
	"time"

	"github.com/criusastro/crius-jpl/internal/astro"
)

// velocityStep is the fixed forward step for finite-difference speed
// estimation. One hour trades a small truncation error for avoiding a
// second, more expensive analytic velocity computation.
const velocityStep = time.Hour

// estimatePosition observes a primary-source body at t and t+1h and
// returns the position with the finite-difference longitudinal speed in
// degrees/day. The signed delta handles bodies crossing the 0°/360° seam.
func estimatePosition(src PrimarySource, body BodyHandle, t time.Time) (PlanetPosition, error) {
	p0, err := src.Observe(body, t)
	if err != nil {
		return PlanetPosition{}, err
	}

	p1, err := src.Observe(body, t.Add(velocityStep))
	if err != nil {
		return PlanetPosition{}, err
	}

	// Hourly difference scaled to degrees/day.
	speed := astro.SignedDelta(p0.LonDeg, p1.LonDeg) * 24

	return PlanetPosition{
		Lon:        astro.Normalize360(p0.LonDeg),
		Lat:        p0.LatDeg,
		SpeedLon:   speed,
		Retrograde: speed < 0,
	}, nil
}

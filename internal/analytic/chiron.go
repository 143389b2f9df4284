package analytic

import (
	"math"

	"github.com/criusastro/crius-jpl/internal/astro"
	"github.com/criusastro/crius-jpl/internal/ephem"
)

// chironElements are osculating heliocentric elements for 2060 Chiron
// (JPL SBDB solution, epoch 2024-Oct-17). Kepler propagation from a single
// osculation epoch drifts slowly under planetary perturbations; within a
// few decades of the epoch the longitude stays chart-grade.
var chironElements = keplerElements{
	epochJD:  2460600.5,
	a:        13.690,    // semi-major axis, AU
	e:        0.3790,    // eccentricity
	inclDeg:  6.930,     // inclination to ecliptic
	nodeDeg:  209.290,   // longitude of ascending node
	periDeg:  339.640,   // argument of perihelion
	meanAnom: 203.490,   // mean anomaly at epoch
}

// keplerElements describe a heliocentric Keplerian orbit at an epoch.
type keplerElements struct {
	epochJD  float64
	a        float64
	e        float64
	inclDeg  float64
	nodeDeg  float64
	periDeg  float64
	meanAnom float64
}

// gaussK is the Gaussian gravitational constant expressed as the mean
// motion of a 1 AU circular orbit, degrees per day.
const gaussK = 0.9856076686

// chironSpeedStepDays is the finite-difference step for Chiron's
// longitudinal speed, in days.
const chironSpeedStepDays = 1.0 / 24

// solveKepler solves E - e*sin(E) = M for the eccentric anomaly by
// Newton iteration. Inputs and output are radians. Convergence is fast
// for e well below 1.
func solveKepler(M, e float64) float64 {
	E := M
	if e > 0.8 {
		E = math.Pi
	}
	for i := 0; i < 20; i++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-12 {
			break
		}
	}
	return E
}

// heliocentric propagates the orbit to jd and returns heliocentric
// ecliptic rectangular coordinates in AU.
func (el keplerElements) heliocentric(jd float64) (x, y, z float64) {
	n := gaussK / (el.a * math.Sqrt(el.a)) // mean motion, deg/day
	M := astro.Normalize360(el.meanAnom + n*(jd-el.epochJD))

	E := solveKepler(astro.Deg2Rad(M), el.e)

	// True anomaly and radius vector.
	nu := 2 * math.Atan2(
		math.Sqrt(1+el.e)*math.Sin(E/2),
		math.Sqrt(1-el.e)*math.Cos(E/2),
	)
	r := el.a * (1 - el.e*math.Cos(E))

	// Argument of latitude, then rotate through node and inclination.
	u := nu + astro.Deg2Rad(el.periDeg)
	node := astro.Deg2Rad(el.nodeDeg)
	incl := astro.Deg2Rad(el.inclDeg)

	x = r * (math.Cos(node)*math.Cos(u) - math.Sin(node)*math.Sin(u)*math.Cos(incl))
	y = r * (math.Sin(node)*math.Cos(u) + math.Cos(node)*math.Sin(u)*math.Cos(incl))
	z = r * math.Sin(u) * math.Sin(incl)
	return x, y, z
}

// chironGeocentric returns Chiron's geocentric ecliptic longitude and
// latitude in degrees. The Earth's heliocentric position is the reflected
// geocentric Sun.
func chironGeocentric(jd float64) (lonDeg, latDeg float64) {
	hx, hy, hz := chironElements.heliocentric(jd)

	sunLon, sunDist := solarPosition(jd)
	ex := -sunDist * astro.CosD(sunLon)
	ey := -sunDist * astro.SinD(sunLon)

	gx := hx - ex
	gy := hy - ey
	gz := hz

	lon := astro.Rad2Deg(math.Atan2(gy, gx))
	lat := astro.Rad2Deg(math.Atan2(gz, math.Hypot(gx, gy)))
	return astro.Normalize360(lon), lat
}

// chironPosition returns Chiron with its longitudinal speed. Geocentric
// speed changes sign through the annual retrograde loop, so it is derived
// by finite difference rather than from the orbit's mean motion.
func chironPosition(jd float64) ephem.SecondaryPosition {
	lon0, lat := chironGeocentric(jd)
	lon1, _ := chironGeocentric(jd + chironSpeedStepDays)

	return ephem.SecondaryPosition{
		LonDeg:   lon0,
		LatDeg:   lat,
		SpeedLon: astro.SignedDelta(lon0, lon1) / chironSpeedStepDays,
	}
}

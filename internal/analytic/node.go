package analytic

import (
	"github.com/criusastro/crius-jpl/internal/astro"
	"github.com/criusastro/crius-jpl/internal/ephem"
)

// nodeSpeedStepDays is the finite-difference step for the node's
// longitudinal speed, in days.
const nodeSpeedStepDays = 1.0 / 24

// trueNodeLon returns the longitude of the true (osculating) lunar
// ascending node in degrees, from the mean node polynomial plus the
// principal periodic corrections (Meeus, Astronomical Algorithms ch. 47).
func trueNodeLon(jd float64) float64 {
	d := jd - astro.J2000
	T := d / 36525

	// Mean ascending node.
	omega := 125.0445479 - 1934.1362891*T + 0.0020754*T*T +
		T*T*T/467441 - T*T*T*T/60616000

	// Fundamental lunar and solar arguments.
	M := 357.5291092 + 0.98560028*d    // solar mean anomaly
	Mm := 134.9633964 + 13.06499295*d  // lunar mean anomaly
	D := 297.8501921 + 12.19074912*d   // mean elongation
	F := 93.2720950 + 13.22935024*d    // argument of latitude

	lon := omega -
		1.4979*astro.SinD(2*(D-F)) -
		0.1500*astro.SinD(M) -
		0.1226*astro.SinD(2*D) +
		0.1176*astro.SinD(2*F) -
		0.0801*astro.SinD(2*(Mm-F))

	return astro.Normalize360(lon)
}

// trueNodePosition returns the true node with its longitudinal speed. The
// node sits on the ecliptic, so latitude is identically zero. The speed
// oscillates around the mean regression rate and is briefly direct near
// the extremes of the periodic terms.
func trueNodePosition(jd float64) ephem.SecondaryPosition {
	lon0 := trueNodeLon(jd)
	lon1 := trueNodeLon(jd + nodeSpeedStepDays)

	return ephem.SecondaryPosition{
		LonDeg:   lon0,
		LatDeg:   0,
		SpeedLon: astro.SignedDelta(lon0, lon1) / nodeSpeedStepDays,
	}
}

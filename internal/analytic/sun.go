package analytic

import "github.com/criusastro/crius-jpl/internal/astro"

// solarPosition returns the Sun's geocentric ecliptic longitude in degrees
// and its distance in AU, from the low-precision series in the Astronomical
// Almanac (good to about 0.01 degrees over a few centuries around J2000).
// It feeds the geocentric reduction for Kepler-propagated bodies.
func solarPosition(jd float64) (lonDeg, distAU float64) {
	d := jd - astro.J2000

	g := 357.529 + 0.98560028*d  // mean anomaly
	q := 280.459 + 0.98564736*d  // mean longitude

	lon := q + 1.915*astro.SinD(g) + 0.020*astro.SinD(2*g)
	dist := 1.00014 - 0.01671*astro.CosD(g) - 0.00014*astro.CosD(2*g)

	return astro.Normalize360(lon), dist
}

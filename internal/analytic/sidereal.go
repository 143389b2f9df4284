package analytic

import (
	"github.com/criusastro/crius-jpl/internal/astro"
	"github.com/criusastro/crius-jpl/internal/ephem"
)

// ayanamsaJ2000 holds each ayanamsa's value in degrees at J2000.0.
var ayanamsaJ2000 = map[ephem.Ayanamsa]float64{
	ephem.AyanamsaLahiri:       23.85306,
	ephem.AyanamsaFaganBradley: 24.73660,
	ephem.AyanamsaRaman:        22.40980,
	ephem.AyanamsaKrishnamurti: 23.75690,
}

// precessionRate is the general precession in longitude, degrees per
// Julian year. All supported ayanamsas accumulate at this rate.
const precessionRate = 0.0139697

// AyanamsaDeg returns the ayanamsa offset in degrees at a Julian Day.
// Unknown ayanamsas fall back to Lahiri, matching the parse default.
func AyanamsaDeg(jd float64, a ephem.Ayanamsa) float64 {
	base, ok := ayanamsaJ2000[a]
	if !ok {
		base = ayanamsaJ2000[ephem.AyanamsaLahiri]
	}
	years := (jd - astro.J2000) / 365.25
	return base + precessionRate*years
}

// applyAyanamsa converts a tropical longitude to sidereal.
func applyAyanamsa(lonDeg, jd float64, a ephem.Ayanamsa) float64 {
	return astro.Normalize360(lonDeg - AyanamsaDeg(jd, a))
}

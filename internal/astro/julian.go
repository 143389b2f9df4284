package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 TT,
// treated as UTC at this precision).
const J2000 = 2451545.0

// JulianDay returns the continuous Julian Day for a UTC instant,
// including the fractional day down to nanoseconds.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()

	hour := float64(u.Hour()) +
		float64(u.Minute())/60 +
		float64(u.Second())/3600 +
		float64(u.Nanosecond())/(3600*1e9)

	y := year
	m := int(month)

	// January/February count as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	a := y / 100
	b := 2 - a + a/4

	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5 +
		hour/24
}

// JulianCenturies returns Julian centuries since J2000.0.
func JulianCenturies(t time.Time) float64 {
	return (JulianDay(t) - J2000) / 36525
}

// CenturiesFromJD returns Julian centuries since J2000.0 for a Julian Day.
func CenturiesFromJD(jd float64) float64 {
	return (jd - J2000) / 36525
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees
// for a Julian Day (IAU 1980 polynomial, arcseconds truncated).
func MeanObliquity(jd float64) float64 {
	T := CenturiesFromJD(jd)
	return 23.4392911 - 0.0130042*T - 1.64e-7*T*T + 5.04e-7*T*T*T
}

package analytic

import (
	"fmt"
	"math"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/criusastro/crius-jpl/internal/astro"
)

// placidusIterations bounds the fixed-point iteration for Placidus cusps.
// Convergence is geometric away from the polar circles; ten rounds hold
// the cusp well below a thousandth of a degree.
const placidusIterations = 10

// houses computes raw house cusps and angles for one of the supported
// systems. Quadrant and division systems return a 13-entry cusp slice with
// index 0 unused; whole sign returns a 12-entry slice. Angles are
// [ascendant, midheaven]. Inside the polar circles the intermediate-cusp
// trigonometry is clamped rather than rejected, so results degrade
// gracefully instead of failing.
func houses(jd float64, latDeg, lonDeg float64, system byte) (cusps, angles []float64, err error) {
	eps := astro.MeanObliquity(jd)
	armc := localSiderealDeg(jd, lonDeg)

	asc := ascendant(armc, latDeg, eps)
	mc := midheaven(armc, eps)
	angles = []float64{asc, mc}

	switch system {
	case 'P':
		cusps = placidusCusps(armc, latDeg, eps, asc, mc)
	case 'K':
		cusps = kochCusps(armc, latDeg, eps, asc, mc)
	case 'R':
		cusps = regiomontanusCusps(armc, latDeg, eps, asc, mc)
	case 'C':
		cusps = campanusCusps(armc, latDeg, eps, asc, mc)
	case 'A':
		cusps = alcabitiusCusps(armc, latDeg, eps, asc, mc)
	case 'M':
		cusps = morinusCusps(armc, eps)
	case 'E':
		cusps = equalCusps(asc, mc)
	case 'W':
		cusps = wholeSignCusps(asc)
	default:
		return nil, nil, fmt.Errorf("unknown house system %q", system)
	}
	return cusps, angles, nil
}

// localSiderealDeg returns the local apparent sidereal time as an angle in
// degrees (the right ascension of the local meridian). East longitudes are
// positive.
func localSiderealDeg(jd, lonDeg float64) float64 {
	gmst := astro.Rad2Deg(satellite.ThetaG_JD(jd))
	return astro.Normalize360(gmst + lonDeg)
}

// atan2D is atan2 over degree arguments, returning degrees in [0, 360).
func atan2D(y, x float64) float64 {
	return astro.Normalize360(astro.Rad2Deg(math.Atan2(y, x)))
}

// midheaven returns the ecliptic longitude of the upper meridian.
func midheaven(armc, eps float64) float64 {
	return atan2D(astro.SinD(armc), astro.CosD(armc)*astro.CosD(eps))
}

// ascendant returns the ecliptic longitude rising on the eastern horizon
// for a meridian at armc and a geographic latitude.
func ascendant(armc, latDeg, eps float64) float64 {
	return cuspFromPole(armc, latDeg, eps)
}

// cuspFromPole returns the ecliptic intersection of a great circle that
// crosses the celestial equator at right ascension theta+90 with a pole
// elevated by poleLat. With poleLat equal to the geographic latitude and
// theta equal to the ARMC this is the ascendant; Regiomontanus and
// Campanus reuse it with their own house poles.
func cuspFromPole(theta, poleLat, eps float64) float64 {
	return atan2D(
		astro.CosD(theta),
		-(astro.SinD(theta)*astro.CosD(eps) + astro.TanD(poleLat)*astro.SinD(eps)),
	)
}

// declinationOf returns the declination in degrees of an ecliptic point at
// longitude lonDeg with zero latitude.
func declinationOf(lonDeg, eps float64) float64 {
	return astro.ClampedAsinD(astro.SinD(eps) * astro.SinD(lonDeg))
}

// raOf returns the right ascension in degrees of an ecliptic point at
// longitude lonDeg with zero latitude.
func raOf(lonDeg, eps float64) float64 {
	return atan2D(astro.SinD(lonDeg)*astro.CosD(eps), astro.CosD(lonDeg))
}

// lonAtRA returns the ecliptic longitude whose right ascension is raDeg.
func lonAtRA(raDeg, eps float64) float64 {
	return atan2D(astro.SinD(raDeg), astro.CosD(raDeg)*astro.CosD(eps))
}

// newQuadrantCusps allocates a 13-entry cusp slice seeded with the four
// angles. Index 0 stays unused.
func newQuadrantCusps(asc, mc float64) []float64 {
	c := make([]float64, 13)
	c[1] = asc
	c[4] = astro.Normalize360(mc + 180)
	c[7] = astro.Normalize360(asc + 180)
	c[10] = mc
	return c
}

// mirrorCusps fills cusps 5, 6, 8, 9 from their opposites. Every quadrant
// system shares this symmetry.
func mirrorCusps(c []float64) []float64 {
	c[5] = astro.Normalize360(c[11] + 180)
	c[6] = astro.Normalize360(c[12] + 180)
	c[8] = astro.Normalize360(c[2] + 180)
	c[9] = astro.Normalize360(c[3] + 180)
	return c
}

// placidusCusps trisects diurnal and nocturnal semi-arcs. Each
// intermediate cusp is the fixed point of a right-ascension equation,
// found by iteration from the equatorial trisection.
func placidusCusps(armc, latDeg, eps, asc, mc float64) []float64 {
	c := newQuadrantCusps(asc, mc)
	c[11] = placidusCusp(armc, latDeg, eps, 30, 1.0/3)
	c[12] = placidusCusp(armc, latDeg, eps, 60, 2.0/3)
	c[2] = placidusCusp(armc, latDeg, eps, 120, 2.0/3)
	c[3] = placidusCusp(armc, latDeg, eps, 150, 1.0/3)
	return mirrorCusps(c)
}

// placidusCusp iterates one Placidus cusp. offset is the equatorial arc
// from the ARMC and frac the semi-arc fraction for that cusp.
func placidusCusp(armc, latDeg, eps, offset, frac float64) float64 {
	ra := armc + offset
	var lon float64
	for i := 0; i < placidusIterations; i++ {
		lon = lonAtRA(ra, eps)
		decl := declinationOf(lon, eps)
		ad := astro.ClampedAsinD(astro.TanD(latDeg) * astro.TanD(decl))
		ra = armc + offset + frac*ad
	}
	return lonAtRA(ra, eps)
}

// kochCusps trisects the diurnal arc of the midheaven's declination and
// takes horizon crossings of the resulting time offsets.
func kochCusps(armc, latDeg, eps, asc, mc float64) []float64 {
	declMC := declinationOf(mc, eps)
	ad := astro.ClampedAsinD(astro.TanD(latDeg) * astro.TanD(declMC))

	c := newQuadrantCusps(asc, mc)
	c[11] = ascendant(armc-60-2*ad/3, latDeg, eps)
	c[12] = ascendant(armc-30-ad/3, latDeg, eps)
	c[2] = ascendant(armc+30+ad/3, latDeg, eps)
	c[3] = ascendant(armc+60+2*ad/3, latDeg, eps)
	return mirrorCusps(c)
}

// regiomontanusCusps divides the celestial equator into equal arcs and
// projects through house circles pitched at the corresponding pole.
func regiomontanusCusps(armc, latDeg, eps, asc, mc float64) []float64 {
	c := newQuadrantCusps(asc, mc)
	cusp := func(h float64) float64 {
		pole := astro.Rad2Deg(math.Atan(astro.TanD(latDeg) * astro.SinD(h)))
		return cuspFromPole(armc+h-90, pole, eps)
	}
	c[11] = cusp(30)
	c[12] = cusp(60)
	c[2] = cusp(120)
	c[3] = cusp(150)
	return mirrorCusps(c)
}

// campanusCusps divides the prime vertical into equal arcs. h is the
// altitude of the division point above the east point of the horizon.
func campanusCusps(armc, latDeg, eps, asc, mc float64) []float64 {
	c := newQuadrantCusps(asc, mc)
	cusp := func(h float64) float64 {
		pole := astro.ClampedAsinD(astro.SinD(latDeg) * astro.CosD(h))
		theta := armc + atan2D(-astro.SinD(h), astro.CosD(h)*astro.CosD(latDeg))
		return cuspFromPole(theta, pole, eps)
	}
	c[11] = cusp(60)
	c[12] = cusp(30)
	c[2] = cusp(-30)
	c[3] = cusp(-60)
	return mirrorCusps(c)
}

// alcabitiusCusps trisects the ascendant's semi-arcs in right ascension
// and drops the divisions onto the ecliptic along declination circles.
func alcabitiusCusps(armc, latDeg, eps, asc, mc float64) []float64 {
	declAsc := declinationOf(asc, eps)
	ad := astro.ClampedAsinD(astro.TanD(latDeg) * astro.TanD(declAsc))
	diurnal := 90 + ad
	nocturnal := 90 - ad

	c := newQuadrantCusps(asc, mc)
	c[11] = lonAtRA(armc+diurnal/3, eps)
	c[12] = lonAtRA(armc+2*diurnal/3, eps)
	c[2] = lonAtRA(armc+diurnal+nocturnal/3, eps)
	c[3] = lonAtRA(armc+diurnal+2*nocturnal/3, eps)
	return mirrorCusps(c)
}

// morinusCusps divides the celestial equator from the meridian and maps
// each division to the ecliptic by right ascension. The first cusp is not
// the ascendant; the system is latitude-independent.
func morinusCusps(armc, eps float64) []float64 {
	c := make([]float64, 13)
	for i := 1; i <= 12; i++ {
		c[i] = raOf(armc+30*float64(i-1)+90, eps)
	}
	return c
}

// equalCusps spaces all cusps 30 degrees apart from the ascendant. The
// midheaven keeps its true longitude in the angles and generally does not
// fall on the tenth cusp.
func equalCusps(asc, _ float64) []float64 {
	c := make([]float64, 13)
	for i := 1; i <= 12; i++ {
		c[i] = astro.Normalize360(asc + 30*float64(i-1))
	}
	return c
}

// wholeSignCusps anchors the first house to the start of the rising sign.
// The 12-entry shape marks the output as whole sign for the engine.
func wholeSignCusps(asc float64) []float64 {
	base := 30 * math.Floor(asc/30)
	c := make([]float64, 12)
	for i := 0; i < 12; i++ {
		c[i] = astro.Normalize360(base + 30*float64(i))
	}
	return c
}

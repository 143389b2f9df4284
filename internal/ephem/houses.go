package ephem

import (
	"strconv"

	"github.com/criusastro/crius-jpl/internal/astro"
)

// normalizeHouses converts a raw backend cusp/angle result into the
// canonical HousePositions form.
//
// A 12-entry cusp slice follows the whole-sign convention: index i holds
// house i+1. Any other length follows the quadrant convention: indices
// 1..12 hold houses 1..12 with slot 0 unused. Indices at or beyond the
// slice length are skipped. IC and DC are derived from MC and Asc so the
// angle set stays internally consistent regardless of what the backend
// returned.
func normalizeHouses(system HouseSystem, cusps, angles []float64) *HousePositions {
	out := &HousePositions{
		System: system.String(),
		Cusps:  make(map[string]float64, 12),
	}

	// Houses are best-effort relative to the mandatory planet computation:
	// an absent backend result degrades to an empty cusp map with zeroed
	// asc/mc, while ic/dc below stay derived.
	if len(cusps) == 12 {
		for i := 0; i < 12; i++ {
			out.Cusps[strconv.Itoa(i+1)] = astro.Normalize360(cusps[i])
		}
	} else {
		for i := 1; i <= 12; i++ {
			if i < len(cusps) {
				out.Cusps[strconv.Itoa(i)] = astro.Normalize360(cusps[i])
			}
		}
	}

	var asc, mc float64
	if len(angles) > 0 {
		asc = astro.Normalize360(angles[0])
	}
	if len(angles) > 1 {
		mc = astro.Normalize360(angles[1])
	}

	out.Angles = HouseAngles{
		Asc: asc,
		MC:  mc,
		IC:  astro.Normalize360(mc + 180),
		DC:  astro.Normalize360(asc + 180),
	}

	return out
}

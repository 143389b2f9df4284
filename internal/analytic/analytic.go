// Package analytic implements the secondary position source with closed-form
// series and Kepler propagation. It covers what the Horizons-backed primary
// does not: the lunar nodes, Chiron, house systems, and sidereal offsets.
//
// Accuracy is chart-grade (arcminutes), not ephemeris-grade. The engine
// never routes a major body here.
package analytic

import (
	"fmt"

	"github.com/criusastro/crius-jpl/internal/ephem"
)

// Source computes positions analytically, with no network or data files.
type Source struct{}

// NewSource creates the analytic source.
func NewSource() *Source {
	return &Source{}
}

// Name implements ephem.SecondarySource.
func (s *Source) Name() string { return "analytic" }

// BodyPosition implements ephem.SecondarySource. The sidereal flag shifts
// only this one result; longitudinal speed is unaffected because the
// ayanamsa drift is below the speed precision.
func (s *Source) BodyPosition(jd float64, body ephem.SecondaryBody, flags ephem.CalcFlags) (ephem.SecondaryPosition, error) {
	var pos ephem.SecondaryPosition
	switch body {
	case ephem.SecondaryTrueNode:
		pos = trueNodePosition(jd)
	case ephem.SecondaryChiron:
		pos = chironPosition(jd)
	default:
		return ephem.SecondaryPosition{}, fmt.Errorf("analytic source does not model %v", body)
	}

	if flags.Sidereal {
		pos.LonDeg = applyAyanamsa(pos.LonDeg, jd, flags.Ayanamsa)
	}
	return pos, nil
}

// Houses implements ephem.SecondarySource.
func (s *Source) Houses(jd float64, latDeg, lonDeg float64, system byte) ([]float64, []float64, error) {
	return houses(jd, latDeg, lonDeg, system)
}

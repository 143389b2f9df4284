package analytic

import (
	"math"
	"testing"
	"time"

	"github.com/criusastro/crius-jpl/internal/astro"
)

func TestTrueNodeKnownEpoch(t *testing.T) {
	// Early January 2024 the true node sat near 21 degrees Aries.
	jd := astro.JulianDay(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	lon := trueNodeLon(jd)

	if d := math.Abs(astro.SignedDelta(20.9, lon)); d > 2.5 {
		t.Errorf("true node at 2024-01-01 = %v, want within 2.5 deg of 20.9", lon)
	}
}

func TestTrueNodeLatitudeZero(t *testing.T) {
	jd := astro.JulianDay(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	pos := trueNodePosition(jd)
	if pos.LatDeg != 0 {
		t.Errorf("node latitude = %v, want exactly 0", pos.LatDeg)
	}
}

func TestTrueNodeMeanRegression(t *testing.T) {
	// The true node oscillates but regresses on average at about
	// -0.053 deg/day. Sample a full wobble period and check the mean.
	jd := astro.JulianDay(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	var sum float64
	const samples = 200
	for i := 0; i < samples; i++ {
		pos := trueNodePosition(jd + float64(i)*2)
		sum += pos.SpeedLon
	}
	mean := sum / samples

	if mean > -0.03 || mean < -0.08 {
		t.Errorf("mean node speed = %v deg/day, want near -0.053", mean)
	}
}

func TestTrueNodeContinuity(t *testing.T) {
	// Longitude must move smoothly hour over hour, including across the
	// Aries point.
	jd := astro.JulianDay(time.Date(2023, 7, 17, 0, 0, 0, 0, time.UTC))
	for i := 0; i < 48; i++ {
		a := trueNodeLon(jd + float64(i)/24)
		b := trueNodeLon(jd + float64(i+1)/24)
		if d := math.Abs(astro.SignedDelta(a, b)); d > 0.05 {
			t.Errorf("node jumped %v deg in one hour at jd %v", d, jd+float64(i)/24)
		}
	}
}

package analytic

import (
	"math"
	"testing"
	"time"

	"github.com/criusastro/crius-jpl/internal/astro"
)

var (
	testJD  = astro.JulianDay(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	testLat = 40.7128
	testLon = -74.0060
)

// quadrantSystems anchor cusp 1 to the ascendant and cusp 10 to the
// midheaven. Morinus and equal deliberately do not.
var quadrantSystems = []byte{'P', 'K', 'R', 'C', 'A'}

func TestAnglesAtEquator(t *testing.T) {
	eps := astro.MeanObliquity(testJD)

	tests := []struct {
		armc    float64
		wantAsc float64
		wantMC  float64
	}{
		{armc: 0, wantAsc: 90, wantMC: 0},
		{armc: 90, wantAsc: 180, wantMC: 90},
		{armc: 180, wantAsc: 270, wantMC: 180},
		{armc: 270, wantAsc: 0, wantMC: 270},
	}

	for _, tc := range tests {
		asc := ascendant(tc.armc, 0, eps)
		if math.Abs(astro.SignedDelta(tc.wantAsc, asc)) > 1e-9 {
			t.Errorf("ascendant(armc=%v, lat=0) = %v, want %v", tc.armc, asc, tc.wantAsc)
		}
		mc := midheaven(tc.armc, eps)
		if math.Abs(astro.SignedDelta(tc.wantMC, mc)) > 1e-9 {
			t.Errorf("midheaven(armc=%v) = %v, want %v", tc.armc, mc, tc.wantMC)
		}
	}
}

func TestAscendantEastOfMidheaven(t *testing.T) {
	eps := astro.MeanObliquity(testJD)
	for armc := 0.0; armc < 360; armc += 15 {
		asc := ascendant(armc, testLat, eps)
		mc := midheaven(armc, eps)
		d := astro.SignedDelta(mc, asc)
		if d <= 0 || d >= 180 {
			t.Errorf("armc=%v: ascendant %v not east of midheaven %v (delta %v)", armc, asc, mc, d)
		}
	}
}

func TestQuadrantSystemInvariants(t *testing.T) {
	for _, system := range quadrantSystems {
		t.Run(string(system), func(t *testing.T) {
			cusps, angles, err := houses(testJD, testLat, testLon, system)
			if err != nil {
				t.Fatalf("houses failed: %v", err)
			}
			if len(cusps) != 13 {
				t.Fatalf("got %d cusps, want 13", len(cusps))
			}
			if cusps[0] != 0 {
				t.Errorf("cusp slot 0 should be unused, got %v", cusps[0])
			}
			if len(angles) < 2 {
				t.Fatalf("got %d angles, want at least 2", len(angles))
			}

			if math.Abs(astro.SignedDelta(angles[0], cusps[1])) > 1e-9 {
				t.Errorf("cusp 1 = %v, want ascendant %v", cusps[1], angles[0])
			}
			if math.Abs(astro.SignedDelta(angles[1], cusps[10])) > 1e-9 {
				t.Errorf("cusp 10 = %v, want midheaven %v", cusps[10], angles[1])
			}

			for i := 1; i <= 6; i++ {
				opposite := astro.Normalize360(cusps[i] + 180)
				if math.Abs(astro.SignedDelta(opposite, cusps[i+6])) > 1e-6 {
					t.Errorf("cusp %d (%v) and cusp %d (%v) are not opposite", i, cusps[i], i+6, cusps[i+6])
				}
			}

			// Zodiacal order through the eastern quadrants.
			order := []int{10, 11, 12, 1, 2, 3, 4}
			for i := 0; i < len(order)-1; i++ {
				d := astro.SignedDelta(cusps[order[i]], cusps[order[i+1]])
				if d <= 0 {
					t.Errorf("cusp %d (%v) not ahead of cusp %d (%v)", order[i+1], cusps[order[i+1]], order[i], cusps[order[i]])
				}
			}
		})
	}
}

func TestEqualHouses(t *testing.T) {
	cusps, angles, err := houses(testJD, testLat, testLon, 'E')
	if err != nil {
		t.Fatalf("houses failed: %v", err)
	}
	if len(cusps) != 13 {
		t.Fatalf("got %d cusps, want 13", len(cusps))
	}
	if math.Abs(astro.SignedDelta(angles[0], cusps[1])) > 1e-9 {
		t.Errorf("cusp 1 = %v, want ascendant %v", cusps[1], angles[0])
	}
	for i := 1; i < 12; i++ {
		d := astro.SignedDelta(cusps[i], cusps[i+1])
		if math.Abs(d-30) > 1e-9 {
			t.Errorf("cusps %d->%d spaced %v degrees, want 30", i, i+1, d)
		}
	}
}

func TestMorinusLatitudeIndependent(t *testing.T) {
	a, _, err := houses(testJD, 0, testLon, 'M')
	if err != nil {
		t.Fatalf("houses failed: %v", err)
	}
	b, _, err := houses(testJD, 66, testLon, 'M')
	if err != nil {
		t.Fatalf("houses failed: %v", err)
	}
	for i := 1; i <= 12; i++ {
		if a[i] != b[i] {
			t.Errorf("cusp %d differs across latitudes: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestWholeSignHouses(t *testing.T) {
	cusps, angles, err := houses(testJD, testLat, testLon, 'W')
	if err != nil {
		t.Fatalf("houses failed: %v", err)
	}
	if len(cusps) != 12 {
		t.Fatalf("got %d cusps, want 12 for whole sign", len(cusps))
	}
	for i, c := range cusps {
		if math.Mod(c, 30) != 0 {
			t.Errorf("cusp %d = %v, want a sign boundary", i+1, c)
		}
	}
	// The ascendant falls inside the first house's sign.
	asc := angles[0]
	if astro.SignedDelta(cusps[0], asc) < 0 || astro.SignedDelta(cusps[0], asc) >= 30 {
		t.Errorf("ascendant %v not inside first sign starting at %v", asc, cusps[0])
	}
}

func TestHousesPolarLatitude(t *testing.T) {
	systems := append(append([]byte{}, quadrantSystems...), 'M', 'E', 'W')
	for _, system := range systems {
		cusps, angles, err := houses(testJD, 75, testLon, system)
		if err != nil {
			t.Fatalf("system %c failed at polar latitude: %v", system, err)
		}
		for i, c := range cusps {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				t.Errorf("system %c cusp %d is %v at polar latitude", system, i, c)
			}
		}
		for _, a := range angles {
			if math.IsNaN(a) || math.IsInf(a, 0) {
				t.Errorf("system %c angle is %v at polar latitude", system, a)
			}
		}
	}
}

func TestHousesUnknownSystem(t *testing.T) {
	if _, _, err := houses(testJD, testLat, testLon, 'Z'); err == nil {
		t.Error("unknown house system should fail")
	}
}

package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/criusastro/crius-jpl/internal/ephem"
	"github.com/criusastro/crius-jpl/internal/state"
)

func testSnapshot() state.Snapshot {
	return state.Snapshot{
		Instant: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Positions: &ephem.LayerPositions{
			Planets: map[string]ephem.PlanetPosition{
				"sun":     {Lon: 280.5, SpeedLon: 1.019},
				"mercury": {Lon: 262.3, SpeedLon: -0.8, Retrograde: true},
			},
			Houses: &ephem.HousePositions{
				System: "placidus",
				Cusps: map[string]float64{
					"1": 194.2, "2": 222.0, "3": 252.5, "4": 284.7, "5": 317.1, "6": 347.3,
					"7": 14.2, "8": 42.0, "9": 72.5, "10": 104.7, "11": 137.1, "12": 167.3,
				},
				Angles: ephem.HouseAngles{Asc: 194.2, MC: 104.7, IC: 284.7, DC: 14.2},
			},
		},
	}
}

func TestChartViewRendersPlanets(t *testing.T) {
	m := NewChartModel().UpdateData(testSnapshot())
	out := m.View()

	for _, want := range []string{"sun", "mercury", "Capricorn", "Positions"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart view missing %q:\n%s", want, out)
		}
	}
	// Mercury at 262.3 sits in Sagittarius and is retrograde.
	if !strings.Contains(out, "Sagittarius") {
		t.Errorf("chart view missing mercury's sign:\n%s", out)
	}
}

func TestChartViewRendersHouses(t *testing.T) {
	m := NewChartModel().UpdateData(testSnapshot())
	out := m.View()

	for _, want := range []string{"Houses", "placidus", "ASC", "MC", "DC", "IC"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart view missing %q", want)
		}
	}
}

func TestChartViewWithoutHouses(t *testing.T) {
	snap := testSnapshot()
	snap.Positions.Houses = nil
	out := NewChartModel().UpdateData(snap).View()

	if strings.Contains(out, "Houses") {
		t.Error("chart view should omit house panel when houses are nil")
	}
}

func TestChartViewWaiting(t *testing.T) {
	out := NewChartModel().View()
	if !strings.Contains(out, "Waiting for chart data") {
		t.Errorf("empty chart view = %q", out)
	}
}

func TestOrderedBodiesCanonicalFirst(t *testing.T) {
	planets := map[string]ephem.PlanetPosition{
		"zenith_point": {},
		"moon":         {},
		"sun":          {},
	}
	got := orderedBodies(planets)
	want := []string{"sun", "moon", "zenith_point"}
	if len(got) != len(want) {
		t.Fatalf("orderedBodies = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("orderedBodies[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEventsView(t *testing.T) {
	snap := state.Snapshot{
		Events: []state.Event{
			{Type: state.EventIngress, Timestamp: time.Now(), Body: "sun", OldSign: "Sagittarius", NewSign: "Capricorn"},
			{Type: state.EventRetrograde, Timestamp: time.Now(), Body: "mercury"},
		},
	}
	m := NewEventsModel().SetSize(80, 20).UpdateData(snap)
	out := m.View()

	if !strings.Contains(out, "sun enters Capricorn") {
		t.Errorf("events view missing ingress line:\n%s", out)
	}
	if !strings.Contains(out, "mercury stations retrograde") {
		t.Errorf("events view missing station line:\n%s", out)
	}
}

func TestEventsViewEmpty(t *testing.T) {
	out := NewEventsModel().SetSize(80, 20).View()
	if !strings.Contains(out, "No events yet") {
		t.Errorf("empty events view = %q", out)
	}
}

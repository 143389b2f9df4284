package ephem

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/criusastro/crius-jpl/internal/astro"
)

// WriteSummaryTable writes a plain-text chart summary for headless use.
// Bodies appear in canonical order, then any extras alphabetically.
func WriteSummaryTable(w io.Writer, instant time.Time, positions LayerPositions) {
	fmt.Fprintf(w, "Chart for %s\n", instant.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(w, "%-12s %-22s %-14s %s\n", "BODY", "POSITION", "SPEED", "MOTION")

	for _, name := range summaryOrder(positions.Planets) {
		pos := positions.Planets[name]
		motion := "direct"
		if pos.Retrograde {
			motion = "retrograde"
		}
		fmt.Fprintf(w, "%-12s %-22s %+10.4f°/d  %s\n",
			name, astro.FormatZodiac(pos.Lon), pos.SpeedLon, motion)
	}

	if positions.Houses == nil {
		return
	}

	h := positions.Houses
	fmt.Fprintf(w, "\nHouses (%s)\n", h.System)
	fmt.Fprintf(w, "ASC %-20s MC %-20s\n",
		astro.FormatZodiac(h.Angles.Asc), astro.FormatZodiac(h.Angles.MC))
	fmt.Fprintf(w, "DC  %-20s IC %-20s\n",
		astro.FormatZodiac(h.Angles.DC), astro.FormatZodiac(h.Angles.IC))
	for i := 1; i <= 12; i++ {
		cusp, ok := h.Cusps[fmt.Sprint(i)]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%2d  %s\n", i, astro.FormatZodiac(cusp))
	}
}

func summaryOrder(planets map[string]PlanetPosition) []string {
	var names []string
	seen := make(map[string]bool)
	for _, id := range DefaultBodies {
		if _, ok := planets[id]; ok {
			names = append(names, id)
			seen[id] = true
		}
	}
	var extra []string
	for name := range planets {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

package ephem

import (
	"encoding/json"
	"io"
	"time"
)

// ChartExport is the JSON-serializable representation of one computed
// chart.
type ChartExport struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Instant     time.Time      `json:"instant"`
	Location    *GeoLocation   `json:"location,omitempty"`
	Positions   LayerPositions `json:"positions"`
}

// ExportChart converts a calculation result to an exportable format.
func ExportChart(instant time.Time, location *GeoLocation, positions LayerPositions) *ChartExport {
	return &ChartExport{
		GeneratedAt: time.Now().UTC(),
		Instant:     instant.UTC(),
		Location:    location,
		Positions:   positions,
	}
}

// WriteJSON writes the export as indented JSON.
func (e *ChartExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

package ephem

// GeoLocation is a geographic position in degrees, needed only for house
// computation.
type GeoLocation struct {
	LatDeg float64 `json:"lat"`
	LonDeg float64 `json:"lon"`
}

// PlanetPosition is a computed body position. Retrograde is always exactly
// SpeedLon < 0; it is derived, never set independently.
type PlanetPosition struct {
	Lon        float64 `json:"lon"`       // ecliptic longitude, [0, 360)
	Lat        float64 `json:"lat"`       // ecliptic latitude, degrees
	SpeedLon   float64 `json:"speed_lon"` // degrees/day, signed
	Retrograde bool    `json:"retrograde"`
}

// HouseAngles are the four chart angles. IC and DC are always derived from
// MC and Asc, never read from backend output.
type HouseAngles struct {
	Asc float64 `json:"asc"`
	MC  float64 `json:"mc"`
	IC  float64 `json:"ic"`
	DC  float64 `json:"dc"`
}

// HousePositions is the normalized house-system output: cusps keyed by
// house number "1".."12", every longitude in [0, 360).
type HousePositions struct {
	System string             `json:"system"`
	Cusps  map[string]float64 `json:"cusps"`
	Angles HouseAngles        `json:"angles"`
}

// LayerPositions is the merged calculation result. Planets holds only the
// bodies that resolved successfully; a missing key is the per-body failure
// signal. Houses is nil iff no location was supplied.
type LayerPositions struct {
	Planets map[string]PlanetPosition `json:"planets"`
	Houses  *HousePositions           `json:"houses,omitempty"`
}

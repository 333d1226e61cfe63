package terminator

import "time"

// Feature is a GeoJSON Feature wrapping the terminator polygon.
type Feature struct {
	Type       string     `json:"type"`
	Geometry   Polygon    `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Polygon is a GeoJSON Polygon geometry. Positions are [lng, lat].
type Polygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// Properties are the Feature properties attached to the terminator polygon.
type Properties struct {
	Time        time.Time `json:"time"`
	Resolution  float64   `json:"resolution"`
	Declination float64   `json:"declination"`
	NightPole   int       `json:"night_pole"`
}

// GeoJSON returns the curve as a GeoJSON Feature. The linear ring is closed by
// repeating its first position.
func (c Curve) GeoJSON() Feature {
	ring := make([][]float64, 0, len(c.Points)+1)
	for _, p := range c.Points {
		ring = append(ring, []float64{p.Lng, p.Lat})
	}
	if len(c.Points) > 0 && c.Points[0] != c.Points[len(c.Points)-1] {
		first := c.Points[0]
		ring = append(ring, []float64{first.Lng, first.Lat})
	}

	return Feature{
		Type: "Feature",
		Geometry: Polygon{
			Type:        "Polygon",
			Coordinates: [][][]float64{ring},
		},
		Properties: Properties{
			Time:        c.Time,
			Resolution:  c.Resolution,
			Declination: c.Declination,
			NightPole:   c.NightPole(),
		},
	}
}

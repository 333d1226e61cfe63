package terminator

import (
	"encoding/json"
	"testing"
	"time"
)

func TestGeoJSON(t *testing.T) {
	curve := Compute(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), 10)
	feature := curve.GeoJSON()

	if feature.Type != "Feature" || feature.Geometry.Type != "Polygon" {
		t.Fatalf("unexpected types %q / %q", feature.Type, feature.Geometry.Type)
	}
	if len(feature.Geometry.Coordinates) != 1 {
		t.Fatalf("expected a single ring, got %d", len(feature.Geometry.Coordinates))
	}

	ring := feature.Geometry.Coordinates[0]
	if len(ring) != len(curve.Points)+1 {
		t.Fatalf("ring has %d positions, expected %d", len(ring), len(curve.Points)+1)
	}

	first, last := ring[0], ring[len(ring)-1]
	if first[0] != last[0] || first[1] != last[1] {
		t.Errorf("ring is not closed: first %v, last %v", first, last)
	}

	// GeoJSON positions are [lng, lat].
	p := curve.Points[3]
	if ring[3][0] != p.Lng || ring[3][1] != p.Lat {
		t.Errorf("ring[3] = %v, expected [%v, %v]", ring[3], p.Lng, p.Lat)
	}

	if feature.Properties.NightPole != 1 {
		t.Errorf("NightPole = %d, expected 1", feature.Properties.NightPole)
	}
}

func TestGeoJSONEncoding(t *testing.T) {
	curve := Curve{
		Time:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Resolution:  180,
		Declination: -23,
		Points:      []GeoPoint{{Lat: 50, Lng: -180}, {Lat: -90, Lng: -180}, {Lat: 40, Lng: 0}, {Lat: -90, Lng: 180}},
	}

	b, err := json.Marshal(curve.GeoJSON())
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	expected := `{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[-180,50],[-180,-90],[0,40],[180,-90],[-180,50]]]},` +
		`"properties":{"time":"2024-01-01T00:00:00Z","resolution":180,"declination":-23,"night_pole":-1}}`
	if string(b) != expected {
		t.Errorf("GeoJSON =\n%s\nexpected\n%s", b, expected)
	}
}

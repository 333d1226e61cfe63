package restserver

import (
	"time"

	"github.com/chrissnell/terminator/pkg/solar"
	"github.com/chrissnell/terminator/pkg/terminator"
)

// TerminatorResponse is the body of GET /terminator
type TerminatorResponse struct {
	terminator.Curve
	Bounds       terminator.Bounds `json:"bounds"`
	NightPole    int               `json:"night_pole"`
	MeanLatitude float64           `json:"mean_latitude"`
}

// EphemerisResponse is the body of GET /ephemeris
type EphemerisResponse struct {
	Time       time.Time       `json:"time"`
	JulianDate float64         `json:"julian_date"`
	GMST       float64         `json:"gmst"`
	Ephemeris  solar.Ephemeris `json:"ephemeris"`
}

// SubsolarResponse is the body of GET /subsolar
type SubsolarResponse struct {
	Time time.Time `json:"time"`
	Lat  float64   `json:"lat"`
	Lng  float64   `json:"lng"`
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

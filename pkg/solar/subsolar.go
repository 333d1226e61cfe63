package solar

import (
	"time"

	"github.com/soniakeys/unit"
)

// SubsolarPoint returns the latitude/longitude in degrees where the Sun is at
// the zenith at time t.
func SubsolarPoint(t time.Time) (lat, lon float64) {
	utc := t.UTC()
	eph := EphemerisAt(utc)

	eqTimeMinutes := eph.EquationOfTime * 60
	lon = (720 - (utcMinutes(utc) + eqTimeMinutes)) / 4

	return eph.Declination, WrapLongitude(lon)
}

// WrapLongitude wraps a longitude in degrees into [-180,180).
func WrapLongitude(lon float64) float64 {
	return unit.PMod(lon+180, 360) - 180
}

// utcMinutes returns the minutes elapsed since 00:00 UTC, including the
// fractional part.
func utcMinutes(utc time.Time) float64 {
	return float64(utc.Hour()*60+utc.Minute()) +
		float64(utc.Second())/60.0 +
		float64(utc.Nanosecond())/6e10
}

package solar

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
)

// UnixEpochJD is the Julian Date of 1970-01-01T00:00:00Z.
const UnixEpochJD = 2440587.5

const millisPerDay = 86400000.0

// JulianDate converts a UTC instant to a Julian Date. It is only meaningful from
// the Unix epoch forward and ignores leap seconds.
func JulianDate(t time.Time) float64 {
	return float64(t.UnixMilli())/millisPerDay + UnixEpochJD
}

// JulianCenturies returns Julian centuries since J2000.0
func JulianCenturies(jd float64) float64 {
	return base.J2000Century(jd)
}

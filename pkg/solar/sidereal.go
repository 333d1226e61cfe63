package solar

import (
	"math"
	"time"

	"github.com/soniakeys/unit"
)

// GreenwichMeanSiderealTime returns GMST in degrees [0,360) for the given UTC time.
// The day fraction is scaled by the sidereal rate on top of the value at the
// preceding 0h UT boundary.
func GreenwichMeanSiderealTime(t time.Time) float64 {
	j := JulianDate(t)
	jd0 := math.Floor(j-0.5) + 0.5
	T := JulianCenturies(jd0)

	gmst := 6.697374558 + 2400.051336*T + 0.000025862*T*T + (j-jd0)*24*1.00273790935

	return unit.PMod(gmst, 24) * 15
}

package solar

import (
	"math"
	"time"

	"github.com/soniakeys/unit"
)

// DaylightInfo describes the Sun as seen from one location at one instant.
// Sunrise and sunset are geometric (Sun's center on the horizon, no
// refraction), which is the same horizon the terminator curve traces.
type DaylightInfo struct {
	Time           time.Time `json:"time"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	ElevationDeg   float64   `json:"elevation"`
	HourAngleDeg   float64   `json:"hour_angle"`
	Sunlit         bool      `json:"sunlit"`
	SunriseMinutes int       `json:"sunrise_utc_minutes"` // -1 when the Sun doesn't rise or set
	SunsetMinutes  int       `json:"sunset_utc_minutes"`  // -1 when the Sun doesn't rise or set
	PolarDay       bool      `json:"polar_day,omitempty"`
	PolarNight     bool      `json:"polar_night,omitempty"`
	SunDistanceAU  float64   `json:"sun_distance_au"`
	ClearSkyGHI    float64   `json:"clear_sky_irradiance"` // W/m²
}

// Daylight computes the Sun's elevation and the UTC sunrise/sunset for the
// given location (degrees, east positive) on the UTC day containing t.
func Daylight(latitude, longitude float64, t time.Time) DaylightInfo {
	utc := t.UTC()
	eph := EphemerisAt(utc)
	eqTimeMinutes := eph.EquationOfTime * 60

	info := DaylightInfo{
		Time:      utc,
		Latitude:  latitude,
		Longitude: longitude,
	}

	lat := unit.AngleFromDeg(latitude)
	dec := unit.AngleFromDeg(eph.Declination)

	// True solar time in minutes, then the local hour angle (0 at solar noon).
	trueSolarMinutes := utcMinutes(utc) + 4*longitude + eqTimeMinutes
	info.HourAngleDeg = WrapLongitude(trueSolarMinutes/4 - 180)
	ha := unit.AngleFromDeg(info.HourAngleDeg)

	cosZenith := lat.Sin()*dec.Sin() + lat.Cos()*dec.Cos()*ha.Cos()
	cosZenith = math.Max(-1, math.Min(1, cosZenith))
	info.ElevationDeg = 90 - radToDeg(math.Acos(cosZenith))
	info.Sunlit = info.ElevationDeg > 0
	info.SunDistanceAU = SunDistance(eph)
	info.ClearSkyGHI = ClearSkyIrradiance(info.ElevationDeg, info.SunDistanceAU, DefaultTurbidity)

	info.SunriseMinutes, info.SunsetMinutes = -1, -1

	// cos(H) = -tan(lat) * tan(declination) at the horizon
	cosH := -lat.Tan() * dec.Tan()
	switch {
	case cosH < -1.0:
		info.PolarDay = true
		return info
	case cosH > 1.0:
		info.PolarNight = true
		return info
	}

	hourAngleMinutes := radToDeg(math.Acos(cosH)) * 4
	solarNoonUTC := 720.0 - 4*longitude - eqTimeMinutes

	sunrise := unit.PMod(solarNoonUTC-hourAngleMinutes, 1440)
	sunset := unit.PMod(solarNoonUTC+hourAngleMinutes, 1440)

	info.SunriseMinutes = int(math.Round(sunrise)) % 1440
	info.SunsetMinutes = int(math.Round(sunset)) % 1440

	return info
}

// FormatSunTime converts UTC minutes from midnight to a formatted time string
// in the given timezone location.
func FormatSunTime(utcMinutes int, loc *time.Location) string {
	if utcMinutes < 0 {
		return ""
	}

	hours := utcMinutes / 60
	minutes := utcMinutes % 60

	// Create a time in UTC, then convert to local
	t := time.Date(2000, 1, 1, hours, minutes, 0, 0, time.UTC)
	local := t.In(loc)

	return local.Format("3:04 PM")
}

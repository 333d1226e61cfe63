package solar

import "math"

const (
	// SolarConstant is the mean top-of-atmosphere irradiance in W/m².
	SolarConstant = 1367.0

	// DefaultTurbidity is the Linke turbidity factor used by Daylight.
	DefaultTurbidity = 2.0
)

// SunDistance returns the Earth-Sun distance in astronomical units.
func SunDistance(eph Ephemeris) float64 {
	e := eph.Eccentricity
	return 1.000001018 * (1 - e*e) / (1 + e*math.Cos(degToRad(eph.TrueAnomaly)))
}

// ClearSkyIrradiance estimates global horizontal irradiance under a cloudless
// sky with the Bras model, in W/m². It is zero when the Sun is below the
// horizon.
func ClearSkyIrradiance(elevationDeg, distanceAU, turbidity float64) float64 {
	if elevationDeg <= 0 {
		return 0
	}

	cosZenith := math.Sin(degToRad(elevationDeg))
	extraterrestrial := cosZenith * SolarConstant / (distanceAU * distanceAU)

	// Kasten air mass and Bras molecular scattering coefficient
	airMass := 1.0 / (cosZenith + 0.15*math.Pow(elevationDeg+3.885, -1.253))
	a1 := 0.128 - 0.054*math.Log10(airMass)

	return math.Max(0, extraterrestrial*math.Exp(-turbidity*a1*airMass))
}

// Package solar computes the low-precision solar ephemeris used to place the
// day/night terminator: mean and apparent ecliptic longitude, orbital
// eccentricity, obliquity, equation of time, true anomaly and declination.
//
// All functions take Julian centuries since J2000.0 (T) and return degrees
// unless noted otherwise. Trig calls convert to radians explicitly.
package solar

import (
	"math"
	"time"

	"github.com/soniakeys/unit"
)

// Ephemeris holds the solar quantities for one instant.
type Ephemeris struct {
	Centuries         float64 `json:"centuries"`
	MeanLongitude     float64 `json:"mean_longitude"`
	MeanAnomaly       float64 `json:"mean_anomaly"`
	EquationOfCenter  float64 `json:"equation_of_center"`
	ApparentLongitude float64 `json:"apparent_longitude"`
	Eccentricity      float64 `json:"eccentricity"`
	Obliquity         float64 `json:"obliquity"`
	EquationOfTime    float64 `json:"equation_of_time_hours"`
	TrueAnomaly       float64 `json:"true_anomaly"`
	Declination       float64 `json:"declination"`
}

// EphemerisAt computes the Ephemeris for a UTC instant.
func EphemerisAt(t time.Time) Ephemeris {
	return Calculate(JulianCenturies(JulianDate(t)))
}

// Calculate computes the Ephemeris for T Julian centuries since J2000.0
func Calculate(T float64) Ephemeris {
	lon := ApparentLongitude(T)
	e := Eccentricity(T)
	obliquity := MeanObliquity(T)

	return Ephemeris{
		Centuries:         T,
		MeanLongitude:     MeanLongitude(T),
		MeanAnomaly:       MeanAnomaly(T),
		EquationOfCenter:  EquationOfCenter(T),
		ApparentLongitude: lon,
		Eccentricity:      e,
		Obliquity:         obliquity,
		EquationOfTime:    EquationOfTime(T, e, obliquity),
		TrueAnomaly:       TrueAnomaly(T),
		// The Sun's ecliptic latitude never exceeds ~1.2 arcseconds.
		Declination: Declination(lon, 0, obliquity),
	}
}

// MeanLongitude returns the geometric mean longitude of the Sun in [0,360).
func MeanLongitude(T float64) float64 {
	return unit.PMod(280.46646+T*(36000.76983+T*0.0003032), 360)
}

// MeanAnomaly returns the mean anomaly of the Sun. It is not range-reduced.
func MeanAnomaly(T float64) float64 {
	return 357.52911 + T*(35999.05029-T*0.0001537)
}

// EquationOfCenter returns the difference between the true and mean anomaly.
func EquationOfCenter(T float64) float64 {
	M := degToRad(MeanAnomaly(T))
	return (1.914602-T*(0.004817+T*0.000014))*math.Sin(M) +
		(0.019993-T*0.000101)*math.Sin(2*M) +
		0.000289*math.Sin(3*M)
}

// ApparentLongitude returns the Sun's ecliptic longitude corrected for
// nutation and aberration.
func ApparentLongitude(T float64) float64 {
	trueLon := MeanLongitude(T) + EquationOfCenter(T)
	omega := 125.04 - 1934.136*T
	return trueLon - 0.00569 - 0.00478*math.Sin(degToRad(omega))
}

// Eccentricity returns the eccentricity of the Earth's orbit (unitless).
func Eccentricity(T float64) float64 {
	return 0.016708634 - T*(0.000042037+T*0.0000001267)
}

// MeanObliquity returns the mean obliquity of the ecliptic, 23°26′ plus an
// arcsecond term.
func MeanObliquity(T float64) float64 {
	seconds := 21.448 - T*(46.8150+T*(0.00059-T*0.001813))
	return unit.FromSexa(' ', 23, 26, seconds)
}

// EquationOfTime returns apparent minus mean solar time in hours.
func EquationOfTime(T, e, obliquity float64) float64 {
	L0 := degToRad(MeanLongitude(T))
	M := degToRad(MeanAnomaly(T))

	y := math.Tan(degToRad(obliquity / 2))
	y *= y

	eqTime := y*math.Sin(2*L0) -
		2*e*math.Sin(M) +
		4*e*y*math.Sin(M)*math.Cos(2*L0) -
		0.5*y*y*math.Sin(4*L0) -
		1.25*e*e*math.Sin(2*M)

	return radToDeg(eqTime) / 15
}

// TrueAnomaly returns the Sun's true anomaly. Like MeanAnomaly it is not
// range-reduced.
func TrueAnomaly(T float64) float64 {
	return MeanAnomaly(T) + EquationOfCenter(T)
}

// Declination returns the Sun's declination for an ecliptic longitude and
// latitude. Only the longitude term is used; latitude is taken as zero.
func Declination(longitude, latitude, obliquity float64) float64 {
	sinDec := math.Sin(degToRad(obliquity)) * math.Sin(degToRad(longitude))
	return radToDeg(math.Asin(sinDec))
}

// HourAngleLongitude returns the longitude the terminator hour angle is
// measured from. It currently returns the ecliptic longitude unchanged and
// applies no correction of its own, so the hour angle inherits only the
// nutation/aberration term already folded into ApparentLongitude.
func HourAngleLongitude(longitude, latitude, obliquity float64) float64 {
	return longitude
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

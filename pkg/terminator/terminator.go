// Package terminator computes the day/night terminator: the curve on the
// Earth's surface that separates the sunlit hemisphere from the dark one.
//
// The curve is returned as a ring of latitude/longitude points sorted by
// longitude and closed over the pole on the night side, ready to be drawn as a
// filled polygon on a map.
package terminator

import (
	"math"
	"sort"
	"time"

	"github.com/chrissnell/terminator/pkg/solar"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultResolution is the longitude step, in degrees, between curve vertices.
const DefaultResolution = 2.0

// MinResolution is the finest longitude step Compute will sample at. It caps a
// curve at 36,003 points.
const MinResolution = 0.01

// GeoPoint is a geographic position in degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Curve is the terminator ring for a single instant.
type Curve struct {
	Time        time.Time  `json:"time"`
	Resolution  float64    `json:"resolution"`
	Declination float64    `json:"declination"`
	HourAngle   float64    `json:"hour_angle"`
	Points      []GeoPoint `json:"points"`
}

// Options control New. The zero value computes the curve for the current
// time at DefaultResolution.
type Options struct {
	Time       time.Time
	Resolution float64
}

// New computes the terminator curve described by opts. A zero Time is
// resolved to the current time once, at the start of the call.
func New(opts Options) Curve {
	t := opts.Time
	if t.IsZero() {
		t = time.Now()
	}

	return Compute(t, opts.Resolution)
}

// Compute samples the terminator at t every resolution degrees of longitude,
// from -180 through 180. When resolution does not divide 360 the last sample
// falls short of 180 and no extra sample is added at 180. A resolution that is
// not positive is replaced by DefaultResolution, and a positive one below
// MinResolution is raised to MinResolution.
func Compute(t time.Time, resolution float64) Curve {
	t = t.UTC()
	if !(resolution > 0) {
		resolution = DefaultResolution
	} else if resolution < MinResolution {
		resolution = MinResolution
	}

	gmst := solar.GreenwichMeanSiderealTime(t)
	eph := solar.EphemerisAt(t)

	// Apparent sidereal time at Greenwich. The equation of time is added in
	// hours to a value in degrees.
	anomaly := degToRad(eph.TrueAnomaly)
	lon := degToRad(eph.ApparentLongitude)
	ast := gmst + eph.EquationOfTime - (0.0053*math.Sin(anomaly) - 0.0069*math.Sin(2*lon))

	hourAngle := ast - solar.HourAngleLongitude(eph.ApparentLongitude, 0, eph.Obliquity)

	points := make([]GeoPoint, 0, int(360/resolution)+3)
	for i := -180.0; i <= 180; i += resolution {
		lng := wrapNum(i+hourAngle, -180, 180)
		points = append(points, GeoPoint{
			Lat: Latitude(lng, eph.Declination),
			Lng: i,
		})
	}

	pole := -90.0
	if eph.Declination > 0 {
		pole = 90
	}
	points = append(points, GeoPoint{Lat: pole, Lng: 180}, GeoPoint{Lat: pole, Lng: -180})

	sort.SliceStable(points, func(a, b int) bool {
		return points[a].Lng < points[b].Lng
	})

	return Curve{
		Time:        t,
		Resolution:  resolution,
		Declination: eph.Declination,
		HourAngle:   hourAngle,
		Points:      points,
	}
}

// Latitude returns the terminator latitude at a longitude (relative to the
// hour angle) for the given solar declination. At zero declination the curve
// degenerates onto the meridians and the result saturates at ±90.
func Latitude(lng, declination float64) float64 {
	cosLng := math.Cos(degToRad(lng))
	tanDec := math.Tan(degToRad(declination))
	if tanDec == 0 {
		return math.Copysign(90, -cosLng)
	}
	return radToDeg(math.Atan(-cosLng / tanDec))
}

// NightPole returns +1 when the curve is closed over the north pole and -1
// when it is closed over the south pole.
func (c Curve) NightPole() int {
	if c.Declination > 0 {
		return 1
	}
	return -1
}

// Bounds is a latitude/longitude envelope in degrees.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// Bounds returns the envelope of the curve's points.
func (c Curve) Bounds() Bounds {
	if len(c.Points) == 0 {
		return Bounds{}
	}

	lats, lngs := c.split()
	return Bounds{
		South: floats.Min(lats),
		West:  floats.Min(lngs),
		North: floats.Max(lats),
		East:  floats.Max(lngs),
	}
}

// MeanLatitude returns the mean latitude of the sampled points, excluding the
// two pole-closing points. It is NaN for an empty curve.
func (c Curve) MeanLatitude() float64 {
	if len(c.Points) <= 2 {
		return math.NaN()
	}

	lats := make([]float64, 0, len(c.Points)-2)
	for _, p := range c.Points {
		if math.Abs(p.Lat) == 90 && math.Abs(p.Lng) == 180 {
			continue
		}
		lats = append(lats, p.Lat)
	}
	return stat.Mean(lats, nil)
}

// LatLngs returns the points as [lat, lng] pairs.
func (c Curve) LatLngs() [][2]float64 {
	out := make([][2]float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = [2]float64{p.Lat, p.Lng}
	}
	return out
}

func (c Curve) split() (lats, lngs []float64) {
	lats = make([]float64, len(c.Points))
	lngs = make([]float64, len(c.Points))
	for i, p := range c.Points {
		lats[i] = p.Lat
		lngs[i] = p.Lng
	}
	return lats, lngs
}

// wrapNum wraps x into [lo, hi).
func wrapNum(x, lo, hi float64) float64 {
	d := hi - lo
	return math.Mod(math.Mod(x-lo, d)+d, d) + lo
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/chrissnell/terminator/pkg/responseformat"
	"github.com/chrissnell/terminator/pkg/solar"
	"github.com/chrissnell/terminator/pkg/terminator"
)

func main() {
	var (
		timeStr    string
		resolution float64
		format     string
		ephemeris  bool
	)
	flag.StringVar(&timeStr, "time", "", "UTC time to compute the terminator for (RFC3339 format, e.g., 2024-06-21T12:00:00Z)")
	flag.Float64Var(&resolution, "resolution", terminator.DefaultResolution, "Longitude step between curve points, in degrees")
	flag.StringVar(&format, "format", "text", "Output format: text, json, geojson or msgpack")
	flag.BoolVar(&ephemeris, "ephemeris", false, "Print the solar ephemeris instead of the curve (text, json or msgpack)")
	flag.Parse()

	var t time.Time
	if timeStr != "" {
		var err error
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
	}

	if err := checkResolution(resolution); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	curve := terminator.New(terminator.Options{Time: t, Resolution: resolution})

	if err := render(os.Stdout, curve, format, ephemeris); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func checkResolution(resolution float64) error {
	if math.IsNaN(resolution) || resolution < terminator.MinResolution || resolution > 360 {
		return fmt.Errorf("resolution must be in [%v, 360], got %v", terminator.MinResolution, resolution)
	}
	return nil
}

// ephemerisSummary is the encoded form of -ephemeris output
type ephemerisSummary struct {
	Time       time.Time       `json:"time"`
	JulianDate float64         `json:"julian_date"`
	GMST       float64         `json:"gmst"`
	Ephemeris  solar.Ephemeris `json:"ephemeris"`
}

func render(w io.Writer, curve terminator.Curve, format string, ephemeris bool) error {
	switch format {
	case "text":
		if ephemeris {
			printEphemeris(w, curve.Time)
			return nil
		}
		printCurve(w, curve)
		return nil
	case "geojson":
		if ephemeris {
			return errors.New("-ephemeris cannot be combined with -format=geojson")
		}
		return responseformat.Encode(w, responseformat.GeoJSON, curve.GeoJSON())
	}

	f, err := responseformat.ParseFormat(format)
	if err != nil {
		return err
	}

	if ephemeris {
		return responseformat.Encode(w, f, ephemerisSummary{
			Time:       curve.Time,
			JulianDate: solar.JulianDate(curve.Time),
			GMST:       solar.GreenwichMeanSiderealTime(curve.Time),
			Ephemeris:  solar.EphemerisAt(curve.Time),
		})
	}
	return responseformat.Encode(w, f, curve)
}

func printCurve(w io.Writer, curve terminator.Curve) {
	pole := "south"
	if curve.NightPole() > 0 {
		pole = "north"
	}
	b := curve.Bounds()

	fmt.Fprintf(w, "Terminator for %s\n", curve.Time.Format(time.RFC3339))
	fmt.Fprintf(w, "  Resolution:   %g°\n", curve.Resolution)
	fmt.Fprintf(w, "  Declination:  %.3f°\n", curve.Declination)
	fmt.Fprintf(w, "  Hour angle:   %.3f°\n", curve.HourAngle)
	fmt.Fprintf(w, "  Night pole:   %s\n", pole)
	fmt.Fprintf(w, "  Bounds:       %.3f..%.3f lat, %.3f..%.3f lng\n", b.South, b.North, b.West, b.East)
	fmt.Fprintf(w, "  Mean lat:     %.3f°\n", curve.MeanLatitude())
	fmt.Fprintf(w, "  Points:       %d\n", len(curve.Points))
	fmt.Fprintf(w, "%10s %10s\n", "lat", "lng")
	for _, p := range curve.Points {
		fmt.Fprintf(w, "%10.3f %10.3f\n", p.Lat, p.Lng)
	}
}

func printEphemeris(w io.Writer, t time.Time) {
	eph := solar.EphemerisAt(t)
	lat, lng := solar.SubsolarPoint(t)

	fmt.Fprintf(w, "Solar ephemeris for %s\n", t.Format(time.RFC3339))
	fmt.Fprintf(w, "  Julian date:        %.6f\n", solar.JulianDate(t))
	fmt.Fprintf(w, "  Julian centuries:   %.10f\n", eph.Centuries)
	fmt.Fprintf(w, "  GMST:               %.4f°\n", solar.GreenwichMeanSiderealTime(t))
	fmt.Fprintf(w, "  Mean longitude:     %.4f°\n", eph.MeanLongitude)
	fmt.Fprintf(w, "  Mean anomaly:       %.4f°\n", eph.MeanAnomaly)
	fmt.Fprintf(w, "  Apparent longitude: %.4f°\n", eph.ApparentLongitude)
	fmt.Fprintf(w, "  Obliquity:          %.4f°\n", eph.Obliquity)
	fmt.Fprintf(w, "  Declination:        %.4f°\n", eph.Declination)
	fmt.Fprintf(w, "  Equation of time:   %.2f min\n", eph.EquationOfTime*60)
	fmt.Fprintf(w, "  Subsolar point:     %.3f, %.3f\n", lat, lng)
}

package solar

import (
	"math"
	"testing"
	"time"
)

func TestDaylight(t *testing.T) {
	tests := []struct {
		name             string
		latitude         float64
		longitude        float64
		time             time.Time
		expectSunrise    bool // false if polar conditions
		expectPolarDay   bool
		sunlit           bool
		sunriseApproxUTC int // approximate expected sunrise in UTC minutes (±15 min tolerance)
		sunsetApproxUTC  int // approximate expected sunset in UTC minutes (±15 min tolerance)
	}{
		{
			name:             "Equator at equinox",
			latitude:         0.0,
			longitude:        0.0,
			time:             time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
			expectSunrise:    true,
			sunlit:           true,
			sunriseApproxUTC: 367,  // ~6:07 AM UTC
			sunsetApproxUTC:  1087, // ~6:07 PM UTC
		},
		{
			name:             "Equator at midnight",
			latitude:         0.0,
			longitude:        0.0,
			time:             time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
			expectSunrise:    true,
			sunlit:           false,
			sunriseApproxUTC: 362,
			sunsetApproxUTC:  1082,
		},
		{
			name:             "Seattle WA summer solstice",
			latitude:         47.6,
			longitude:        -122.3,
			time:             time.Date(2024, 6, 21, 20, 0, 0, 0, time.UTC),
			expectSunrise:    true,
			sunlit:           true,
			sunriseApproxUTC: 738, // ~12:18 PM UTC (5:18 AM PDT)
			sunsetApproxUTC:  245, // ~4:05 AM UTC next day (9:05 PM PDT, wraps at midnight)
		},
		{
			name:             "London UK summer",
			latitude:         51.5,
			longitude:        -0.1,
			time:             time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC),
			expectSunrise:    true,
			sunlit:           true,
			sunriseApproxUTC: 230,
			sunsetApproxUTC:  1214,
		},
		{
			name:           "Arctic circle summer (polar day)",
			latitude:       70.0,
			longitude:      25.0,
			time:           time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC),
			expectSunrise:  false,
			expectPolarDay: true,
			sunlit:         true,
		},
		{
			name:          "Arctic circle winter (polar night)",
			latitude:      70.0,
			longitude:     25.0,
			time:          time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC),
			expectSunrise: false,
			sunlit:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Daylight(tt.latitude, tt.longitude, tt.time)

			if info.Sunlit != tt.sunlit {
				t.Errorf("Sunlit = %v, expected %v (elevation %.2f°)", info.Sunlit, tt.sunlit, info.ElevationDeg)
			}

			if !tt.expectSunrise {
				if info.SunriseMinutes != -1 || info.SunsetMinutes != -1 {
					t.Errorf("expected polar conditions (sunrise=-1, sunset=-1), got sunrise=%d, sunset=%d",
						info.SunriseMinutes, info.SunsetMinutes)
				}
				if info.PolarDay != tt.expectPolarDay || info.PolarNight == tt.expectPolarDay {
					t.Errorf("PolarDay = %v, PolarNight = %v, expected polar day %v",
						info.PolarDay, info.PolarNight, tt.expectPolarDay)
				}
				return
			}

			tolerance := 15
			if diff := int(math.Abs(float64(info.SunriseMinutes - tt.sunriseApproxUTC))); diff > tolerance && diff < 1440-tolerance {
				t.Errorf("sunrise=%d minutes, expected ~%d minutes (±%d)", info.SunriseMinutes, tt.sunriseApproxUTC, tolerance)
			}

			if diff := int(math.Abs(float64(info.SunsetMinutes - tt.sunsetApproxUTC))); diff > tolerance && diff < 1440-tolerance {
				t.Errorf("sunset=%d minutes, expected ~%d minutes (±%d)", info.SunsetMinutes, tt.sunsetApproxUTC, tolerance)
			}
		})
	}
}

func TestDaylightElevationAtNoon(t *testing.T) {
	// At local solar noon the Sun's elevation is 90 - |lat - dec|.
	ts := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	info := Daylight(45, 0, ts)
	dec := EphemerisAt(ts).Declination

	expected := 90 - math.Abs(45-dec)
	if math.Abs(info.ElevationDeg-expected) > 0.5 {
		t.Errorf("ElevationDeg = %.3f, expected ~%.3f", info.ElevationDeg, expected)
	}
}

func TestSubsolarPoint(t *testing.T) {
	tests := []struct {
		name   string
		time   time.Time
		latMin float64
		latMax float64
		lon    float64
	}{
		{
			name:   "June solstice noon UTC",
			time:   time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC),
			latMin: 23.3,
			latMax: 23.5,
			lon:    0,
		},
		{
			name:   "December solstice 18h UTC",
			time:   time.Date(2024, 12, 21, 18, 0, 0, 0, time.UTC),
			latMin: -23.5,
			latMax: -23.3,
			lon:    -90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon := SubsolarPoint(tt.time)
			if lat < tt.latMin || lat > tt.latMax {
				t.Errorf("latitude = %.4f, expected in range [%.2f, %.2f]", lat, tt.latMin, tt.latMax)
			}
			if math.Abs(lon-tt.lon) > 1 {
				t.Errorf("longitude = %.4f, expected ~%.1f", lon, tt.lon)
			}

			info := Daylight(lat, lon, tt.time)
			if info.ElevationDeg < 89 {
				t.Errorf("elevation at subsolar point = %.3f°, expected ~90°", info.ElevationDeg)
			}
		})
	}
}

func TestWrapLongitude(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{180, -180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{540, -180},
		{359.5, -0.5},
	}

	for _, tt := range tests {
		if got := WrapLongitude(tt.in); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("WrapLongitude(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestFormatSunTime(t *testing.T) {
	loc, _ := time.LoadLocation("America/Los_Angeles")

	tests := []struct {
		name       string
		utcMinutes int
		loc        *time.Location
		expected   string
	}{
		{
			name:       "Morning UTC to Pacific (winter/PST)",
			utcMinutes: 840, // 2:00 PM UTC
			loc:        loc,
			expected:   "6:00 AM", // FormatSunTime uses Jan 1 (PST, UTC-8)
		},
		{
			name:       "Negative minutes returns empty",
			utcMinutes: -1,
			loc:        loc,
			expected:   "",
		},
		{
			name:       "Noon UTC",
			utcMinutes: 720, // 12:00 PM UTC
			loc:        time.UTC,
			expected:   "12:00 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatSunTime(tt.utcMinutes, tt.loc)
			if result != tt.expected {
				t.Errorf("FormatSunTime(%d) = %q, expected %q", tt.utcMinutes, result, tt.expected)
			}
		})
	}
}

func TestDaylightConsistency(t *testing.T) {
	// Sunrise/sunset exist and the day is 4-20 hours long all year at 45°N.
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for doy := 0; doy < 365; doy++ {
		info := Daylight(45.0, 0.0, start.AddDate(0, 0, doy))

		if info.SunriseMinutes < 0 || info.SunsetMinutes < 0 {
			t.Errorf("day %d: unexpected polar conditions at 45°N", doy)
			continue
		}

		var dayLength int
		if info.SunsetMinutes > info.SunriseMinutes {
			dayLength = info.SunsetMinutes - info.SunriseMinutes
		} else {
			dayLength = (1440 - info.SunriseMinutes) + info.SunsetMinutes // crosses midnight
		}

		if dayLength < 240 || dayLength > 1200 {
			t.Errorf("day %d: unreasonable day length: %d minutes", doy, dayLength)
		}
	}
}

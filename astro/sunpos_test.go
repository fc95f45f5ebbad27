package astro

import (
	"math"
	"testing"
	"time"
)

func TestSunDeclinationAtSeasonExtremes(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		min   float64
		max   float64
	}{
		// Declination swings between about +-23.44 degrees over the
		// year, sitting at the extremes near the solstices and
		// crossing zero near the equinoxes.
		{"march equinox", 2024, time.March, 20, -1.0, 1.0},
		{"june solstice", 2024, time.June, 20, 23.0, 23.6},
		{"september equinox", 2024, time.September, 22, -1.0, 1.0},
		{"december solstice", 2024, time.December, 21, -23.6, -23.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl, _ := SunPosition(JulianDay(tt.year, tt.month, tt.day) + 0.5)
			if decl < tt.min || decl > tt.max {
				t.Errorf("declination = %.3f, want within [%.1f, %.1f]",
					decl, tt.min, tt.max)
			}
		})
	}
}

func TestEquationOfTimeBounded(t *testing.T) {
	// The equation of time stays within roughly +-16.5 minutes over a
	// full year.
	start := JulianDay(2024, time.January, 1)
	for day := 0; day < 366; day++ {
		_, eqt := SunPosition(start + float64(day))
		if math.Abs(eqt) > 0.3 {
			t.Fatalf("day %d: equation of time %.4f h out of range", day, eqt)
		}
	}
}

func TestEquationOfTimeSeasonalSign(t *testing.T) {
	// Sundials run about 16 minutes ahead of the clock in early
	// November and about 14 minutes behind in mid February.
	_, nov := SunPosition(JulianDay(2024, time.November, 3))
	if nov < 0.2 || nov > 0.3 {
		t.Errorf("november equation of time = %.4f h, want about +0.27", nov)
	}

	_, feb := SunPosition(JulianDay(2024, time.February, 12))
	if feb > -0.2 || feb < -0.3 {
		t.Errorf("february equation of time = %.4f h, want about -0.24", feb)
	}
}

func TestSunAngleTimeEquatorEquinox(t *testing.T) {
	// On an equinox at the equator the sun crosses the standard
	// rise/set depression close to 6h and 18h local solar time.
	jd := ObserverJulianDay(2024, time.March, 20, 0)

	rise := SunAngleTime(jd, RiseSetAngle(0), 6.0/24, 0, true)
	set := SunAngleTime(jd, RiseSetAngle(0), 18.0/24, 0, false)

	if math.Abs(rise-6) > 0.3 {
		t.Errorf("rise = %.3f, want about 6", rise)
	}
	if math.Abs(set-18) > 0.3 {
		t.Errorf("set = %.3f, want about 18", set)
	}
	if rise >= set {
		t.Errorf("rise %.3f not before set %.3f", rise, set)
	}
}

func TestSunAngleTimeUnreachableAngleIsNaN(t *testing.T) {
	// Astronomical dawn never happens at 65N around the June solstice.
	jd := ObserverJulianDay(2024, time.June, 21, 0)
	if got := SunAngleTime(jd, 18, 5.0/24, 65, true); !math.IsNaN(got) {
		t.Errorf("got %.3f, want NaN", got)
	}
}

func TestAsrTimeShadowFactors(t *testing.T) {
	// Asr always falls on the afternoon side of solar noon, and the
	// Hanafi double-shadow factor pushes it later than the standard.
	jd := ObserverJulianDay(2024, time.June, 21, 0)

	noon := SolarNoon(jd, 13.0/24)
	standard := AsrTime(jd, 1, 13.0/24, 35)
	hanafi := AsrTime(jd, 2, 13.0/24, 35)

	if standard <= noon {
		t.Errorf("standard asr %.3f not after noon %.3f", standard, noon)
	}
	if hanafi <= standard {
		t.Errorf("hanafi asr %.3f not after standard asr %.3f", hanafi, standard)
	}
}

func TestRiseSetAngle(t *testing.T) {
	tests := []struct {
		name      string
		elevation float64
		want      float64
	}{
		{"sea level", 0, 0.833},
		// 0.833 + 0.0347*sqrt(928)
		{"qom plateau", 928, 1.890},
		{"below sea level", -10, 0.833},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RiseSetAngle(tt.elevation)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("RiseSetAngle(%.0f) = %.4f, want %.4f",
					tt.elevation, got, tt.want)
			}
		})
	}
}

package astro

import "math"

// The solar formulas are published in degrees, so the trigonometry here
// stays degree-denominated instead of converting at every term.

func sinDeg(d float64) float64 { return math.Sin(d * math.Pi / 180) }
func cosDeg(d float64) float64 { return math.Cos(d * math.Pi / 180) }
func tanDeg(d float64) float64 { return math.Tan(d * math.Pi / 180) }

func arcsinDeg(x float64) float64 { return math.Asin(x) * 180 / math.Pi }
func arccosDeg(x float64) float64 { return math.Acos(x) * 180 / math.Pi }

// arccot in atan2 form: stays finite at x = 0 and lands in (0, 180) for
// negative x, where atan(1/x) would flip sign.
func arccotDeg(x float64) float64 { return math.Atan2(1, x) * 180 / math.Pi }

func arctan2Deg(y, x float64) float64 { return math.Atan2(y, x) * 180 / math.Pi }

// FixAngle wraps an angle in degrees into [0, 360). NaN passes through.
func FixAngle(deg float64) float64 { return fix(deg, 360) }

// FixHour wraps a fractional hour into [0, 24). NaN passes through.
func FixHour(hours float64) float64 { return fix(hours, 24) }

// TimeDiff returns the hours from a forward to b on the 24-hour circle.
func TimeDiff(a, b float64) float64 { return FixHour(b - a) }

func fix(a, mode float64) float64 {
	if math.IsNaN(a) {
		return a
	}
	a -= mode * math.Floor(a/mode)
	if a < 0 {
		return a + mode
	}
	return a
}

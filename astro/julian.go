// Package astro implements the solar geometry behind daily prayer times:
// Julian day conversion, the position of the sun and hour-angle solving.
package astro

import (
	"math"
	"time"
)

// JulianDay converts a calendar date to the Julian day number at midnight
// universal time.
func JulianDay(year int, month time.Month, day int) float64 {
	y, m := float64(year), float64(month)
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + float64(day) + b - 1524.5
}

// ObserverJulianDay returns the Julian day biased westward by the observer's
// longitude, so that day fractions added to it line up with local solar time.
func ObserverJulianDay(year int, month time.Month, day int, longitude float64) float64 {
	return JulianDay(year, month, day) - longitude/(15*24)
}

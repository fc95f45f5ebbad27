// Package main provides an example of the astro sun geometry next to the
// suncalc library for comparison.
package main

import (
	"fmt"
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/zamoosh/religious-times/astro"
)

func main() {
	// Qom, Iran
	lat, lng := 34.641159, 50.877456
	now := time.Now()

	jd := astro.ObserverJulianDay(now.Year(), now.Month(), now.Day(), lng)
	decl, eqt := astro.SunPosition(jd + 0.5)

	fmt.Printf("Sun geometry for %s at (%.4f, %.4f)\n\n", now.Format("2006-01-02"), lat, lng)
	fmt.Printf("Declination:      %7.3f deg\n", decl)
	fmt.Printf("Equation of time: %7.3f min\n", eqt*60)

	// Local solar hours; add timezone-lng/15 for clock time.
	rise := astro.SunAngleTime(jd, astro.RiseSetAngle(0), 6.0/24, lat, true)
	set := astro.SunAngleTime(jd, astro.RiseSetAngle(0), 18.0/24, lat, false)
	fmt.Printf("Sunrise (solar):  %7.3f h\n", rise)
	fmt.Printf("Sunset (solar):   %7.3f h\n", set)

	times := suncalc.GetTimes(now, lat, lng)
	fmt.Println("\nsuncalc sunrise:", times["sunrise"].Value.Format("15:04:05 MST"))
	fmt.Println("suncalc sunset: ", times["sunset"].Value.Format("15:04:05 MST"))

	pos := suncalc.GetPosition(now, lat, lng)
	fmt.Printf("suncalc position: azimuth %.2f deg, altitude %.2f deg\n",
		pos.Azimuth*180/math.Pi,
		pos.Altitude*180/math.Pi)
}

package astro

import "math"

// SunPosition returns the declination of the sun in degrees and the equation
// of time in hours for the given Julian day. It uses the low-order solar
// approximation from the US Naval Observatory, good to well under a minute
// of clock time.
func SunPosition(jd float64) (declination, eqOfTime float64) {
	d := jd - 2451545.0

	g := FixAngle(357.529 + 0.98560028*d)
	q := FixAngle(280.459 + 0.98564736*d)
	l := FixAngle(q + 1.915*sinDeg(g) + 0.020*sinDeg(2*g))

	e := 23.439 - 0.00000036*d

	ra := arctan2Deg(cosDeg(e)*sinDeg(l), cosDeg(l)) / 15
	eqOfTime = q/15 - FixHour(ra)
	declination = arcsinDeg(sinDeg(e) * sinDeg(l))

	return declination, eqOfTime
}

// SolarNoon returns local solar noon as a fractional hour, with the sun
// position evaluated at dayFrac of the day.
func SolarNoon(jd, dayFrac float64) float64 {
	_, eqt := SunPosition(jd + dayFrac)
	return FixHour(12 - eqt)
}

// SunAngleTime returns the fractional hour at which the sun stands angle
// degrees below the horizon at the given latitude, with the sun position
// evaluated at dayFrac of the day. Rising selects the morning crossing,
// otherwise the evening one. The result is NaN on days the sun never
// reaches the angle.
func SunAngleTime(jd, angle, dayFrac, latitude float64, rising bool) float64 {
	decl, eqt := SunPosition(jd + dayFrac)
	noon := FixHour(12 - eqt)

	t := arccosDeg((-sinDeg(angle)-sinDeg(decl)*sinDeg(latitude))/
		(cosDeg(decl)*cosDeg(latitude))) / 15
	if rising {
		return noon - t
	}
	return noon + t
}

// AsrTime returns the fractional hour at which an object's shadow equals
// factor times its length plus its noon shadow. Factor 1 is the standard
// juristic rule, factor 2 the Hanafi one.
func AsrTime(jd, factor, dayFrac, latitude float64) float64 {
	decl, _ := SunPosition(jd + dayFrac)
	angle := -arccotDeg(factor + tanDeg(math.Abs(latitude-decl)))
	return SunAngleTime(jd, angle, dayFrac, latitude, false)
}

// RiseSetAngle returns the sun depression angle for sunrise and sunset seen
// from the given elevation in meters, covering atmospheric refraction and
// the dip of the horizon. Elevations below sea level count as zero.
func RiseSetAngle(elevation float64) float64 {
	if elevation < 0 {
		elevation = 0
	}
	return 0.833 + 0.0347*math.Sqrt(elevation)
}

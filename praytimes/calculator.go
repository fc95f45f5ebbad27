package praytimes

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/zamoosh/religious-times/astro"
)

// Calculator computes the nine daily times for a date and location. It is
// safe for concurrent use: configuration writes take the lock and every
// computation works on a snapshot taken under it.
type Calculator struct {
	mu         sync.RWMutex
	method     string
	settings   Params
	offsets    map[TimeName]float64
	format     TimeFormat
	iterations int
	log        zerolog.Logger
}

// New returns a Calculator for the named method on top of the built-in
// defaults. Unknown method IDs select the default method instead; this
// construction-time fallback is silent since no logger is attached yet.
// SetMethod calls made after SetLogger warn on the fallback.
func New(methodID string) *Calculator {
	c := &Calculator{
		settings:   baseParams(),
		offsets:    make(map[TimeName]float64, len(timeLabels)),
		format:     Format24Hour,
		iterations: 1,
		log:        zerolog.Nop(),
	}
	for _, name := range TimeNames() {
		c.offsets[name] = 0
	}
	c.SetMethod(methodID)
	return c
}

// SetMethod switches the active calculation method and merges its
// parameters into the current settings. Unknown IDs select the default
// method instead.
func (c *Calculator) SetMethod(methodID string) {
	m, ok := MethodByID(methodID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !ok {
		c.log.Warn().
			Str("method", methodID).
			Str("fallback", DefaultMethod).
			Msg("unknown calculation method")
		m, _ = MethodByID(DefaultMethod)
	}
	c.method = m.ID
	c.settings = c.settings.merge(m.Params)
}

// Adjust overrides individual calculation parameters. Only the fields set
// in p change; everything else keeps its current value.
func (c *Calculator) Adjust(p Params) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = c.settings.merge(p)
}

// Tune sets per-time offsets in minutes, added to the final times. Entries
// overwrite the previous offset for that name.
func (c *Calculator) Tune(offsets map[TimeName]float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, min := range offsets {
		c.offsets[name] = min
	}
}

// SetTimeFormat sets the rendering used by GetTimes.
func (c *Calculator) SetTimeFormat(f TimeFormat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.format = f
}

// SetIterations sets how many refinement passes run over the day's
// estimates. Values below 1 are raised to 1.
func (c *Calculator) SetIterations(n int) {
	if n < 1 {
		n = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.iterations = n
}

// SetLogger attaches a logger for calculation diagnostics.
func (c *Calculator) SetLogger(l zerolog.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = l
}

// Method returns the active method ID.
func (c *Calculator) Method() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.method
}

// Settings returns a copy of the parameters in force.
func (c *Calculator) Settings() Params {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// Offsets returns a copy of the tuning offsets in minutes.
func (c *Calculator) Offsets() map[TimeName]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[TimeName]float64, len(c.offsets))
	for name, min := range c.offsets {
		out[name] = min
	}
	return out
}

// GetTimes computes the times for the calendar day of date at the given
// coordinates and renders them in the calculator's time format. timezone is
// the clock offset from UTC in hours; dst adds one more hour. All nine
// names are always present; times the sun never reaches render as
// InvalidTime.
func (c *Calculator) GetTimes(date time.Time, loc Coordinates, timezone float64, dst bool) map[TimeName]string {
	c.mu.RLock()
	format := c.format
	c.mu.RUnlock()

	return c.Compute(date, loc, timezone, dst).Format(format)
}

// Compute is GetTimes without the final formatting: it returns the raw
// table of fractional hours, with NaN marking undefined times.
func (c *Calculator) Compute(date time.Time, loc Coordinates, timezone float64, dst bool) TimeTable {
	c.mu.RLock()
	cp := computation{
		method:     c.method,
		s:          c.settings,
		iterations: c.iterations,
		log:        c.log,
	}
	offsets := make(map[TimeName]float64, len(c.offsets))
	for name, min := range c.offsets {
		offsets[name] = min
	}
	c.mu.RUnlock()

	if dst {
		timezone++
	}
	year, month, day := date.Date()

	cp.loc = loc
	cp.timezone = timezone
	cp.jd = astro.ObserverJulianDay(year, month, day, loc.Longitude)

	cp.log.Debug().
		Str("method", cp.method).
		Str("date", date.Format("2006-01-02")).
		Float64("latitude", loc.Latitude).
		Float64("longitude", loc.Longitude).
		Float64("timezone", timezone).
		Msg("computing prayer times")

	times := cp.run()
	for name := range times {
		times[name] += offsets[name] / 60
	}
	return times
}

// computation is one call's snapshot of everything the pipeline needs.
type computation struct {
	method     string
	s          Params
	loc        Coordinates
	timezone   float64
	jd         float64
	iterations int
	log        zerolog.Logger
}

func (cp *computation) run() TimeTable {
	times := TimeTable{
		Imsak:   5,
		Fajr:    5,
		Sunrise: 6,
		Dhuhr:   12,
		Asr:     13,
		Sunset:  18,
		Maghrib: 18,
		Isha:    18,
	}
	for i := 0; i < cp.iterations; i++ {
		cp.pass(times)
	}
	cp.adjust(times)
	times[Midnight] = cp.midnight(times)
	return times
}

// pass refines each solved time once, feeding the previous estimate back in
// as the instant the sun position is evaluated at.
func (cp *computation) pass(times TimeTable) {
	lat := cp.loc.Latitude
	horizon := astro.RiseSetAngle(cp.loc.Elevation)

	times[Imsak] = astro.SunAngleTime(cp.jd, cp.s.Imsak.Value, times[Imsak]/24, lat, true)
	times[Fajr] = astro.SunAngleTime(cp.jd, cp.s.Fajr.Value, times[Fajr]/24, lat, true)
	times[Sunrise] = astro.SunAngleTime(cp.jd, horizon, times[Sunrise]/24, lat, true)
	times[Dhuhr] = astro.SolarNoon(cp.jd, times[Dhuhr]/24)
	times[Asr] = astro.AsrTime(cp.jd, cp.s.Asr, times[Asr]/24, lat)
	times[Sunset] = astro.SunAngleTime(cp.jd, horizon, times[Sunset]/24, lat, false)
	times[Maghrib] = astro.SunAngleTime(cp.jd, cp.s.Maghrib.Value, times[Maghrib]/24, lat, false)
	times[Isha] = astro.SunAngleTime(cp.jd, cp.s.Isha.Value, times[Isha]/24, lat, false)
}

// adjust turns local solar times into clock times, clamps unreachable
// twilights and resolves minute-style parameters against their reference
// times.
func (cp *computation) adjust(times TimeTable) {
	tz := cp.timezone - cp.loc.Longitude/15
	for name, v := range times {
		times[name] = v + tz
	}

	if cp.s.HighLats != HighLatNone {
		cp.adjustHighLats(times)
	}

	if cp.s.Imsak.Kind == KindMinutes {
		times[Imsak] = times[Fajr] - cp.s.Imsak.Value/60
	}
	if cp.s.Maghrib.Kind == KindMinutes {
		times[Maghrib] = times[Sunset] - cp.s.Maghrib.Value/60
	}
	if cp.s.Isha.Kind == KindMinutes {
		times[Isha] = times[Maghrib] - cp.s.Isha.Value/60
	}

	// dhuhr carries a minute offset from solar noon.
	times[Dhuhr] += cp.s.Dhuhr.Value / 60
}

// adjustHighLats bounds the twilight times by their share of the night.
func (cp *computation) adjustHighLats(times TimeTable) {
	night := astro.TimeDiff(times[Sunset], times[Sunrise])

	times[Imsak] = cp.clampToNight(Imsak, times[Imsak], times[Sunrise], cp.s.Imsak.Value, night, true)
	times[Fajr] = cp.clampToNight(Fajr, times[Fajr], times[Sunrise], cp.s.Fajr.Value, night, true)
	times[Isha] = cp.clampToNight(Isha, times[Isha], times[Sunset], cp.s.Isha.Value, night, false)
	times[Maghrib] = cp.clampToNight(Maghrib, times[Maghrib], times[Sunset], cp.s.Maghrib.Value, night, false)
}

// clampToNight pulls a twilight time back to its allowed night portion when
// it is undefined or drifted past it. Rising times hang off sunrise,
// setting times off sunset.
func (cp *computation) clampToNight(name TimeName, t, base, angle, night float64, rising bool) float64 {
	portion := cp.nightPortion(angle, night)

	diff := astro.TimeDiff(base, t)
	if rising {
		diff = astro.TimeDiff(t, base)
	}

	if math.IsNaN(t) || diff > portion {
		cp.log.Debug().
			Str("time", string(name)).
			Float64("portion", portion).
			Msg("clamped to night portion")
		if rising {
			return base - portion
		}
		return base + portion
	}
	return t
}

// nightPortion sizes the allowed distance from sunrise or sunset for one
// twilight parameter value.
func (cp *computation) nightPortion(angle, night float64) float64 {
	portion := 1.0 / 2
	switch cp.s.HighLats {
	case HighLatAngleBased:
		portion = angle / 60
	case HighLatOneSeventh:
		portion = 1.0 / 7
	}
	return portion * night
}

func (cp *computation) midnight(times TimeTable) float64 {
	if cp.s.Midnight == MidnightJafari {
		return times[Sunset] + astro.TimeDiff(times[Sunset], times[Fajr])/2
	}
	return times[Sunset] + astro.TimeDiff(times[Sunset], times[Sunrise])/2
}

// Package timetable turns a location configuration into daily and monthly
// prayer timetables.
package timetable

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/zamoosh/religious-times/praytimes"
)

// Day holds the computed times for a single calendar date, both formatted
// and as raw hours.
type Day struct {
	Date  time.Time
	Times map[praytimes.TimeName]string
	Raw   praytimes.TimeTable
}

// Generator produces daily and monthly prayer timetables for a configured
// location.
type Generator struct {
	config *Config
	calc   *praytimes.Calculator
	zone   *time.Location
	format praytimes.TimeFormat
}

// NewGenerator builds a generator from the given configuration.
func NewGenerator(config *Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	g := &Generator{config: config, format: praytimes.Format24Hour}
	if config.TimeFormat != "" {
		g.format = praytimes.TimeFormat(config.TimeFormat)
	}

	if config.Timezone != "" {
		zone, err := time.LoadLocation(config.Timezone)
		if err != nil {
			return nil, fmt.Errorf("failed to load timezone %q: %w", config.Timezone, err)
		}
		g.zone = zone
	}

	calc := praytimes.New(config.Method)
	if overrides := config.Overrides(); len(overrides) > 0 {
		calc.Adjust(praytimes.ParamsFromStrings(overrides))
	}
	if len(config.Tune) > 0 {
		offsets := make(map[praytimes.TimeName]float64, len(config.Tune))
		for name, minutes := range config.Tune {
			offsets[praytimes.TimeName(name)] = minutes
		}
		calc.Tune(offsets)
	}
	if config.Passes > 0 {
		calc.SetIterations(config.Passes)
	}
	calc.SetTimeFormat(g.format)
	g.calc = calc

	return g, nil
}

// SetLogger attaches a logger to the underlying calculator.
func (g *Generator) SetLogger(logger zerolog.Logger) {
	g.calc.SetLogger(logger)
}

// Calculator exposes the configured calculator.
func (g *Generator) Calculator() *praytimes.Calculator {
	return g.calc
}

// UTCOffset returns the UTC offset in hours in force on the given date.
// With an IANA zone the offset is sampled at local noon, so the day of a
// daylight saving switch already carries the post-switch offset. With a
// fixed offset the DST flag adds one hour.
func (g *Generator) UTCOffset(date time.Time) float64 {
	if g.zone == nil {
		offset := g.config.UTCOffset
		if g.config.DST {
			offset++
		}
		return offset
	}

	year, month, day := date.Date()
	_, seconds := time.Date(year, month, day, 12, 0, 0, 0, g.zone).Zone()
	return float64(seconds) / 3600
}

// Daily computes the timetable for a single date.
func (g *Generator) Daily(date time.Time) Day {
	coords := praytimes.Coordinates{
		Latitude:  g.config.Latitude,
		Longitude: g.config.Longitude,
		Elevation: g.config.Elevation,
	}

	raw := g.calc.Compute(date, coords, g.UTCOffset(date), false)
	return Day{
		Date:  time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Times: raw.Format(g.format),
		Raw:   raw,
	}
}

// Monthly computes one Day per calendar date of the given month.
func (g *Generator) Monthly(year int, month time.Month) []Day {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	days := make([]Day, 0, last)
	for d := 1; d <= last; d++ {
		days = append(days, g.Daily(time.Date(year, month, d, 0, 0, 0, 0, time.UTC)))
	}
	return days
}

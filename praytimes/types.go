package praytimes

import (
	"strconv"
	"strings"
)

// TimeName identifies one of the nine daily times.
type TimeName string

const (
	Imsak    TimeName = "imsak"
	Fajr     TimeName = "fajr"
	Sunrise  TimeName = "sunrise"
	Dhuhr    TimeName = "dhuhr"
	Asr      TimeName = "asr"
	Sunset   TimeName = "sunset"
	Maghrib  TimeName = "maghrib"
	Isha     TimeName = "isha"
	Midnight TimeName = "midnight"
)

// TimeNames lists the nine daily times in order of occurrence.
func TimeNames() []TimeName {
	return []TimeName{Imsak, Fajr, Sunrise, Dhuhr, Asr, Sunset, Maghrib, Isha, Midnight}
}

var timeLabels = map[TimeName]string{
	Imsak:    "Imsak",
	Fajr:     "Fajr",
	Sunrise:  "Sunrise",
	Dhuhr:    "Dhuhr",
	Asr:      "Asr",
	Sunset:   "Sunset",
	Maghrib:  "Maghrib",
	Isha:     "Isha",
	Midnight: "Midnight",
}

// Label returns the English display name of the time.
func (n TimeName) Label() string {
	if l, ok := timeLabels[n]; ok {
		return l
	}
	return string(n)
}

// Coordinates locates the observer. Elevation is meters above sea level and
// widens the sunrise/sunset depression angle; it defaults to sea level.
type Coordinates struct {
	Latitude  float64
	Longitude float64
	Elevation float64
}

// TimeTable maps each daily time to a fractional hour of local clock time.
// Entries the sun never reaches on that day are NaN.
type TimeTable map[TimeName]float64

// ParamKind says how a TimeParam is meant: as a sun angle below the horizon
// or as fixed minutes relative to a reference time.
type ParamKind int

const (
	// KindUnset leaves the current value untouched when a partial
	// parameter set is applied.
	KindUnset ParamKind = iota
	KindAngle
	KindMinutes
)

// TimeParam is a single calculation parameter. The zero value is unset.
type TimeParam struct {
	Kind  ParamKind
	Value float64
}

// Angle builds an angle parameter in degrees below the horizon.
func Angle(degrees float64) TimeParam {
	return TimeParam{Kind: KindAngle, Value: degrees}
}

// Minutes builds a fixed minute-offset parameter.
func Minutes(min float64) TimeParam {
	return TimeParam{Kind: KindMinutes, Value: min}
}

// String renders the parameter in the notation ParseParam reads.
func (p TimeParam) String() string {
	switch p.Kind {
	case KindAngle:
		return strconv.FormatFloat(p.Value, 'g', -1, 64)
	case KindMinutes:
		return strconv.FormatFloat(p.Value, 'g', -1, 64) + " min"
	}
	return ""
}

// MidnightMode selects how the midnight point is derived.
type MidnightMode string

const (
	// MidnightStandard is the middle of sunset to sunrise.
	MidnightStandard MidnightMode = "Standard"
	// MidnightJafari is the middle of sunset to fajr.
	MidnightJafari MidnightMode = "Jafari"
)

// HighLatMode selects the night-portion rule for latitudes where a twilight
// angle may never be reached.
type HighLatMode string

const (
	HighLatNone        HighLatMode = "None"
	HighLatNightMiddle HighLatMode = "NightMiddle"
	HighLatAngleBased  HighLatMode = "AngleBased"
	HighLatOneSeventh  HighLatMode = "OneSeventh"
)

// Shadow-length factors for the asr calculation.
const (
	AsrStandard float64 = 1
	AsrHanafi   float64 = 2
)

// Params is a set of calculation parameters. Zero-valued fields mean "leave
// unchanged" when the set is applied on top of another, which is how method
// definitions and Adjust express partial overrides.
type Params struct {
	Imsak    TimeParam
	Fajr     TimeParam
	Dhuhr    TimeParam
	Asr      float64 // shadow factor, 0 = unset
	Maghrib  TimeParam
	Isha     TimeParam
	Midnight MidnightMode
	HighLats HighLatMode
}

// merge returns base with the set fields of p applied on top.
func (base Params) merge(p Params) Params {
	if p.Imsak.Kind != KindUnset {
		base.Imsak = p.Imsak
	}
	if p.Fajr.Kind != KindUnset {
		base.Fajr = p.Fajr
	}
	if p.Dhuhr.Kind != KindUnset {
		base.Dhuhr = p.Dhuhr
	}
	if p.Asr != 0 {
		base.Asr = p.Asr
	}
	if p.Maghrib.Kind != KindUnset {
		base.Maghrib = p.Maghrib
	}
	if p.Isha.Kind != KindUnset {
		base.Isha = p.Isha
	}
	if p.Midnight != "" {
		base.Midnight = p.Midnight
	}
	if p.HighLats != "" {
		base.HighLats = p.HighLats
	}
	return base
}

// ParseParam reads a parameter in the notation used by method tables and
// configuration files: a bare number is an angle in degrees, a number
// followed by "min" is a minute offset. A malformed number counts as 0.
func ParseParam(s string) TimeParam {
	if strings.Contains(s, "min") {
		return Minutes(leadingNumber(s))
	}
	return Angle(leadingNumber(s))
}

// ParseAsrFactor resolves an asr rule name or literal shadow factor.
func ParseAsrFactor(s string) float64 {
	switch strings.TrimSpace(s) {
	case "Standard":
		return AsrStandard
	case "Hanafi":
		return AsrHanafi
	}
	return leadingNumber(s)
}

// ParseHighLat resolves a high-latitude rule name. Unknown names behave as
// NightMiddle, the built-in default.
func ParseHighLat(s string) HighLatMode {
	switch m := HighLatMode(strings.TrimSpace(s)); m {
	case HighLatNone, HighLatNightMiddle, HighLatAngleBased, HighLatOneSeventh:
		return m
	}
	return HighLatNightMiddle
}

// ParseMidnight resolves a midnight rule name. Anything but Jafari is the
// standard rule.
func ParseMidnight(s string) MidnightMode {
	if MidnightMode(strings.TrimSpace(s)) == MidnightJafari {
		return MidnightJafari
	}
	return MidnightStandard
}

// ParamsFromStrings builds a partial parameter set from string notation,
// keyed by setting name (imsak, fajr, dhuhr, asr, maghrib, isha, midnight,
// highLats). Unknown names are ignored.
func ParamsFromStrings(raw map[string]string) Params {
	var p Params
	for name, value := range raw {
		switch name {
		case "imsak":
			p.Imsak = ParseParam(value)
		case "fajr":
			p.Fajr = ParseParam(value)
		case "dhuhr":
			p.Dhuhr = ParseParam(value)
		case "asr":
			p.Asr = ParseAsrFactor(value)
		case "maghrib":
			p.Maghrib = ParseParam(value)
		case "isha":
			p.Isha = ParseParam(value)
		case "midnight":
			p.Midnight = ParseMidnight(value)
		case "highLats":
			p.HighLats = ParseHighLat(value)
		}
	}
	return p
}

// leadingNumber extracts the numeric prefix of s, or 0 when there is none.
func leadingNumber(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || c == '.' || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

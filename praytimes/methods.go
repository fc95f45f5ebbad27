package praytimes

import "sort"

// Method is a named calculation convention carrying the parameters that
// distinguish it from the others.
type Method struct {
	ID     string
	Name   string
	Params Params
}

// DefaultMethod is selected when an unknown method ID is asked for.
const DefaultMethod = "MWL"

var methods = map[string]Method{
	"MWL": {
		ID:     "MWL",
		Name:   "Muslim World League",
		Params: Params{Fajr: Angle(18), Isha: Angle(17)},
	},
	"ISNA": {
		ID:     "ISNA",
		Name:   "Islamic Society of North America (ISNA)",
		Params: Params{Fajr: Angle(15), Isha: Angle(15)},
	},
	"Egypt": {
		ID:     "Egypt",
		Name:   "Egyptian General Authority of Survey",
		Params: Params{Fajr: Angle(19.5), Isha: Angle(17.5)},
	},
	"Makkah": {
		ID:     "Makkah",
		Name:   "Umm Al-Qura University, Makkah",
		Params: Params{Fajr: Angle(18.5), Isha: Minutes(90)},
	},
	"Karachi": {
		ID:     "Karachi",
		Name:   "University of Islamic Sciences, Karachi",
		Params: Params{Fajr: Angle(18), Isha: Angle(18)},
	},
	"Tehran": {
		ID:   "Tehran",
		Name: "Institute of Geophysics, University of Tehran",
		Params: Params{
			Fajr:     Angle(17.7),
			Isha:     Angle(14),
			Maghrib:  Angle(4.5),
			Midnight: MidnightJafari,
		},
	},
	"Jafari": {
		ID:   "Jafari",
		Name: "Shia Ithna-Ashari, Leva Institute, Qum",
		Params: Params{
			Fajr:     Angle(16),
			Isha:     Angle(14),
			Maghrib:  Angle(4),
			Midnight: MidnightJafari,
		},
	},
}

func init() {
	for id, m := range methods {
		methods[id] = completeMethod(m)
	}
}

// completeMethod fills the parameters every method must carry. Applying it
// twice changes nothing.
func completeMethod(m Method) Method {
	if m.Params.Maghrib.Kind == KindUnset {
		m.Params.Maghrib = Minutes(0)
	}
	if m.Params.Midnight == "" {
		m.Params.Midnight = MidnightStandard
	}
	return m
}

// baseParams returns the settings in force before any method is applied.
func baseParams() Params {
	return Params{
		Imsak:    Minutes(10),
		Dhuhr:    Minutes(0),
		Asr:      AsrStandard,
		HighLats: HighLatNightMiddle,
	}
}

// MethodByID looks up a calculation method. ok is false for unknown IDs.
func MethodByID(id string) (Method, bool) {
	m, ok := methods[id]
	return m, ok
}

// Methods returns a snapshot of the registry sorted by ID.
func Methods() []Method {
	out := make([]Method, 0, len(methods))
	for _, m := range methods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

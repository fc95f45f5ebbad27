package praytimes

import (
	"fmt"
	"math"
	"strconv"

	"github.com/zamoosh/religious-times/astro"
)

// TimeFormat selects how fractional hours are rendered.
type TimeFormat string

const (
	Format24Hour TimeFormat = "24h"
	Format12Hour TimeFormat = "12h"
	// Format12HourNS is the 12-hour clock without the am/pm suffix.
	Format12HourNS TimeFormat = "12hNS"
	// FormatFloat renders the raw fractional hour unrounded.
	FormatFloat TimeFormat = "Float"
)

// InvalidTime marks a time the sun never reaches on the given day.
const InvalidTime = "-----"

// FormatTime renders a fractional hour. Undefined times render as
// InvalidTime in every format. The clock formats round to the nearest
// minute and wrap into the day.
func FormatTime(hours float64, f TimeFormat) string {
	if math.IsNaN(hours) {
		return InvalidTime
	}
	if f == FormatFloat {
		return strconv.FormatFloat(hours, 'g', -1, 64)
	}

	hours = astro.FixHour(hours + 0.5/60)
	h := int(hours)
	m := int((hours - float64(h)) * 60)

	if f == Format24Hour {
		return fmt.Sprintf("%02d:%02d", h, m)
	}

	clock := fmt.Sprintf("%d:%02d", (h+11)%12+1, m)
	if f == Format12Hour {
		if h < 12 {
			return clock + "am"
		}
		return clock + "pm"
	}
	return clock
}

// Format renders the whole table in the given format, keeping every entry.
func (tt TimeTable) Format(f TimeFormat) map[TimeName]string {
	out := make(map[TimeName]string, len(tt))
	for name, v := range tt {
		out[name] = FormatTime(v, f)
	}
	return out
}

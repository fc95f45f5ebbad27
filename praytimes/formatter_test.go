package praytimes

import (
	"math"
	"testing"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name   string
		hours  float64
		format TimeFormat
		want   string
	}{
		// 13.999999 + half a minute of rounding slack lands on 14:00.
		{"rounds up", 13.999999, Format24Hour, "14:00"},
		{"plain 24h", 5.5, Format24Hour, "05:30"},
		{"midnight 24h", 0.0, Format24Hour, "00:00"},
		// 23.9999 rounds past the day boundary and wraps.
		{"wraps past midnight", 23.9999, Format24Hour, "00:00"},
		{"hour zero is twelve am", 0.0, Format12Hour, "12:00am"},
		{"afternoon 12h", 13.5, Format12Hour, "1:30pm"},
		{"noon 12h", 12.0, Format12Hour, "12:00pm"},
		{"morning 12h no suffix", 9.25, Format12HourNS, "9:15"},
		{"float passthrough", 13.5, FormatFloat, "13.5"},
		{"float unrounded", 13.999999, FormatFloat, "13.999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(tt.hours, tt.format); got != tt.want {
				t.Errorf("FormatTime(%v, %q) = %q, want %q", tt.hours, tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatTimeNaN(t *testing.T) {
	for _, f := range []TimeFormat{Format24Hour, Format12Hour, Format12HourNS, FormatFloat} {
		if got := FormatTime(math.NaN(), f); got != InvalidTime {
			t.Errorf("FormatTime(NaN, %q) = %q, want %q", f, got, InvalidTime)
		}
	}
}

func TestTimeTableFormat(t *testing.T) {
	tt := TimeTable{
		Fajr:    5.25,
		Sunrise: math.NaN(),
	}

	out := tt.Format(Format24Hour)
	if len(out) != 2 {
		t.Fatalf("formatted table has %d entries, want 2", len(out))
	}
	if out[Fajr] != "05:15" {
		t.Errorf("fajr = %q, want 05:15", out[Fajr])
	}
	if out[Sunrise] != InvalidTime {
		t.Errorf("sunrise = %q, want %q", out[Sunrise], InvalidTime)
	}
}

// Package praytimes calculates Islamic prayer times for any date, location
// and timezone.
//
// Nine times are produced per day: imsak, fajr, sunrise, dhuhr, asr,
// sunset, maghrib, isha and midnight. A calculation method sets the
// twilight angles and rules; individual parameters can be adjusted and each
// time can be tuned by minutes on top.
//
// Basic Usage:
//
//	calc := praytimes.New("Tehran")
//
//	qom := praytimes.Coordinates{
//		Latitude:  34.641159,
//		Longitude: 50.877456,
//	}
//
//	times := calc.GetTimes(time.Now(), qom, 3.5, false)
//	for _, name := range praytimes.TimeNames() {
//		fmt.Printf("%-8s %s\n", name.Label(), times[name])
//	}
//
// Built-in methods: MWL, ISNA, Egypt, Makkah, Karachi, Tehran and Jafari.
// Unknown method IDs silently select MWL; the calculator always returns a
// full table and marks times the sun never reaches (polar twilight) as
// "-----" unless a high-latitude rule resolves them.
//
// GetTimes renders strings in the configured time format. Compute returns
// the same table as raw fractional hours with NaN for undefined entries,
// for callers doing their own arithmetic or formatting.
//
// A Calculator is safe for concurrent use. Configuration calls (SetMethod,
// Adjust, Tune) serialize against in-flight computations, which always work
// on a consistent snapshot of the settings.
package praytimes

// Example demonstrating the timetable generator: a daily table for the
// default location and a short excerpt of the current month.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/zamoosh/religious-times/praytimes"
	"github.com/zamoosh/religious-times/timetable"
)

func main() {
	config := timetable.DefaultConfig()

	generator, err := timetable.NewGenerator(config)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	today := time.Now()
	day := generator.Daily(today)

	fmt.Printf("Prayer times for %s on %s (UTC%+.1f)\n\n",
		config.Location, day.Date.Format("2006-01-02"), generator.UTCOffset(today))
	for _, name := range praytimes.TimeNames() {
		fmt.Printf("  %-9s %s\n", name.Label(), day.Times[name])
	}

	fmt.Println("\nFirst week of the month:")
	for _, d := range generator.Monthly(today.Year(), today.Month())[:7] {
		fmt.Printf("  %s  fajr %s  dhuhr %s  maghrib %s\n",
			d.Date.Format("2006-01-02"),
			d.Times[praytimes.Fajr], d.Times[praytimes.Dhuhr], d.Times[praytimes.Maghrib])
	}
}

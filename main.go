// Package main provides the religious-times command line interface.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/zamoosh/religious-times/praytimes"
	"github.com/zamoosh/religious-times/timetable"
)

func main() {
	// Command line flags
	var (
		configFile = flag.String("config", "config.json", "Configuration file path")
		date       = flag.String("date", "", "Date to compute (YYYY-MM-DD, default today)")
		month      = flag.String("month", "", "Month to tabulate (YYYY-MM)")
		method     = flag.String("method", "", "Calculation method override (see -list-methods)")
		format     = flag.String("format", "", "Time format override: 24h, 12h, 12hNS or Float")
		list       = flag.Bool("list-methods", false, "List the built-in calculation methods")
		save       = flag.Bool("save-config", false, "Write the active configuration to the config file")
		help       = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if *list {
		listMethods()
		return
	}

	config, found, err := timetable.LoadConfigFile(*configFile)
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		return
	}

	logger := newLogger(config.LogLevel)
	if !found {
		logger.Warn().Str("path", *configFile).Msg("config file not found, using built-in defaults")
	}

	if *method != "" {
		config.Method = *method
	}
	if *format != "" {
		config.TimeFormat = *format
	}

	if *save {
		if err := config.SaveConfig(*configFile); err != nil {
			fmt.Println("Error saving configuration:", err)
			return
		}
		fmt.Printf("Configuration written to %s\n", *configFile)
		return
	}

	generator, err := timetable.NewGenerator(config)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	generator.SetLogger(logger)

	if *month != "" {
		when, err := time.Parse("2006-01", *month)
		if err != nil {
			fmt.Println("Error parsing month:", err)
			return
		}
		runMonthly(generator, config, when.Year(), when.Month())
		return
	}

	when := time.Now()
	if *date != "" {
		when, err = time.Parse("2006-01-02", *date)
		if err != nil {
			fmt.Println("Error parsing date:", err)
			return
		}
	}
	runDaily(generator, config, when)
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}

func runDaily(generator *timetable.Generator, config *timetable.Config, date time.Time) {
	day := generator.Daily(date)

	fmt.Printf("\nPrayer times for %s on %s (%s method, UTC%+.2f)\n\n",
		config.Location, day.Date.Format("2006-01-02"),
		generator.Calculator().Method(), generator.UTCOffset(date))

	fmt.Println("┌───────────┬───────────┐")
	fmt.Println("│  Prayer   │   Time    │")
	fmt.Println("├───────────┼───────────┤")
	for _, name := range praytimes.TimeNames() {
		fmt.Printf("│ %-9s │ %-9s │\n", name.Label(), day.Times[name])
	}
	fmt.Println("└───────────┴───────────┘")
}

func runMonthly(generator *timetable.Generator, config *timetable.Config, year int, month time.Month) {
	days := generator.Monthly(year, month)

	fmt.Printf("\nPrayer times for %s, %s %d (%s method)\n\n",
		config.Location, month, year, generator.Calculator().Method())

	fmt.Println("┌────────────┬──────────┬──────────┬──────────┬──────────┬──────────┬──────────┬──────────┬──────────┬──────────┐")
	fmt.Println("│    Date    │  Imsak   │   Fajr   │ Sunrise  │  Dhuhr   │   Asr    │  Sunset  │ Maghrib  │   Isha   │ Midnight │")
	fmt.Println("├────────────┼──────────┼──────────┼──────────┼──────────┼──────────┼──────────┼──────────┼──────────┼──────────┤")
	for _, day := range days {
		fmt.Printf("│ %-10s │", day.Date.Format("2006-01-02"))
		for _, name := range praytimes.TimeNames() {
			fmt.Printf(" %-8s │", day.Times[name])
		}
		fmt.Println()
	}
	fmt.Println("└────────────┴──────────┴──────────┴──────────┴──────────┴──────────┴──────────┴──────────┴──────────┴──────────┘")
}

func listMethods() {
	fmt.Println("\nAvailable calculation methods:")
	fmt.Println()
	fmt.Println("┌─────────┬───────────────────────────────────────────────┬────────┬────────┬─────────┬──────────┐")
	fmt.Println("│   ID    │                     Name                      │  Fajr  │  Isha  │ Maghrib │ Midnight │")
	fmt.Println("├─────────┼───────────────────────────────────────────────┼────────┼────────┼─────────┼──────────┤")
	for _, method := range praytimes.Methods() {
		fmt.Printf("│ %-7s │ %-45s │ %-6s │ %-6s │ %-7s │ %-8s │\n",
			method.ID, method.Name,
			method.Params.Fajr, method.Params.Isha, method.Params.Maghrib, method.Params.Midnight)
	}
	fmt.Println("└─────────┴───────────────────────────────────────────────┴────────┴────────┴─────────┴──────────┘")
}

func showHelp() {
	fmt.Println("religious-times - Islamic prayer times calculator and timetable generator")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Computes daily prayer times from solar geometry: Fajr, Sunrise, Dhuhr,")
	fmt.Println("  Asr, Maghrib, Isha and the related Imsak, Sunset and Midnight markers.")
	fmt.Println("  Seven published calculation methods are built in, and every angle or")
	fmt.Println("  minute rule can be overridden from the configuration file.")
	fmt.Println()
	fmt.Println("  Key Features:")
	fmt.Println("  - Daily and monthly timetables for any coordinates")
	fmt.Println("  - DST-aware UTC offsets from IANA zone names")
	fmt.Println("  - High-latitude rules for places where the sun barely sets")
	fmt.Println("  - Per-time minute tuning for local conventions")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  religious-times [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Today's times for the configured location")
	fmt.Println("  religious-times")
	fmt.Println()
	fmt.Println("  # A specific date")
	fmt.Println("  religious-times -date 2024-12-22")
	fmt.Println()
	fmt.Println("  # A monthly timetable")
	fmt.Println("  religious-times -month 2024-06")
	fmt.Println()
	fmt.Println("  # Override the calculation method once")
	fmt.Println("  religious-times -method ISNA")
	fmt.Println()
	fmt.Println("  # List the built-in methods")
	fmt.Println("  religious-times -list-methods")
	fmt.Println()
	fmt.Println("  # Write the active configuration to the config file")
	fmt.Println("  religious-times -save-config")
}

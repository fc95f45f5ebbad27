package timetable

import (
	"math"
	"testing"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/zamoosh/religious-times/praytimes"
)

func clockHours(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}

func TestUTCOffsetFixed(t *testing.T) {
	config := DefaultConfig()
	config.Timezone = ""
	config.UTCOffset = 3.5

	g, err := NewGenerator(config)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	if offset := g.UTCOffset(date); offset != 3.5 {
		t.Errorf("Expected fixed offset 3.5, got %f", offset)
	}

	config.DST = true
	g, err = NewGenerator(config)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	if offset := g.UTCOffset(date); offset != 4.5 {
		t.Errorf("Expected fixed offset 4.5 with DST, got %f", offset)
	}
}

func TestUTCOffsetResolvesDaylightSaving(t *testing.T) {
	config := DefaultConfig()
	config.Timezone = "Europe/London"

	g, err := NewGenerator(config)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	// London is on GMT in January and BST (UTC+1) in July.
	jan := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if offset := g.UTCOffset(jan); offset != 0 {
		t.Errorf("Expected offset 0 in January, got %f", offset)
	}

	jul := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	if offset := g.UTCOffset(jul); offset != 1 {
		t.Errorf("Expected offset 1 in July, got %f", offset)
	}
}

func TestMonthlyCoversLeapFebruary(t *testing.T) {
	g, err := NewGenerator(DefaultConfig())
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	days := g.Monthly(2024, time.February)
	if len(days) != 29 {
		t.Fatalf("Expected 29 days in February 2024, got %d", len(days))
	}

	for i, day := range days {
		if day.Date.Day() != i+1 {
			t.Errorf("Expected day %d at index %d, got %d", i+1, i, day.Date.Day())
		}
		if len(day.Times) != len(praytimes.TimeNames()) {
			t.Errorf("Day %d: expected %d times, got %d", i+1, len(praytimes.TimeNames()), len(day.Times))
		}
	}
}

func TestDailyAgainstIndependentSunriseSunset(t *testing.T) {
	config := DefaultConfig()
	config.Location = "London, UK"
	config.Latitude = 51.5074
	config.Longitude = -0.1278
	config.Elevation = 0
	config.Timezone = "Europe/London"
	config.Method = "MWL"

	g, err := NewGenerator(config)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	day := g.Daily(date)

	for _, name := range praytimes.TimeNames() {
		if day.Times[name] == praytimes.InvalidTime {
			t.Errorf("Expected %s to be defined at London in June", name)
		}
	}

	zone, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatalf("LoadLocation failed: %v", err)
	}
	rise, set := sunrise.SunriseSunset(config.Latitude, config.Longitude, 2024, time.June, 1)
	wantRise := clockHours(rise.In(zone))
	wantSet := clockHours(set.In(zone))

	if diff := math.Abs(day.Raw[praytimes.Sunrise] - wantRise); diff > 5.0/60 {
		t.Errorf("Sunrise %f differs from reference %f by %f hours", day.Raw[praytimes.Sunrise], wantRise, diff)
	}
	if diff := math.Abs(day.Raw[praytimes.Sunset] - wantSet); diff > 5.0/60 {
		t.Errorf("Sunset %f differs from reference %f by %f hours", day.Raw[praytimes.Sunset], wantSet, diff)
	}
}

func TestGeneratorAppliesRuleOverrides(t *testing.T) {
	config := DefaultConfig()
	config.Method = "MWL"
	config.Asr = "Hanafi"
	config.Isha = "90 min"

	g, err := NewGenerator(config)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	settings := g.Calculator().Settings()
	if settings.Asr != praytimes.AsrHanafi {
		t.Errorf("Expected Hanafi asr factor %f, got %f", praytimes.AsrHanafi, settings.Asr)
	}
	if settings.Isha != praytimes.Minutes(90) {
		t.Errorf("Expected isha of 90 min, got %v", settings.Isha)
	}
}

func TestGeneratorAppliesTuning(t *testing.T) {
	plain, err := NewGenerator(DefaultConfig())
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	tunedConfig := DefaultConfig()
	tunedConfig.Tune = map[string]float64{"dhuhr": 30}
	tuned, err := NewGenerator(tunedConfig)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	before := plain.Daily(date)
	after := tuned.Daily(date)

	if diff := after.Raw[praytimes.Dhuhr] - before.Raw[praytimes.Dhuhr]; math.Abs(diff-0.5) > 1e-9 {
		t.Errorf("Expected dhuhr shifted by 0.5 hours, got %f", diff)
	}
	if after.Raw[praytimes.Fajr] != before.Raw[praytimes.Fajr] {
		t.Errorf("Expected fajr untouched by dhuhr tuning, got %f vs %f", after.Raw[praytimes.Fajr], before.Raw[praytimes.Fajr])
	}
}

func TestGeneratorUnknownMethodFallsBack(t *testing.T) {
	config := DefaultConfig()
	config.Method = "Atlantis"

	g, err := NewGenerator(config)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	if method := g.Calculator().Method(); method != praytimes.DefaultMethod {
		t.Errorf("Expected fallback to %s, got %s", praytimes.DefaultMethod, method)
	}
}

func TestNewGeneratorRejectsInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.Latitude = 200

	if _, err := NewGenerator(config); err == nil {
		t.Fatal("Expected an error for an out-of-range latitude")
	}
}

package timetable

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zamoosh/religious-times/praytimes"
)

// Config represents the configuration for the timetable generator
type Config struct {
	// Location settings
	Location  string  `json:"location"`  // Display name shown on the timetable, e.g. "Qom, Iran"
	Latitude  float64 `json:"latitude"`  // Degrees north of the equator
	Longitude float64 `json:"longitude"` // Degrees east of Greenwich
	Elevation float64 `json:"elevation"` // Meters above sea level

	// Timezone settings
	Timezone  string  `json:"timezone"`   // IANA zone name (e.g. "Asia/Tehran"), resolved per date when set
	UTCOffset float64 `json:"utc_offset"` // Fixed UTC offset in hours, used when timezone is empty
	DST       bool    `json:"dst"`        // Add one hour to the fixed offset (ignored with an IANA zone)

	// Calculation settings
	Method   string             `json:"method"`    // Calculation method ID, e.g. "Tehran"
	Imsak    string             `json:"imsak"`     // Imsak rule override, e.g. "10 min" or "19.5"
	Fajr     string             `json:"fajr"`      // Fajr angle override, e.g. "18.5"
	Dhuhr    string             `json:"dhuhr"`     // Dhuhr offset override, e.g. "2 min"
	Asr      string             `json:"asr"`       // Asr rule: "Standard", "Hanafi" or a shadow factor
	Maghrib  string             `json:"maghrib"`   // Maghrib rule override, e.g. "4.5" or "15 min"
	Isha     string             `json:"isha"`      // Isha rule override, e.g. "17" or "90 min"
	Midnight string             `json:"midnight"`  // Midnight mode: "Standard" or "Jafari"
	HighLats string             `json:"high_lats"` // High-latitude rule: "NightMiddle", "AngleBased", "OneSeventh" or "None"
	Tune     map[string]float64 `json:"tune"`      // Minute offsets applied to the final times, by time name
	Passes   int                `json:"passes"`    // Refinement passes over the estimates (0 = default)

	// Output settings
	TimeFormat string `json:"time_format"` // Time format: 24h, 12h, 12hNS or Float

	// Logging settings
	LogLevel string `json:"log_level"` // Log level: debug, info, warn, error
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Location:   "Qom, Iran",
		Latitude:   34.641159,
		Longitude:  50.877456,
		Elevation:  928, // meters above sea level
		Timezone:   "Asia/Tehran",
		Method:     "Tehran",
		TimeFormat: "24h",
		Passes:     1,
		LogLevel:   "info",
	}
}

// LoadConfig loads configuration from a JSON file. A missing file yields the
// default configuration.
func LoadConfig(filename string) (*Config, error) {
	config, _, err := LoadConfigFile(filename)
	return config, err
}

// LoadConfigFile loads configuration from a JSON file and reports whether
// the file existed. A missing file yields the default configuration with
// found false and no error, so callers can surface the fallback themselves.
func LoadConfigFile(filename string) (config *Config, found bool, err error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), false, nil
		}
		return nil, false, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	config, err = LoadConfigFromReader(file)
	return config, true, err
}

// LoadConfigFromReader loads configuration from an io.Reader
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	config := DefaultConfig()
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config JSON: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a JSON file
func (c *Config) SaveConfig(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	return c.SaveConfigToWriter(file)
}

// SaveConfigToWriter writes the configuration as indented JSON
func (c *Config) SaveConfigToWriter(writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config JSON: %w", err)
	}
	return nil
}

// Validate checks the configuration for invalid values. The method ID and
// the rule override strings are not checked here: the calculator resolves
// unknown values to defaults.
func (c *Config) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return &ValidationError{Field: "latitude", Message: fmt.Sprintf("must be between -90 and 90, got: %f", c.Latitude)}
	}

	if c.Longitude < -180 || c.Longitude > 180 {
		return &ValidationError{Field: "longitude", Message: fmt.Sprintf("must be between -180 and 180, got: %f", c.Longitude)}
	}

	if c.Elevation < 0 {
		return &ValidationError{Field: "elevation", Message: fmt.Sprintf("must be non-negative, got: %f", c.Elevation)}
	}

	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return &ValidationError{Field: "timezone", Message: fmt.Sprintf("unknown IANA zone: %s", c.Timezone)}
		}
	} else if c.UTCOffset < -12 || c.UTCOffset > 14 {
		return &ValidationError{Field: "utc_offset", Message: fmt.Sprintf("must be between -12 and 14, got: %f", c.UTCOffset)}
	}

	if c.Passes < 0 {
		return &ValidationError{Field: "passes", Message: fmt.Sprintf("must be non-negative, got: %d", c.Passes)}
	}

	switch praytimes.TimeFormat(c.TimeFormat) {
	case "", praytimes.Format24Hour, praytimes.Format12Hour, praytimes.Format12HourNS, praytimes.FormatFloat:
	default:
		return &ValidationError{Field: "time_format", Message: fmt.Sprintf("must be one of: 24h, 12h, 12hNS, Float, got: %s", c.TimeFormat)}
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return &ValidationError{Field: "log_level", Message: fmt.Sprintf("must be one of: debug, info, warn, error, got: %s", c.LogLevel)}
	}

	return nil
}

// Overrides collects the non-empty rule override strings, keyed by setting
// name the way praytimes.ParamsFromStrings expects them.
func (c *Config) Overrides() map[string]string {
	fields := map[string]string{
		"imsak":    c.Imsak,
		"fajr":     c.Fajr,
		"dhuhr":    c.Dhuhr,
		"asr":      c.Asr,
		"maghrib":  c.Maghrib,
		"isha":     c.Isha,
		"midnight": c.Midnight,
		"highLats": c.HighLats,
	}

	overrides := make(map[string]string)
	for name, value := range fields {
		if value != "" {
			overrides[name] = value
		}
	}
	return overrides
}

// String returns a human-readable representation of the configuration
func (c *Config) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("Config{error marshaling: %v}", err)
	}
	return string(data)
}

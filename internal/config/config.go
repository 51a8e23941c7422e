package config

import (
	"github.com/spf13/viper"
)

// Config keys
const (
	KeyStartYear  = "range.start_year"
	KeyEndYear    = "range.end_year"
	KeyOutputPath = "output.path"
	KeyLogLevel   = "log.level"
)

// Defaults
const (
	DefaultStartYear  = 1900
	DefaultEndYear    = 2100
	DefaultOutputPath = "solar-terms.json"
	DefaultLogLevel   = "info"
)

// EnvPrefix is prepended to environment overrides, e.g. SOLARTERMS_OUTPUT_PATH
const EnvPrefix = "SOLARTERMS"

// Settings mirrors the config file layout
type Settings struct {
	Range  RangeSettings  `toml:"range"`
	Output OutputSettings `toml:"output"`
	Log    LogSettings    `toml:"log"`
}

type RangeSettings struct {
	StartYear int `toml:"start_year"`
	EndYear   int `toml:"end_year"`
}

type OutputSettings struct {
	Path string `toml:"path"`
}

type LogSettings struct {
	Level string `toml:"level"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyStartYear, DefaultStartYear)
	v.SetDefault(KeyEndYear, DefaultEndYear)
	v.SetDefault(KeyOutputPath, DefaultOutputPath)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

// DefaultSettings returns the settings written by init
func DefaultSettings() Settings {
	return Settings{
		Range: RangeSettings{
			StartYear: DefaultStartYear,
			EndYear:   DefaultEndYear,
		},
		Output: OutputSettings{Path: DefaultOutputPath},
		Log:    LogSettings{Level: DefaultLogLevel},
	}
}

// GetStartYear returns the first year to generate
func GetStartYear() int {
	return viper.GetInt(KeyStartYear)
}

// GetEndYear returns the last year to generate (inclusive)
func GetEndYear() int {
	return viper.GetInt(KeyEndYear)
}

// GetOutputPath returns the path of the generated data file
func GetOutputPath() string {
	return viper.GetString(KeyOutputPath)
}

// GetLogLevel returns the configured log level
func GetLogLevel() string {
	return viper.GetString(KeyLogLevel)
}

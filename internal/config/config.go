// Package config handles angletool configuration loading.
package config

// Config holds all angletool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Precision       int  `yaml:"precision"`         // Decimal places
	WrapBeforeClamp bool `yaml:"wrap_before_clamp"` // Wrap angles before clamping
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Precision:       3,
			WrapBeforeClamp: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Package config loads the bigcalc configuration file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Log holds logging settings.
type Log struct {
	// Level of the file log: crit, error, warn, info, debug.
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// Empty LogFile disables the file log.
	LogFile        string `toml:"logFile"`
	MaxFileSize    uint32 `toml:"maxFileSize"` // megabytes
	MaxBackups     uint32 `toml:"maxBackups"`
	MaxAge         uint32 `toml:"maxAge"` // days
	LocalTime      bool   `toml:"localTime"`
	Compress       bool   `toml:"compress"`
	CallerFile     bool   `toml:"callerFile"`
	CallerFunction bool   `toml:"callerFunction"`
}

// Output holds settings for printing integers.
type Output struct {
	// Plus prints a '+' in front of positive integers.
	Plus bool `toml:"plus"`
	// Width pads results with leading spaces, 0 means no padding.
	Width int `toml:"width"`
	// ZeroPad pads with zeros instead of spaces.
	ZeroPad bool `toml:"zeroPad"`
}

// Config is the root of the configuration file.
type Config struct {
	Title  string  `toml:"Title"`
	Log    *Log    `toml:"log"`
	Output *Output `toml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Title: "bigcalc",
		Log: &Log{
			Loglevel:        "error",
			LogConsoleLevel: "error",
			MaxFileSize:     100,
			MaxBackups:      10,
			MaxAge:          28,
			LocalTime:       true,
			Compress:        false,
		},
		Output: &Output{},
	}
}

// Load reads the TOML file at path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses TOML text on top of the defaults.
func Decode(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Log == nil {
		c.Log = Default().Log
	}
	if c.Output == nil {
		c.Output = &Output{}
	}
	if c.Output.Width < 0 {
		return errors.Errorf("output width %d is negative", c.Output.Width)
	}
	return nil
}

// Package config loads the optional configuration file for the toon-go
// command-line tool. The codec itself takes no configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds tool defaults; command-line flags override them.
type Config struct {
	// TableName is the default table name written by from-csv.
	TableName string `mapstructure:"table_name"`

	// Output is the default output path; empty means stdout.
	Output string `mapstructure:"output"`

	CSV struct {
		// Comma is the field delimiter used when reading or writing
		// CSV, as a one-character string.
		Comma string `mapstructure:"comma"`
	} `mapstructure:"csv"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.CSV.Comma = ","
	return cfg
}

// Load reads a YAML configuration file. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("csv.comma", ",")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len([]rune(cfg.CSV.Comma)) != 1 {
		return nil, fmt.Errorf("csv.comma must be a single character, got %q", cfg.CSV.Comma)
	}

	return cfg, nil
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ExportConfig holds configuration for result exports.
type ExportConfig struct {
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

// WatchConfig holds configuration for the reading-file watcher.
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Config holds all runtime configuration for a ruhani session.
// Values are populated from .ruhani.yaml, RUHANI_* env vars, and CLI flags.
type Config struct {
	DefaultMethod string       `mapstructure:"default_method"`
	TelemetryPath string       `mapstructure:"telemetry_path"`
	Verbose       bool         `mapstructure:"verbose"`
	Export        ExportConfig `mapstructure:"export"`
	Watch         WatchConfig  `mapstructure:"watch"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("default_method", "kabir")
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("export.format", "json")
	viper.SetDefault("export.dir", ".")
	viper.SetDefault("watch.debounce_ms", 100)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

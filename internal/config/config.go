// Package config handles configuration loading and validation for the
// uhash binaries.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for cmd/uhash.
type Config struct {
	Hasher    HasherConfig    `mapstructure:"hasher"`
	Benchmark BenchmarkConfig `mapstructure:"benchmark"`
	Vectors   VectorsConfig   `mapstructure:"vectors"`
	Profiling ProfilingConfig `mapstructure:"profiling"`
	NewRelic  NewRelicConfig  `mapstructure:"newrelic"`
	Log       LogConfig       `mapstructure:"log"`
}

// HasherConfig controls chain scheduling.
type HasherConfig struct {
	// Mode is one of "auto", "parallel", "sequential".
	Mode string `mapstructure:"mode"`
}

// BenchmarkConfig defines default benchmark(iterations) parameters.
type BenchmarkConfig struct {
	DefaultIterations int `mapstructure:"default_iterations"`
}

// VectorsConfig controls the optional Redis-backed golden-vector cache.
type VectorsConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	URL      string `mapstructure:"url"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ProfilingConfig defines pprof server settings.
type ProfilingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Bind    string `mapstructure:"bind"`
}

// NewRelicConfig defines APM settings for benchmark telemetry.
type NewRelicConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	AppName    string `mapstructure:"app_name"`
	LicenseKey string `mapstructure:"license_key"`
}

// LogConfig defines logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Load reads configuration from file and environment, the same way
// the teacher's pool config does: viper with a named "config.yaml"
// searched across a few well-known directories, overridable by
// UHASH_-prefixed environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/uhash")
	}

	v.SetEnvPrefix("UHASH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("hasher.mode", "auto")

	v.SetDefault("benchmark.default_iterations", 1000)

	v.SetDefault("vectors.enabled", false)
	v.SetDefault("vectors.url", "127.0.0.1:6379")
	v.SetDefault("vectors.db", 0)

	v.SetDefault("profiling.enabled", false)
	v.SetDefault("profiling.bind", "127.0.0.1:6061")

	v.SetDefault("newrelic.enabled", false)
	v.SetDefault("newrelic.app_name", "uhash-benchmark")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Validate checks configuration for errors.
func (c *Config) Validate() error {
	switch c.Hasher.Mode {
	case "", "auto", "parallel", "sequential":
	default:
		return fmt.Errorf("hasher.mode must be one of auto, parallel, sequential; got %q", c.Hasher.Mode)
	}

	if c.Benchmark.DefaultIterations < 0 {
		return fmt.Errorf("benchmark.default_iterations must be >= 0")
	}

	if c.NewRelic.Enabled && c.NewRelic.LicenseKey == "" {
		return fmt.Errorf("newrelic.license_key is required when newrelic is enabled")
	}

	return nil
}

// Package config loads the gobonds command configuration from an optional
// YAML file, GOBONDS_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/rmera/gobonds/internal/logging"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix of every setting, so that
// "plot.bins" is read from GOBONDS_PLOT_BINS.
const envPrefix = "GOBONDS"

const (
	DefaultTolerance = 1.3
	DefaultOutput    = "text"
	DefaultPlotBins  = 20
	DefaultLogLevel  = logging.LevelWarn
	DefaultLogFormat = "console"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds every setting of the command.
type Config struct {
	Tolerance float64           `mapstructure:"tolerance"`
	Workers   int               `mapstructure:"workers"`
	Output    string            `mapstructure:"output"`
	Plot      PlotConfig        `mapstructure:"plot"`
	Log       logging.LogConfig `mapstructure:"log"`
}

// PlotConfig controls the bond length histogram. No histogram is written
// if File is empty.
type PlotConfig struct {
	File string `mapstructure:"file"`
	Bins int    `mapstructure:"bins"`
}

// NewViper returns a viper instance with the defaults of every key
// registered, reading YAML and GOBONDS_* variables. Flags can be bound to
// it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// AutomaticEnv only applies to keys viper already knows about.
	v.SetDefault("tolerance", DefaultTolerance)
	v.SetDefault("workers", 0)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("plot.file", "")
	v.SetDefault("plot.bins", DefaultPlotBins)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	return v
}

// Load reads the YAML file at configPath, if not empty, into v and returns
// the resulting configuration, with defaults applied and validated.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills the zero-value fields of cfg. A zero Workers means
// one worker per CPU. Tolerance is left alone, so an explicit 0 fails
// validation.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Plot.Bins == 0 {
		cfg.Plot.Bins = DefaultPlotBins
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// Validate returns all the problems found in cfg, joined, or nil.
func (cfg *Config) Validate() error {
	var errs []error
	if !(cfg.Tolerance > 0) {
		errs = append(errs, fmt.Errorf("tolerance must be positive, got %g", cfg.Tolerance))
	}
	if cfg.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers))
	}
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		errs = append(errs, fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, cfg.Output))
	}
	if cfg.Plot.Bins < 1 {
		errs = append(errs, fmt.Errorf("plot.bins must be at least 1, got %d", cfg.Plot.Bins))
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "console" {
		errs = append(errs, fmt.Errorf("log.format must be \"json\" or \"console\", got %q", cfg.Log.Format))
	}
	return errors.Join(errs...)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/glitchlab/faultdeck/logging"
)

// Source represents a configuration source
type Source interface {
	Name() string
	Load() (*Config, error)
	Priority() int
}

// Validator validates configuration
type Validator interface {
	Validate(cfg *Config) error
}

// Merger merges configurations from multiple sources
type Merger interface {
	Merge(base, override *Config) *Config
}

// Loader loads configuration from multiple sources
type Loader struct {
	sources    []Source
	validators []Validator
	merger     Merger
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		sources:    make([]Source, 0),
		validators: make([]Validator, 0),
		merger:     &DefaultMerger{},
	}
}

// AddSource adds a configuration source
func (l *Loader) AddSource(source Source) {
	l.sources = append(l.sources, source)
}

// AddValidator adds a configuration validator
func (l *Loader) AddValidator(validator Validator) {
	l.validators = append(l.validators, validator)
}

// SetMerger sets the configuration merger
func (l *Loader) SetMerger(merger Merger) {
	l.merger = merger
}

// LoadWithDefaults loads configuration with defaults as base
func (l *Loader) LoadWithDefaults() (*Config, error) {
	// Sort sources by priority
	sort.Slice(l.sources, func(i, j int) bool {
		return l.sources[i].Priority() < l.sources[j].Priority()
	})

	config := DefaultConfig()
	for _, source := range l.sources {
		cfg, err := source.Load()
		if err != nil {
			// A missing or unreadable source is skipped, not fatal
			logging.LogWarnf("skipping config source %s: %v", source.Name(), err)
			continue
		}
		config = l.merger.Merge(config, cfg)
	}

	// Validate final configuration
	for _, validator := range l.validators {
		if err := validator.Validate(config); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return config, nil
}

// FileSource loads configuration from a file
type FileSource struct {
	path   string
	format Format
}

// NewFileSource creates a new file configuration source
func NewFileSource(path string) *FileSource {
	format := FormatYAML
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		format = FormatJSON
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	}

	return &FileSource{
		path:   path,
		format: format,
	}
}

// Name returns the source name
func (f *FileSource) Name() string {
	return fmt.Sprintf("file:%s", f.path)
}

// Priority returns the source priority (lower = higher priority)
func (f *FileSource) Priority() int {
	return 100
}

// Load loads configuration from the file
func (f *FileSource) Load() (*Config, error) {
	expandedPath := os.ExpandEnv(f.path)

	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", expandedPath)
	}

	v := viper.New()
	v.SetConfigFile(expandedPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", expandedPath, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config from %s: %w", expandedPath, err)
	}

	return &config, nil
}

// EnvSource loads configuration from environment variables
type EnvSource struct {
	prefix string
}

// NewEnvSource creates a new environment variable configuration source
func NewEnvSource(prefix string) *EnvSource {
	return &EnvSource{
		prefix: prefix,
	}
}

// Name returns the source name
func (e *EnvSource) Name() string {
	return fmt.Sprintf("env:%s", e.prefix)
}

// Priority returns the source priority (lower = higher priority)
func (e *EnvSource) Priority() int {
	return 200
}

// Load loads configuration from environment variables
func (e *EnvSource) Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(e.prefix)
	v.AutomaticEnv()

	// Replace dots and dashes with underscores for env vars
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Set all possible config keys to enable env var reading
	e.setAllKeys(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config from environment: %w", err)
	}

	return &config, nil
}

// setAllKeys sets all possible configuration keys for environment variable reading
func (e *EnvSource) setAllKeys(v *viper.Viper) {
	// App config
	v.SetDefault("app.name", "")
	v.SetDefault("app.version", "")
	v.SetDefault("app.log_level", "")
	v.SetDefault("app.log_file", "")
	v.SetDefault("app.verbose", false)

	// Engine config
	v.SetDefault("engine.disabled", false)
	v.SetDefault("engine.seed", 0)
	v.SetDefault("engine.no_latency", false)

	// Scenario config
	v.SetDefault("scenario.interval", time.Duration(0))
	v.SetDefault("scenario.autostart", "")

	// UI config
	v.SetDefault("ui.theme", "")
	v.SetDefault("ui.refresh_rate", time.Duration(0))
	v.SetDefault("ui.compact_mode", false)
	v.SetDefault("ui.no_color", false)
	v.SetDefault("ui.time_format", "")

	// Export config
	v.SetDefault("export.format", "")
	v.SetDefault("export.output_dir", "")

	// Debug config
	v.SetDefault("debug.enabled", false)
	v.SetDefault("debug.metrics_port", 0)
}

// FlagSource loads configuration from command-line flags
type FlagSource struct {
	flags *pflag.FlagSet
}

// NewFlagSource creates a new flag configuration source
func NewFlagSource(flags *pflag.FlagSet) *FlagSource {
	return &FlagSource{
		flags: flags,
	}
}

// Name returns the source name
func (f *FlagSource) Name() string {
	return "flags"
}

// Priority returns the source priority (lower = higher priority)
func (f *FlagSource) Priority() int {
	return 300
}

// Load loads configuration from command-line flags
func (f *FlagSource) Load() (*Config, error) {
	config := &Config{}

	// Handle flags that are bound to nested config fields
	f.flags.VisitAll(func(flag *pflag.Flag) {
		if !flag.Changed {
			return
		}

		switch flag.Name {
		case "debug":
			if val, err := f.flags.GetBool("debug"); err == nil {
				config.Debug.Enabled = val
			}
		case "log-level":
			if val, err := f.flags.GetString("log-level"); err == nil {
				config.App.LogLevel = val
			}
		case "no-color":
			if val, err := f.flags.GetBool("no-color"); err == nil {
				config.UI.NoColor = val
			}
		case "verbose":
			if val, err := f.flags.GetBool("verbose"); err == nil {
				config.App.Verbose = val
			}
		case "theme":
			if val, err := f.flags.GetString("theme"); err == nil {
				config.UI.Theme = val
			}
		case "refresh":
			if val, err := f.flags.GetDuration("refresh"); err == nil {
				config.UI.RefreshRate = val
			}
		case "seed":
			if val, err := f.flags.GetInt64("seed"); err == nil {
				config.Engine.Seed = val
			}
		case "no-latency":
			if val, err := f.flags.GetBool("no-latency"); err == nil {
				config.Engine.NoLatency = val
			}
		case "scenario":
			if val, err := f.flags.GetString("scenario"); err == nil {
				config.Scenario.Autostart = val
			}
		}
	})

	return config, nil
}

// DefaultMerger is the default configuration merger
type DefaultMerger struct{}

// Merge merges two configurations, with override taking precedence
func (m *DefaultMerger) Merge(base, override *Config) *Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	// Merge App config
	if override.App.Name != "" {
		result.App.Name = override.App.Name
	}
	if override.App.Version != "" {
		result.App.Version = override.App.Version
	}
	if override.App.LogLevel != "" {
		result.App.LogLevel = override.App.LogLevel
	}
	if override.App.LogFile != "" {
		result.App.LogFile = override.App.LogFile
	}
	if override.App.Verbose {
		result.App.Verbose = true
	}

	// Merge Engine config
	if override.Engine.Disabled {
		result.Engine.Disabled = true
	}
	if override.Engine.Seed != 0 {
		result.Engine.Seed = override.Engine.Seed
	}
	if override.Engine.NoLatency {
		result.Engine.NoLatency = true
	}

	// Merge Scenario config
	if override.Scenario.Interval > 0 {
		result.Scenario.Interval = override.Scenario.Interval
	}
	if override.Scenario.Autostart != "" {
		result.Scenario.Autostart = override.Scenario.Autostart
	}

	// Merge UI config
	if override.UI.Theme != "" {
		result.UI.Theme = override.UI.Theme
	}
	if override.UI.RefreshRate > 0 {
		result.UI.RefreshRate = override.UI.RefreshRate
	}
	if override.UI.CompactMode {
		result.UI.CompactMode = true
	}
	if override.UI.NoColor {
		result.UI.NoColor = true
	}
	if override.UI.TimeFormat != "" {
		result.UI.TimeFormat = override.UI.TimeFormat
	}

	// Merge Export config
	if override.Export.Format != "" {
		result.Export.Format = override.Export.Format
	}
	if override.Export.OutputDir != "" {
		result.Export.OutputDir = override.Export.OutputDir
	}

	// Merge Debug config
	if override.Debug.Enabled {
		result.Debug.Enabled = true
	}
	if override.Debug.MetricsPort != 0 {
		result.Debug.MetricsPort = override.Debug.MetricsPort
	}

	return &result
}

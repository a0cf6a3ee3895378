package config

import (
	"time"
)

// Config represents the complete application configuration
type Config struct {
	// Application
	App AppConfig `yaml:"app" json:"app" mapstructure:"app"`

	// Simulation engine
	Engine EngineConfig `yaml:"engine" json:"engine" mapstructure:"engine"`

	// Scenario emission
	Scenario ScenarioConfig `yaml:"scenario" json:"scenario" mapstructure:"scenario"`

	// User Interface
	UI UIConfig `yaml:"ui" json:"ui" mapstructure:"ui"`

	// Export
	Export ExportConfig `yaml:"export" json:"export" mapstructure:"export"`

	// Debug
	Debug DebugConfig `yaml:"debug" json:"debug" mapstructure:"debug"`
}

// AppConfig contains general application settings
type AppConfig struct {
	Name     string `yaml:"name" json:"name" mapstructure:"name"`
	Version  string `yaml:"version" json:"version" mapstructure:"version"`
	LogLevel string `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
	LogFile  string `yaml:"log_file" json:"log_file" mapstructure:"log_file"`
	Verbose  bool   `yaml:"verbose" json:"verbose" mapstructure:"verbose"`
}

// EngineConfig contains simulation engine settings
type EngineConfig struct {
	// Disabled starts the engine with the global error-handling switch off.
	Disabled bool `yaml:"disabled" json:"disabled" mapstructure:"disabled"`
	// Seed fixes the random source when non-zero; 0 seeds from the clock.
	Seed int64 `yaml:"seed" json:"seed" mapstructure:"seed"`
	// NoLatency disables the artificial per-step recovery delay.
	NoLatency bool `yaml:"no_latency" json:"no_latency" mapstructure:"no_latency"`
}

// ScenarioConfig contains scenario emission settings
type ScenarioConfig struct {
	// Interval overrides the built-in scenario emission interval when > 0.
	Interval time.Duration `yaml:"interval" json:"interval" mapstructure:"interval"`
	// Autostart names a scenario to begin on launch; empty starts none.
	Autostart string `yaml:"autostart" json:"autostart" mapstructure:"autostart"`
}

// UIConfig contains user interface settings
type UIConfig struct {
	Theme       string        `yaml:"theme" json:"theme" mapstructure:"theme"`
	RefreshRate time.Duration `yaml:"refresh_rate" json:"refresh_rate" mapstructure:"refresh_rate"`
	CompactMode bool          `yaml:"compact_mode" json:"compact_mode" mapstructure:"compact_mode"`
	NoColor     bool          `yaml:"no_color" json:"no_color" mapstructure:"no_color"`
	TimeFormat  string        `yaml:"time_format" json:"time_format" mapstructure:"time_format"`
}

// ExportConfig contains data export settings
type ExportConfig struct {
	Format    string `yaml:"format" json:"format" mapstructure:"format"`
	OutputDir string `yaml:"output_dir" json:"output_dir" mapstructure:"output_dir"`
}

// DebugConfig contains debugging settings
type DebugConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	// MetricsPort serves a JSON snapshot of engine state when > 0.
	MetricsPort int `yaml:"metrics_port" json:"metrics_port" mapstructure:"metrics_port"`
}

// Format represents configuration file format
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatTOML
)

// ConfigPaths returns the default configuration file paths in order of precedence
func ConfigPaths() []string {
	return []string{
		"./faultdeck.yaml",
		"$HOME/.config/faultdeck/config.yaml",
		"$HOME/.faultdeck/config.yaml",
		"/etc/faultdeck/config.yaml",
	}
}

// Version will be set at build time
var Version = "dev"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:     "faultdeck",
			Version:  Version,
			LogLevel: "info",
			LogFile:  "faultdeck.log",
		},
		Engine: EngineConfig{},
		Scenario: ScenarioConfig{
			Interval: 5 * time.Second,
		},
		UI: UIConfig{
			Theme:       "dark",
			RefreshRate: time.Second,
			TimeFormat:  "15:04:05",
		},
		Export: ExportConfig{
			Format:    "json",
			OutputDir: ".",
		},
		Debug: DebugConfig{
			Enabled: false,
		},
	}
}

// DevelopmentConfig returns a configuration optimized for development
func DevelopmentConfig() *Config {
	cfg := DefaultConfig()
	cfg.App.LogLevel = "debug"
	cfg.Debug.Enabled = true
	cfg.UI.RefreshRate = 500 * time.Millisecond
	cfg.Engine.NoLatency = true
	return cfg
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// StandardValidator provides standard configuration validation
type StandardValidator struct{}

// NewStandardValidator creates a new standard validator
func NewStandardValidator() *StandardValidator {
	return &StandardValidator{}
}

// Validate validates the entire configuration
func (v *StandardValidator) Validate(cfg *Config) error {
	var errors []string

	// Validate App config
	if err := v.validateApp(&cfg.App); err != nil {
		errors = append(errors, fmt.Sprintf("app: %v", err))
	}

	// Validate Scenario config
	if err := v.validateScenario(&cfg.Scenario); err != nil {
		errors = append(errors, fmt.Sprintf("scenario: %v", err))
	}

	// Validate UI config
	if err := v.validateUI(&cfg.UI); err != nil {
		errors = append(errors, fmt.Sprintf("ui: %v", err))
	}

	// Validate Export config
	if err := v.validateExport(&cfg.Export); err != nil {
		errors = append(errors, fmt.Sprintf("export: %v", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// validateApp validates application configuration
func (v *StandardValidator) validateApp(app *AppConfig) error {
	var errors []string

	// Validate log level
	if err := ValidateLogLevel(app.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("log_level: %v", err))
	}

	// Validate log file path if specified
	if app.LogFile != "" {
		dir := filepath.Dir(app.LogFile)
		if dir != "." {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("log_file: directory does not exist: %s", dir))
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}

// validateScenario validates scenario emission configuration
func (v *StandardValidator) validateScenario(scenario *ScenarioConfig) error {
	var errors []string

	if scenario.Interval < 100*time.Millisecond {
		errors = append(errors, "interval: must be at least 100ms")
	}
	if scenario.Interval > time.Hour {
		errors = append(errors, "interval: must not exceed 1 hour")
	}

	if scenario.Autostart != "" {
		if err := ValidateScenarioName(scenario.Autostart); err != nil {
			errors = append(errors, fmt.Sprintf("autostart: %v", err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}

// validateUI validates UI configuration
func (v *StandardValidator) validateUI(ui *UIConfig) error {
	var errors []string

	// Validate theme
	if err := ValidateTheme(ui.Theme); err != nil {
		errors = append(errors, fmt.Sprintf("theme: %v", err))
	}

	// Validate refresh rate
	if ui.RefreshRate < 100*time.Millisecond {
		errors = append(errors, "refresh_rate: must be at least 100ms")
	}
	if ui.RefreshRate > time.Minute {
		errors = append(errors, "refresh_rate: must not exceed 1 minute")
	}

	// Validate time format by round-tripping a reference time through it
	if ui.TimeFormat != "" {
		ref := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
		if _, err := time.Parse(ui.TimeFormat, ref.Format(ui.TimeFormat)); err != nil {
			errors = append(errors, fmt.Sprintf("time_format: invalid format: %v", err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}

// validateExport validates export configuration
func (v *StandardValidator) validateExport(export *ExportConfig) error {
	var errors []string

	if err := ValidateExportFormat(export.Format); err != nil {
		errors = append(errors, fmt.Sprintf("format: %v", err))
	}

	if export.OutputDir != "" {
		expanded := os.ExpandEnv(export.OutputDir)
		if _, err := os.Stat(expanded); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("output_dir: does not exist: %s", expanded))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}

// Built-in validation functions

// ValidateTheme validates UI theme
func ValidateTheme(theme string) error {
	validThemes := map[string]bool{
		"dark":          true,
		"light":         true,
		"high-contrast": true,
		"auto":          true,
	}

	if !validThemes[theme] {
		return fmt.Errorf("invalid theme: %s (valid: dark, light, high-contrast, auto)", theme)
	}
	return nil
}

// ValidateLogLevel validates log level
func ValidateLogLevel(level string) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", level)
	}
	return nil
}

// ValidateScenarioName validates a scenario name
func ValidateScenarioName(name string) error {
	validScenarios := map[string]bool{
		"network_outage":   true,
		"permission_storm": true,
		"validation_flood": true,
		"mixed_chaos":      true,
	}

	if !validScenarios[name] {
		return fmt.Errorf("unknown scenario: %s (valid: network_outage, permission_storm, validation_flood, mixed_chaos)", name)
	}
	return nil
}

// ValidateExportFormat validates an export format
func ValidateExportFormat(format string) error {
	validFormats := map[string]bool{
		"json": true,
		"csv":  true,
		"yaml": true,
	}

	if !validFormats[format] {
		return fmt.Errorf("invalid format: %s (valid: json, csv, yaml)", format)
	}
	return nil
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateTheme(t *testing.T) {
	tests := []struct {
		theme   string
		wantErr bool
	}{
		{"dark", false},
		{"light", false},
		{"high-contrast", false},
		{"auto", false},
		{"neon", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			err := ValidateTheme(tt.theme)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"trace", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := ValidateLogLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateScenarioName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"network_outage", false},
		{"permission_storm", false},
		{"validation_flood", false},
		{"mixed_chaos", false},
		{"total_meltdown", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScenarioName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateExportFormat(t *testing.T) {
	assert.NoError(t, ValidateExportFormat("json"))
	assert.NoError(t, ValidateExportFormat("csv"))
	assert.NoError(t, ValidateExportFormat("yaml"))
	assert.Error(t, ValidateExportFormat("xml"))
	assert.Error(t, ValidateExportFormat(""))
}

func TestStandardValidatorScenario(t *testing.T) {
	v := NewStandardValidator()

	cfg := DefaultConfig()
	cfg.Scenario.Interval = 50 * time.Millisecond
	assert.Error(t, v.Validate(cfg))

	cfg = DefaultConfig()
	cfg.Scenario.Interval = 2 * time.Hour
	assert.Error(t, v.Validate(cfg))

	cfg = DefaultConfig()
	cfg.Scenario.Autostart = "unknown_storm"
	assert.Error(t, v.Validate(cfg))

	cfg = DefaultConfig()
	cfg.Scenario.Autostart = "permission_storm"
	assert.NoError(t, v.Validate(cfg))
}

func TestStandardValidatorUI(t *testing.T) {
	v := NewStandardValidator()

	cfg := DefaultConfig()
	cfg.UI.RefreshRate = 10 * time.Millisecond
	assert.Error(t, v.Validate(cfg))

	cfg = DefaultConfig()
	cfg.UI.RefreshRate = 2 * time.Minute
	assert.Error(t, v.Validate(cfg))

	cfg = DefaultConfig()
	cfg.UI.TimeFormat = "15:04"
	assert.NoError(t, v.Validate(cfg))
}

func TestStandardValidatorAggregatesSections(t *testing.T) {
	cfg := DefaultConfig()
	cfg.App.LogLevel = "trace"
	cfg.UI.Theme = "neon"
	cfg.Export.Format = "xml"

	err := NewStandardValidator().Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "app:")
	assert.Contains(t, err.Error(), "ui:")
	assert.Contains(t, err.Error(), "export:")
}

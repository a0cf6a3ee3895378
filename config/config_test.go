package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test App config
	assert.Equal(t, "faultdeck", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)

	// Test Engine config
	assert.False(t, cfg.Engine.Disabled)
	assert.False(t, cfg.Engine.NoLatency)
	assert.Equal(t, int64(0), cfg.Engine.Seed)

	// Test Scenario config
	assert.Equal(t, 5*time.Second, cfg.Scenario.Interval)
	assert.Empty(t, cfg.Scenario.Autostart)

	// Test UI config
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, time.Second, cfg.UI.RefreshRate)
	assert.False(t, cfg.UI.CompactMode)

	// Test Export config
	assert.Equal(t, "json", cfg.Export.Format)
	assert.Equal(t, ".", cfg.Export.OutputDir)

	// Test Debug config
	assert.False(t, cfg.Debug.Enabled)
}

func TestDefaultConfigValidates(t *testing.T) {
	err := NewStandardValidator().Validate(DefaultConfig())
	assert.NoError(t, err)
}

func TestDevelopmentConfig(t *testing.T) {
	cfg := DevelopmentConfig()

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.True(t, cfg.Debug.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.RefreshRate)
	assert.True(t, cfg.Engine.NoLatency)
}

func TestConfigPaths(t *testing.T) {
	paths := ConfigPaths()
	require.NotEmpty(t, paths)
	assert.Equal(t, "./faultdeck.yaml", paths[0])
}

func TestLoaderWithDefaults(t *testing.T) {
	loader := NewLoader()
	loader.AddValidator(NewStandardValidator())

	cfg, err := loader.LoadWithDefaults()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "faultdeck", cfg.App.Name)
}

func TestLoaderFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faultdeck.yaml")
	content := []byte(`
app:
  log_level: debug
engine:
  seed: 42
  no_latency: true
scenario:
  interval: 2s
  autostart: network_outage
ui:
  theme: light
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	loader := NewLoader()
	loader.AddSource(NewFileSource(path))
	loader.AddValidator(NewStandardValidator())

	cfg, err := loader.LoadWithDefaults()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, int64(42), cfg.Engine.Seed)
	assert.True(t, cfg.Engine.NoLatency)
	assert.Equal(t, 2*time.Second, cfg.Scenario.Interval)
	assert.Equal(t, "network_outage", cfg.Scenario.Autostart)
	assert.Equal(t, "light", cfg.UI.Theme)

	// Sections absent from the file keep their defaults
	assert.Equal(t, "json", cfg.Export.Format)
}

func TestLoaderMissingFileFallsBackToDefaults(t *testing.T) {
	loader := NewLoader()
	loader.AddSource(NewFileSource(filepath.Join(t.TempDir(), "nope.yaml")))

	cfg, err := loader.LoadWithDefaults()
	require.NoError(t, err)
	assert.Equal(t, "faultdeck", cfg.App.Name)
}

func TestLoaderRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faultdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0o644))

	loader := NewLoader()
	loader.AddSource(NewFileSource(path))
	loader.AddValidator(NewStandardValidator())

	_, err := loader.LoadWithDefaults()
	assert.Error(t, err)
}

func TestEnvSource(t *testing.T) {
	t.Setenv("FAULTDECK_UI_THEME", "light")
	t.Setenv("FAULTDECK_SCENARIO_AUTOSTART", "mixed_chaos")

	loader := NewLoader()
	loader.AddSource(NewEnvSource("FAULTDECK"))

	cfg, err := loader.LoadWithDefaults()
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "mixed_chaos", cfg.Scenario.Autostart)
}

func TestEnvSourceLoadsWithoutEnv(t *testing.T) {
	// the source must decode cleanly even when no FAULTDECK_* vars are set
	source := NewEnvSource("FAULTDECK")
	cfg, err := source.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, time.Duration(0), cfg.Scenario.Interval)
	assert.Equal(t, time.Duration(0), cfg.UI.RefreshRate)
}

func TestEnvSourceDurations(t *testing.T) {
	t.Setenv("FAULTDECK_SCENARIO_INTERVAL", "2s")
	t.Setenv("FAULTDECK_UI_REFRESH_RATE", "250ms")

	loader := NewLoader()
	loader.AddSource(NewEnvSource("FAULTDECK"))

	cfg, err := loader.LoadWithDefaults()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Scenario.Interval)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.RefreshRate)
}

func TestDefaultMerger(t *testing.T) {
	merger := &DefaultMerger{}
	base := DefaultConfig()
	override := &Config{}
	override.Debug.Enabled = true
	override.UI.CompactMode = true
	override.UI.Theme = "light"

	merged := merger.Merge(base, override)
	assert.True(t, merged.Debug.Enabled)
	assert.True(t, merged.UI.CompactMode)
	assert.Equal(t, "light", merged.UI.Theme)

	// Empty override fields keep base values
	assert.Equal(t, "info", merged.App.LogLevel)
	assert.Equal(t, 5*time.Second, merged.Scenario.Interval)
}

package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glitchlab/faultdeck/config"
)

func testApplication(t *testing.T) *Application {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.App.LogFile = ""

	app, err := NewApplication(cfg)
	require.NoError(t, err)
	return app
}

func TestWatchConfigLifecycle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faultdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: dark\n"), 0o644))

	app := testApplication(t)
	app.WatchConfig(path)

	require.NoError(t, app.startConfigWatcher())
	require.NotNil(t, app.configWatcher)
	assert.Equal(t, "dark", app.configWatcher.Current().UI.Theme)

	require.NoError(t, app.stopConfigWatcher(context.Background()))
}

func TestApplyConfigUpdateSwapsConfig(t *testing.T) {
	app := testApplication(t)

	reloaded := config.DefaultConfig()
	reloaded.UI.Theme = "light"
	app.applyConfigUpdate(reloaded)

	app.mu.RLock()
	defer app.mu.RUnlock()
	assert.Same(t, reloaded, app.config)
}

func TestStopConfigWatcherWithoutWatcher(t *testing.T) {
	app := testApplication(t)
	require.NoError(t, app.stopConfigWatcher(context.Background()))
}

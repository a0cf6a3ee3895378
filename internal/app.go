package internal

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/glitchlab/faultdeck/config"
	"github.com/glitchlab/faultdeck/generator"
	"github.com/glitchlab/faultdeck/logging"
	"github.com/glitchlab/faultdeck/orchestrator"
	"github.com/glitchlab/faultdeck/recovery"
	"github.com/glitchlab/faultdeck/ui"
)

// Application wires the simulation engine together and owns its lifecycle.
type Application struct {
	config      *config.Config
	generator   *generator.Generator
	recovery    *recovery.Manager
	coordinator *orchestrator.Coordinator
	ui          *ui.App
	metrics     *Metrics

	configPath    string
	configWatcher *config.Watcher

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger logging.LoggerInterface

	running bool
	mu      sync.RWMutex
}

// NewApplication creates a new application instance
func NewApplication(cfg *config.Config) (*Application, error) {
	ctx, cancel := context.WithCancel(context.Background())

	app := &Application{
		config: cfg,
		ctx:    ctx,
		cancel: cancel,
		logger: logging.NewLogger(cfg.App.LogLevel, cfg.App.LogFile),
	}

	if err := app.bootstrap(); err != nil {
		cancel()
		return nil, fmt.Errorf("bootstrap failed: %w", err)
	}

	return app, nil
}

// Run starts the application and blocks until shutdown
func (a *Application) Run() error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return fmt.Errorf("application is already running")
	}
	a.running = true
	a.mu.Unlock()

	a.logger.Info("Starting faultdeck")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// The mode is fixed for the lifetime of the run; config reloads after
	// start must not flip it.
	compact := a.config.UI.CompactMode

	if err := a.start(); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	a.wg.Add(1)
	go a.handleSignals(sigCh)

	// The TUI blocks until the user quits
	var err error
	if compact {
		err = a.runBackground()
	} else {
		err = a.runInteractive()
	}

	a.cancel()
	a.wg.Wait()

	if shutdownErr := a.shutdown(); shutdownErr != nil {
		a.logger.Errorf("Shutdown error: %v", shutdownErr)
		if err == nil {
			err = shutdownErr
		}
	}

	a.logger.Info("faultdeck stopped")
	return err
}

// WatchConfig marks a configuration file for live reloading. It must be
// called before Run.
func (a *Application) WatchConfig(path string) {
	a.configPath = path
}

// start brings up the engine components before the UI takes over
func (a *Application) start() error {
	if a.config.Debug.MetricsPort > 0 {
		a.metrics = NewMetrics(a.config.Debug.MetricsPort, a.coordinator)
		a.metrics.Start()
	}

	if a.configPath != "" {
		if err := a.startConfigWatcher(); err != nil {
			// Live reload is a convenience; a broken watch must not keep
			// the engine from starting.
			a.logger.Warnf("Config watching disabled: %v", err)
		}
	}

	if name := a.config.Scenario.Autostart; name != "" {
		if err := a.startAutoScenario(name); err != nil {
			return fmt.Errorf("failed to autostart scenario %q: %w", name, err)
		}
		a.logger.Infof("Autostarted scenario: %s", name)
	}

	return nil
}

// startConfigWatcher begins live reloading of the configuration file.
func (a *Application) startConfigWatcher() error {
	watcher, err := config.NewWatcher(a.configPath, a.applyConfigUpdate)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	a.configWatcher = watcher
	a.logger.Infof("Watching config file: %s", a.configPath)
	return nil
}

// applyConfigUpdate installs a reloaded configuration and hands the UI its
// share. Engine wiring (seed, latency) is fixed at bootstrap and keeps its
// original values.
func (a *Application) applyConfigUpdate(cfg *config.Config) {
	a.mu.Lock()
	a.config = cfg
	a.mu.Unlock()

	a.logger.Infof("Applying reloaded configuration (theme=%s, refresh=%s)",
		cfg.UI.Theme, cfg.UI.RefreshRate)

	if a.ui != nil {
		a.ui.SendMessage(ui.ConfigUpdatedMsg{Config: cfg})
	}
}

// startAutoScenario starts the configured scenario, honoring the
// interval override when one is set.
func (a *Application) startAutoScenario(name string) error {
	scenario, ok := a.generator.Scenario(name)
	if !ok {
		return fmt.Errorf("unknown scenario: %s", name)
	}
	if a.config.Scenario.Interval > 0 {
		scenario.Interval = a.config.Scenario.Interval
	}
	return a.generator.StartScenario(scenario)
}

// runInteractive starts the TUI application
func (a *Application) runInteractive() error {
	a.logger.Info("Starting interactive TUI mode")
	return a.ui.Start()
}

// runBackground runs headless until the context is cancelled
func (a *Application) runBackground() error {
	a.logger.Info("Starting background mode")
	<-a.ctx.Done()
	return nil
}

// handleSignals handles OS signals
func (a *Application) handleSignals(sigCh <-chan os.Signal) {
	defer a.wg.Done()

	select {
	case <-sigCh:
		a.logger.Info("Received shutdown signal")
		if a.ui != nil {
			a.ui.Stop()
		}
		a.cancel()

	case <-a.ctx.Done():
	}
}

// Coordinator returns the handling coordinator
func (a *Application) Coordinator() *orchestrator.Coordinator {
	return a.coordinator
}

// Generator returns the error generator
func (a *Application) Generator() *generator.Generator {
	return a.generator
}

// IsRunning returns whether the application is currently running
func (a *Application) IsRunning() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.running
}

// newEngineRand builds the engine's random source, seeded from config
// when a fixed seed is set so demo runs are reproducible.
func newEngineRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

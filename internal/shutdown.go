package internal

import (
	"context"
	"fmt"
	"time"
)

// shutdown performs graceful shutdown of all application components
func (a *Application) shutdown() error {
	a.logger.Info("Initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.mu.Lock()
	a.running = false
	a.mu.Unlock()

	// Stop components in reverse order of initialization
	shutdownSteps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"UI", a.stopUI},
		{"Config watcher", a.stopConfigWatcher},
		{"Scenario emission", a.stopScenario},
		{"Metrics server", a.stopMetrics},
	}

	var errs []error
	for _, step := range shutdownSteps {
		if err := step.fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
			a.logger.Errorf("Failed to stop %s: %v", step.name, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	a.logger.Info("Graceful shutdown completed")
	return nil
}

// stopUI stops the user interface
func (a *Application) stopUI(ctx context.Context) error {
	if a.ui == nil {
		return nil
	}
	a.ui.Stop()
	return nil
}

// stopConfigWatcher stops live configuration reloading
func (a *Application) stopConfigWatcher(ctx context.Context) error {
	if a.configWatcher == nil {
		return nil
	}
	return a.configWatcher.Stop()
}

// stopScenario stops any running timed scenario
func (a *Application) stopScenario(ctx context.Context) error {
	if a.coordinator == nil {
		return nil
	}
	a.coordinator.StopScenario()
	return nil
}

// stopMetrics stops the debug metrics server
func (a *Application) stopMetrics(ctx context.Context) error {
	if a.metrics == nil {
		return nil
	}
	return a.metrics.Stop(ctx)
}

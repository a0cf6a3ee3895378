package internal

import (
	"fmt"

	"github.com/glitchlab/faultdeck/config"
	"github.com/glitchlab/faultdeck/generator"
	"github.com/glitchlab/faultdeck/orchestrator"
	"github.com/glitchlab/faultdeck/recovery"
	"github.com/glitchlab/faultdeck/ui"
)

// bootstrap initializes all application components
func (a *Application) bootstrap() error {
	a.logger.Info("Bootstrapping application")

	// 1. Validate configuration
	if err := a.validateConfig(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// 2. Error generator
	a.setupGenerator()

	// 3. Recovery manager
	a.setupRecovery()

	// 4. Handling coordinator
	a.setupCoordinator()

	// 5. UI
	if err := a.setupUI(); err != nil {
		return fmt.Errorf("failed to setup UI: %w", err)
	}

	a.logger.Info("Bootstrap completed")
	return nil
}

// validateConfig validates the loaded configuration
func (a *Application) validateConfig() error {
	if a.config == nil {
		return fmt.Errorf("configuration is nil")
	}
	return config.NewStandardValidator().Validate(a.config)
}

// setupGenerator creates the error generator
func (a *Application) setupGenerator() {
	a.generator = generator.New(
		generator.WithRand(newEngineRand(a.config.Engine.Seed)),
	)
}

// setupRecovery creates the recovery manager
func (a *Application) setupRecovery() {
	opts := []recovery.ManagerOption{
		recovery.WithRand(newEngineRand(a.config.Engine.Seed)),
	}
	if a.config.Engine.NoLatency {
		opts = append(opts, recovery.WithLatency(recovery.NoLatency()))
	}
	a.recovery = recovery.NewManager(opts...)
}

// setupCoordinator creates the handling coordinator and applies the
// initial kill-switch state.
func (a *Application) setupCoordinator() {
	a.coordinator = orchestrator.NewCoordinator(a.generator, a.recovery)
	if a.config.Engine.Disabled {
		a.coordinator.SetEnabled(false)
	}
}

// setupUI creates the terminal UI
func (a *Application) setupUI() error {
	app, err := ui.NewApp(a.coordinator, a.config)
	if err != nil {
		return err
	}
	a.ui = app
	return nil
}

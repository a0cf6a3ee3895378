package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glitchlab/faultdeck/config"
	"github.com/glitchlab/faultdeck/orchestrator"
)

// App wraps the Bubble Tea program around the handling coordinator
type App struct {
	model       Model
	program     *tea.Program
	coordinator *orchestrator.Coordinator
	config      *config.Config
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewApp creates a new application instance
func NewApp(coordinator *orchestrator.Coordinator, cfg *config.Config) (*App, error) {
	if coordinator == nil {
		return nil, ErrNoCoordinator
	}
	if cfg == nil {
		return nil, ErrNoConfig
	}

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		model:       NewModel(coordinator, cfg),
		coordinator: coordinator,
		config:      cfg,
		ctx:         ctx,
		cancel:      cancel,
	}

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	}
	app.program = tea.NewProgram(app.model, opts...)

	// Push coordinator transitions into the UI loop. The send runs on its
	// own goroutine so a busy program never blocks the engine.
	coordinator.RegisterUpdateCallback(func(snapshot orchestrator.StateSnapshot) {
		go app.program.Send(StateUpdateMsg{Snapshot: snapshot})
	})

	return app, nil
}

// Start begins the application and blocks until it exits
func (a *App) Start() error {
	_, err := a.program.Run()
	return err
}

// Stop gracefully shuts down the application. Cancelling the program's
// context terminates a running program and is a no-op on one that never
// ran; program.Quit must not be used here because Send blocks forever
// when the program is not running.
func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
}

// SendMessage sends a message to the application. The send runs on its
// own goroutine so callers never block on a program that is busy or
// already stopped.
func (a *App) SendMessage(msg tea.Msg) {
	if a.program != nil {
		go a.program.Send(msg)
	}
}

// IsRunning returns true if the application is currently running
func (a *App) IsRunning() bool {
	return a.ctx.Err() == nil
}

// Package orchestrator holds the Coordinator, the single source of truth the
// UI binds to: the one current error, the append-only history, the global
// enable switch, and the generator and recovery manager it composes.
package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/glitchlab/faultdeck/calculations"
	"github.com/glitchlab/faultdeck/generator"
	"github.com/glitchlab/faultdeck/logging"
	"github.com/glitchlab/faultdeck/models"
	"github.com/glitchlab/faultdeck/recovery"
)

// StateSnapshot is the observable state handed to update callbacks whenever
// the coordinator transitions.
type StateSnapshot struct {
	CurrentError     *models.MockError        `json:"current_error,omitempty"`
	RecoveryProgress *models.RecoveryProgress `json:"recovery_progress,omitempty"`
	Scenario         *models.ErrorScenario    `json:"scenario,omitempty"`
	Enabled          bool                     `json:"enabled"`
	HistoryLength    int                      `json:"history_length"`
}

// UpdateCallback receives a snapshot after every state transition.
type UpdateCallback func(StateSnapshot)

// Coordinator orchestrates error display and recovery. All mutation is
// serialized on one mutex; it is the only writer of the shared state.
type Coordinator struct {
	gen *generator.Generator
	rec *recovery.Manager

	current *models.MockError
	enabled bool
	history []models.MockError

	recoverySucceeded Counter
	recoveryFailed    Counter

	callbacks []UpdateCallback

	mu sync.RWMutex
}

// NewCoordinator wires a coordinator around the given generator and recovery
// manager. It subscribes to the generator so scenario-emitted errors are
// displayed automatically. Error handling starts enabled.
func NewCoordinator(gen *generator.Generator, rec *recovery.Manager) *Coordinator {
	c := &Coordinator{
		gen:     gen,
		rec:     rec,
		enabled: true,
	}
	gen.OnError(c.DisplayError)
	return c
}

// RegisterUpdateCallback registers a callback invoked after each transition.
func (c *Coordinator) RegisterUpdateCallback(callback UpdateCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks = append(c.callbacks, callback)
}

// IsEnabled reports the global kill switch.
func (c *Coordinator) IsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// SetEnabled flips the kill switch. While disabled, display calls are no-ops.
func (c *Coordinator) SetEnabled(enabled bool) {
	c.mu.Lock()
	c.enabled = enabled
	c.mu.Unlock()
	c.notify()
}

// CurrentError returns the displayed error, or nil when none is showing.
func (c *Coordinator) CurrentError() *models.MockError {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.current == nil {
		return nil
	}
	err := *c.current
	return &err
}

// History returns a copy of the append-only error history.
func (c *Coordinator) History() []models.MockError {
	c.mu.RLock()
	defer c.mu.RUnlock()

	history := make([]models.MockError, len(c.history))
	copy(history, c.history)
	return history
}

// DisplayError surfaces err as the current error and appends it to history.
// A previously displayed error is replaced without queueing: the UI only
// ever shows one. No-op while disabled.
func (c *Coordinator) DisplayError(err models.MockError) {
	c.mu.Lock()
	if !c.enabled {
		c.mu.Unlock()
		return
	}
	e := err
	c.current = &e
	c.history = append(c.history, err)
	c.mu.Unlock()

	logging.LogDebugf("displaying %s error %s (%s)", err.Category, err.ID, err.Severity)
	c.notify()
}

// DisplayErrorForCategory generates and displays an error of the category.
func (c *Coordinator) DisplayErrorForCategory(category models.ErrorCategory) models.MockError {
	err := c.gen.GenerateError(category)
	c.DisplayError(err)
	return err
}

// GenerateAndDisplayRandomError generates and displays a random error.
func (c *Coordinator) GenerateAndDisplayRandomError() models.MockError {
	err := c.gen.GenerateRandomError()
	c.DisplayError(err)
	return err
}

// DismissCurrentError clears the current error. History and statistics are
// untouched; an in-progress recovery flow is abandoned.
func (c *Coordinator) DismissCurrentError() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()

	c.rec.AbandonFlow()
	c.notify()
}

// BeginRecovery starts a recovery flow for the current error. ok is false
// when nothing is displayed.
func (c *Coordinator) BeginRecovery() (models.RecoveryProgress, bool) {
	current := c.CurrentError()
	if current == nil {
		return models.RecoveryProgress{}, false
	}
	progress := c.rec.StartRecoveryFlow(*current)
	c.notify()
	return progress, true
}

// ExecuteRecoveryAction runs one recovery step against the current error and
// records the aggregate outcome when the flow completes. ok is false when
// nothing is displayed.
func (c *Coordinator) ExecuteRecoveryAction(ctx context.Context, action models.RecoveryActionKind) (models.RecoveryResult, bool) {
	current := c.CurrentError()
	if current == nil {
		return models.RecoveryResult{}, false
	}

	// Snapshot completeness first: executing against an already-completed
	// flow is a no-op in the manager and must not count the flow again.
	before, hadFlow := c.rec.Progress()
	wasComplete := hadFlow && before.IsComplete && before.ErrorID == current.ID

	result := c.rec.ExecuteRecoveryAction(ctx, action, *current)

	if progress, active := c.rec.Progress(); active && !wasComplete &&
		progress.IsComplete && progress.ErrorID == current.ID {
		if progress.HasSucceeded {
			c.recoverySucceeded.Inc()
		} else {
			c.recoveryFailed.Inc()
		}
	}

	c.notify()
	return result, true
}

// RecoveryManager exposes the shared manager so collaborators can observe
// recovery progress for the current error.
func (c *Coordinator) RecoveryManager() *recovery.Manager {
	return c.rec
}

// StartScenario begins timed emission for a named built-in scenario.
func (c *Coordinator) StartScenario(name string) error {
	scenario, ok := c.gen.Scenario(name)
	if !ok {
		// Unknown names degrade to mixed chaos rather than failing; the
		// engine's inputs are total.
		scenario, _ = c.gen.Scenario(models.ScenarioMixedChaos)
	}
	if err := c.gen.StartScenario(scenario); err != nil {
		return err
	}
	c.notify()
	return nil
}

// StopScenario cancels any active scenario. Idempotent.
func (c *Coordinator) StopScenario() {
	c.gen.StopScenario()
	c.notify()
}

// CurrentScenario returns the active scenario, or nil.
func (c *Coordinator) CurrentScenario() *models.ErrorScenario {
	return c.gen.CurrentScenario()
}

// Statistics recomputes error statistics from history.
func (c *Coordinator) Statistics() models.ErrorStatistics {
	return calculations.ComputeStatistics(c.History(), time.Now())
}

// RecoveryCounts returns the aggregate recovery outcome counters.
func (c *Coordinator) RecoveryCounts() calculations.RecoveryCounts {
	return calculations.RecoveryCounts{
		Succeeded: c.recoverySucceeded.Value(),
		Failed:    c.recoveryFailed.Value(),
	}
}

// Insights derives a ranked list of observations from history. Empty history
// yields an empty list.
func (c *Coordinator) Insights() []models.RecoveryInsight {
	history := c.History()
	return calculations.DeriveInsights(history, calculations.ComputeStatistics(history, time.Now()), c.RecoveryCounts())
}

// ResetTracking clears history and the current error, stops any active
// scenario and zeroes the recovery counters.
func (c *Coordinator) ResetTracking() {
	c.gen.StopScenario()
	c.rec.AbandonFlow()

	c.mu.Lock()
	c.current = nil
	c.history = nil
	c.mu.Unlock()

	c.recoverySucceeded.Reset()
	c.recoveryFailed.Reset()

	logging.LogInfo("error tracking reset")
	c.notify()
}

// Export returns a snapshot of the error history for external consumption.
// Pure read; nothing is mutated.
func (c *Coordinator) Export() models.ErrorExport {
	return models.ErrorExport{
		ExportedAt: time.Now(),
		Errors:     c.History(),
	}
}

// demoScript is the fixed, ordered set of representative categories RunDemo
// walks through.
var demoScript = []models.ErrorCategory{
	models.CategoryNetwork,
	models.CategoryValidation,
	models.CategoryAuthentication,
	models.CategoryPermission,
	models.CategoryDependency,
	models.CategoryStateInconsistency,
	models.CategoryInfo,
}

// DemoScript returns a copy of the category sequence RunDemo walks.
func (c *Coordinator) DemoScript() []models.ErrorCategory {
	script := make([]models.ErrorCategory, len(demoScript))
	copy(script, demoScript)
	return script
}

// RunDemo displays a scripted sequence of representative errors with a delay
// between them. It stops early when ctx is cancelled and returns the errors
// it displayed.
func (c *Coordinator) RunDemo(ctx context.Context, stepDelay time.Duration) []models.MockError {
	displayed := make([]models.MockError, 0, len(demoScript))
	for i, category := range demoScript {
		if i > 0 && stepDelay > 0 {
			timer := time.NewTimer(stepDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return displayed
			case <-timer.C:
			}
		}
		displayed = append(displayed, c.DisplayErrorForCategory(category))
	}
	return displayed
}

// snapshot assembles the observable state under the read lock.
func (c *Coordinator) snapshot() StateSnapshot {
	c.mu.RLock()
	snap := StateSnapshot{
		Enabled:       c.enabled,
		HistoryLength: len(c.history),
	}
	if c.current != nil {
		err := *c.current
		snap.CurrentError = &err
	}
	c.mu.RUnlock()

	// A flow left over from a replaced error must not be paired with the
	// new error's card.
	if progress, ok := c.rec.Progress(); ok &&
		snap.CurrentError != nil && progress.ErrorID == snap.CurrentError.ID {
		snap.RecoveryProgress = &progress
	}
	snap.Scenario = c.gen.CurrentScenario()
	return snap
}

// notify delivers the current snapshot to all registered callbacks. A
// panicking callback must not take the coordinator down.
func (c *Coordinator) notify() {
	c.mu.RLock()
	callbacks := make([]UpdateCallback, len(c.callbacks))
	copy(callbacks, c.callbacks)
	c.mu.RUnlock()

	if len(callbacks) == 0 {
		return
	}
	snap := c.snapshot()
	for _, callback := range callbacks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logging.LogErrorf("update callback panic: %v", r)
				}
			}()
			callback(snap)
		}()
	}
}

// Package recovery drives the illusion of multi-step remediation for one
// displayed error at a time. Outcomes are randomized against a data-driven
// probability table; nothing here touches real system state.
package recovery

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/glitchlab/faultdeck/logging"
	"github.com/glitchlab/faultdeck/models"
)

// flowState is the mutable bookkeeping for one recovery flow. It lives for
// exactly one flow and is discarded when the flow is replaced or abandoned.
type flowState struct {
	errorID  string
	progress models.RecoveryProgress
	tried    map[models.RecoveryActionKind]bool
}

// Manager owns the per-error recovery state machine. A single flow is active
// at a time; starting a flow for a different error silently discards the
// prior one.
type Manager struct {
	table   OutcomeTable
	rng     *rand.Rand
	latency LatencySchedule

	flow *flowState
	mu   sync.RWMutex
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithOutcomeTable replaces the built-in probability table.
func WithOutcomeTable(table OutcomeTable) ManagerOption {
	return func(m *Manager) { m.table = table }
}

// WithRand injects a seeded random source.
func WithRand(rng *rand.Rand) ManagerOption {
	return func(m *Manager) { m.rng = rng }
}

// WithLatency replaces the simulated latency schedule.
func WithLatency(latency LatencySchedule) ManagerOption {
	return func(m *Manager) { m.latency = latency }
}

// NewManager creates a recovery manager with the default outcome table and
// latency schedule.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		table:   DefaultOutcomeTable(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		latency: DefaultLatency(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// StartRecoveryFlow begins a fresh flow for err, discarding any prior flow.
// Flow length is fixed by severity (see models.RecoveryStepsFor).
func (m *Manager) StartRecoveryFlow(err models.MockError) models.RecoveryProgress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startFlowLocked(err)
}

func (m *Manager) startFlowLocked(err models.MockError) models.RecoveryProgress {
	m.latency.Reset()
	m.flow = &flowState{
		errorID: err.ID,
		progress: models.RecoveryProgress{
			ErrorID:    err.ID,
			TotalSteps: models.RecoveryStepsFor(err.Severity),
		},
		tried: make(map[models.RecoveryActionKind]bool),
	}
	logging.LogDebugf("recovery flow started for %s (%d steps)", err.ID, m.flow.progress.TotalSteps)
	return m.flow.progress
}

// Progress returns a snapshot of the active flow's progress. ok is false
// when no flow is active.
func (m *Manager) Progress() (progress models.RecoveryProgress, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.flow == nil {
		return models.RecoveryProgress{}, false
	}
	return m.flow.progress, true
}

// AbandonFlow discards the active flow, if any. Dismissing an error mid-flow
// abandons recovery with no further cleanup.
func (m *Manager) AbandonFlow() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flow = nil
}

// ExecuteRecoveryAction runs one step of the active flow. It suspends once,
// for the simulated latency, and re-checks flow identity afterwards so a
// dismissal during the delay leaves no trace. Executing against an error
// with no active flow starts one implicitly; executing on a completed flow
// is a no-op that never advances the step counter.
func (m *Manager) ExecuteRecoveryAction(ctx context.Context, action models.RecoveryActionKind, err models.MockError) models.RecoveryResult {
	m.mu.Lock()
	if m.flow == nil || m.flow.errorID != err.ID {
		m.startFlowLocked(err)
	}
	if m.flow.progress.IsComplete {
		result := models.RecoveryResult{
			IsSuccessful: m.flow.progress.HasSucceeded,
			Message:      "Recovery already finished for this error.",
		}
		m.mu.Unlock()
		return result
	}
	delay := m.latency.Next()
	m.mu.Unlock()

	// The flow's only suspension point. Cancellation (scenario stop, error
	// dismissal, UI teardown) must not mutate progress.
	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return models.RecoveryResult{IsSuccessful: false, Message: "Recovery was cancelled."}
		case <-timer.C:
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Guard on error identity: the error may have been dismissed or replaced
	// while we were suspended. A stale continuation applies nothing.
	if m.flow == nil || m.flow.errorID != err.ID || m.flow.progress.IsComplete {
		return models.RecoveryResult{IsSuccessful: false, Message: "This error is no longer being recovered."}
	}

	flow := m.flow
	flow.tried[action] = true
	if flow.progress.CurrentStep < flow.progress.TotalSteps {
		flow.progress.CurrentStep++
	}

	succeeded := m.rng.Float64() < m.table.SuccessProbabilityFor(action, err)

	// A successful action resolves the error and ends the flow early; an
	// unsuccessful one only ends it once every step is spent. Either way the
	// final executed step's outcome is authoritative for the whole flow —
	// earlier step results do not aggregate into it.
	if succeeded || flow.progress.CurrentStep == flow.progress.TotalSteps {
		flow.progress.IsComplete = true
		flow.progress.HasSucceeded = succeeded
	}

	result := models.RecoveryResult{IsSuccessful: succeeded}
	if succeeded {
		result.Message = successMessage(action, flow.progress)
	} else {
		result.Message = failureMessage(action)
		result.NextRecommendedAction = nextUntriedAction(err, flow.tried)
	}

	logging.LogDebugf("recovery step %d/%d for %s via %s: success=%t",
		flow.progress.CurrentStep, flow.progress.TotalSteps, err.ID, action, succeeded)
	return result
}

// nextUntriedAction suggests the highest-priority action from the error's
// list that has not been tried this flow, falling back to reportIssue.
func nextUntriedAction(err models.MockError, tried map[models.RecoveryActionKind]bool) models.RecoveryActionKind {
	for _, action := range err.RecoveryActions {
		if !tried[action] {
			return action
		}
	}
	return models.ActionReportIssue
}

func successMessage(action models.RecoveryActionKind, progress models.RecoveryProgress) string {
	if progress.IsComplete {
		return fmt.Sprintf("%s worked — recovery complete.", action.Label())
	}
	return fmt.Sprintf("%s succeeded. Step %d of %d done.", action.Label(), progress.CurrentStep, progress.TotalSteps)
}

func failureMessage(action models.RecoveryActionKind) string {
	switch action {
	case models.ActionContactAdmin, models.ActionRequestPermission:
		return fmt.Sprintf("%s sent, but access hasn't been granted yet.", action.Label())
	case models.ActionRetry:
		return "The retry failed. The problem is still there."
	default:
		return fmt.Sprintf("%s didn't resolve the problem.", action.Label())
	}
}

package recovery

import (
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/glitchlab/faultdeck/models"
)

// OutcomeRule decides the simulated success chance of one action kind.
// AlwaysSucceeds short-circuits both probabilities. RetryableProbability is
// used instead of SuccessProbability when the error is retryable and the
// action is retry-like.
type OutcomeRule struct {
	AlwaysSucceeds       bool
	SuccessProbability   float64
	RetryableProbability float64
}

// OutcomeTable maps every action kind to its rule. Keeping the table as data
// lets tests swap in deterministic rules.
type OutcomeTable map[models.RecoveryActionKind]OutcomeRule

// DefaultOutcomeTable returns the built-in rules: dismiss and useDefaultState
// always succeed, permission-channel actions never do, retry-like actions are
// rewarded when the error is retryable.
func DefaultOutcomeTable() OutcomeTable {
	return OutcomeTable{
		models.ActionRetry:               {SuccessProbability: 0.35, RetryableProbability: 0.75},
		models.ActionCheckConnection:     {SuccessProbability: 0.40, RetryableProbability: 0.70},
		models.ActionRefreshEnvironment:  {SuccessProbability: 0.45, RetryableProbability: 0.70},
		models.ActionWorkOffline:         {SuccessProbability: 0.80, RetryableProbability: 0.80},
		models.ActionEditInput:           {SuccessProbability: 0.65, RetryableProbability: 0.65},
		models.ActionChooseDifferentName: {SuccessProbability: 0.85, RetryableProbability: 0.85},
		models.ActionContactAdmin:        {SuccessProbability: 0, RetryableProbability: 0},
		models.ActionRequestPermission:   {SuccessProbability: 0, RetryableProbability: 0},
		models.ActionUseDefaultState:     {AlwaysSucceeds: true},
		models.ActionReportIssue:         {SuccessProbability: 0.90, RetryableProbability: 0.90},
		models.ActionDismiss:             {AlwaysSucceeds: true},
	}
}

// SuccessProbabilityFor resolves the success chance of executing action
// against err. Unknown actions get an even chance.
func (t OutcomeTable) SuccessProbabilityFor(action models.RecoveryActionKind, err models.MockError) float64 {
	rule, ok := t[action]
	if !ok {
		return 0.5
	}
	if rule.AlwaysSucceeds {
		return 1
	}
	if err.IsRetryable && action.IsRetryLike() {
		return rule.RetryableProbability
	}
	return rule.SuccessProbability
}

// LatencySchedule supplies the simulated per-step remediation delay.
type LatencySchedule interface {
	// Next returns the delay before the next step's outcome lands.
	Next() time.Duration
	// Reset rewinds the schedule at the start of a new flow.
	Reset()
}

// backoffLatency grows the simulated delay step over step so deeper
// diagnostics feel slower, capped so the UI stays responsive.
type backoffLatency struct {
	b *backoff.ExponentialBackOff
}

// DefaultLatency returns the production latency schedule.
func DefaultLatency() LatencySchedule {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 300 * time.Millisecond
	b.MaxInterval = 1200 * time.Millisecond
	b.RandomizationFactor = 0.4
	b.Multiplier = 1.6
	b.MaxElapsedTime = 0 // steps are bounded by the flow, not by wall time
	b.Reset()
	return &backoffLatency{b: b}
}

func (l *backoffLatency) Next() time.Duration {
	d := l.b.NextBackOff()
	if d == backoff.Stop {
		return l.b.MaxInterval
	}
	return d
}

func (l *backoffLatency) Reset() {
	l.b.Reset()
}

// noLatency executes steps immediately; used by tests and the headless demo.
type noLatency struct{}

// NoLatency returns a schedule with zero delay.
func NoLatency() LatencySchedule { return noLatency{} }

func (noLatency) Next() time.Duration { return 0 }
func (noLatency) Reset()              {}

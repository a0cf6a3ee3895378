package recovery

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glitchlab/faultdeck/models"
)

// fixedTable builds a table where every action has the same success chance.
func fixedTable(probability float64) OutcomeTable {
	table := OutcomeTable{}
	for action := range DefaultOutcomeTable() {
		table[action] = OutcomeRule{SuccessProbability: probability, RetryableProbability: probability}
	}
	return table
}

func testManager(t *testing.T, opts ...ManagerOption) *Manager {
	t.Helper()
	base := []ManagerOption{
		WithRand(rand.New(rand.NewSource(42))),
		WithLatency(NoLatency()),
	}
	return NewManager(append(base, opts...)...)
}

func networkError() models.MockError {
	return models.NewMockError(models.CategoryNetwork, "no_connection", "No Connection",
		"The network is unreachable.", models.SeverityHigh, true,
		[]models.RecoveryActionKind{models.ActionRetry, models.ActionCheckConnection, models.ActionWorkOffline, models.ActionDismiss})
}

func permissionError() models.MockError {
	return models.NewMockError(models.CategoryPermission, "access_denied", "Access Denied",
		"You do not have permission.", models.SeverityHigh, false,
		[]models.RecoveryActionKind{models.ActionContactAdmin, models.ActionRequestPermission, models.ActionDismiss})
}

func TestStartRecoveryFlow_StepsBySeverity(t *testing.T) {
	m := testManager(t)

	tests := []struct {
		severity models.ErrorSeverity
		steps    int
	}{
		{models.SeverityInfo, models.StepsShortFlow},
		{models.SeverityLow, models.StepsShortFlow},
		{models.SeverityMedium, models.StepsStandardFlow},
		{models.SeverityHigh, models.StepsStandardFlow},
		{models.SeverityCritical, models.StepsCriticalFlow},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			err := models.NewMockError(models.CategoryGeneric, "unexpected", "Oops", "Something broke.",
				tt.severity, false, []models.RecoveryActionKind{models.ActionRetry})

			progress := m.StartRecoveryFlow(err)
			assert.Equal(t, 0, progress.CurrentStep)
			assert.Equal(t, tt.steps, progress.TotalSteps)
			assert.False(t, progress.IsComplete)
		})
	}
}

func TestExecuteRecoveryAction_StepMonotonicAndClamped(t *testing.T) {
	m := testManager(t, WithOutcomeTable(fixedTable(0)))
	err := networkError()
	m.StartRecoveryFlow(err)

	last := 0
	for i := 0; i < models.StepsStandardFlow+3; i++ {
		m.ExecuteRecoveryAction(context.Background(), models.ActionRetry, err)
		progress, ok := m.Progress()
		require.True(t, ok)
		assert.GreaterOrEqual(t, progress.CurrentStep, last)
		assert.LessOrEqual(t, progress.CurrentStep, progress.TotalSteps)
		last = progress.CurrentStep
	}

	progress, _ := m.Progress()
	assert.True(t, progress.IsComplete)
	assert.Equal(t, progress.TotalSteps, progress.CurrentStep)
}

func TestExecuteRecoveryAction_CompletedFlowIsNoOp(t *testing.T) {
	m := testManager(t, WithOutcomeTable(fixedTable(0)))
	err := networkError()
	m.StartRecoveryFlow(err)

	for i := 0; i < models.StepsStandardFlow; i++ {
		m.ExecuteRecoveryAction(context.Background(), models.ActionRetry, err)
	}
	before, _ := m.Progress()
	require.True(t, before.IsComplete)

	result := m.ExecuteRecoveryAction(context.Background(), models.ActionRetry, err)
	after, _ := m.Progress()
	assert.Equal(t, before.CurrentStep, after.CurrentStep)
	assert.Equal(t, before.HasSucceeded, result.IsSuccessful)
}

func TestExecuteRecoveryAction_SuccessCompletesEarly(t *testing.T) {
	m := testManager(t, WithOutcomeTable(fixedTable(1)))
	err := networkError()
	m.StartRecoveryFlow(err)

	result := m.ExecuteRecoveryAction(context.Background(), models.ActionRetry, err)
	assert.True(t, result.IsSuccessful)

	progress, ok := m.Progress()
	require.True(t, ok)
	assert.True(t, progress.IsComplete)
	assert.True(t, progress.HasSucceeded)
	assert.Equal(t, 1, progress.CurrentStep)
}

func TestExecuteRecoveryAction_FinalStepOutcomeIsAuthoritative(t *testing.T) {
	// Fails all the way down: the flow completes unsuccessfully even though
	// no earlier step succeeded either; HasSucceeded mirrors the last step.
	m := testManager(t, WithOutcomeTable(fixedTable(0)))
	err := networkError()
	m.StartRecoveryFlow(err)

	var result models.RecoveryResult
	for i := 0; i < models.StepsStandardFlow; i++ {
		result = m.ExecuteRecoveryAction(context.Background(), models.ActionRetry, err)
	}

	progress, _ := m.Progress()
	assert.True(t, progress.IsComplete)
	assert.False(t, progress.HasSucceeded)
	assert.False(t, result.IsSuccessful)
}

func TestExecuteRecoveryAction_RetryTwiceSecondSucceeds(t *testing.T) {
	// Stub: retry fails when untried, succeeds once it has been tried before.
	// Modeled by giving retry probability 0 on the default table, then
	// flipping the table between calls — the table is plain data.
	err := networkError()

	table := fixedTable(0)
	m := testManager(t, WithOutcomeTable(table))
	m.StartRecoveryFlow(err)

	first := m.ExecuteRecoveryAction(context.Background(), models.ActionRetry, err)
	assert.False(t, first.IsSuccessful)

	table[models.ActionRetry] = OutcomeRule{AlwaysSucceeds: true}
	second := m.ExecuteRecoveryAction(context.Background(), models.ActionRetry, err)
	assert.True(t, second.IsSuccessful)

	progress, ok := m.Progress()
	require.True(t, ok)
	assert.True(t, progress.IsComplete)
	assert.True(t, progress.HasSucceeded)
}

func TestExecuteRecoveryAction_PermissionActionsNeverSucceed(t *testing.T) {
	m := testManager(t)
	err := permissionError()
	m.StartRecoveryFlow(err)

	result := m.ExecuteRecoveryAction(context.Background(), models.ActionContactAdmin, err)
	assert.False(t, result.IsSuccessful)
	assert.NotEmpty(t, result.NextRecommendedAction)
	assert.NotEqual(t, models.ActionContactAdmin, result.NextRecommendedAction, "must suggest an untried action")
	assert.Contains(t, err.RecoveryActions, result.NextRecommendedAction)
}

func TestExecuteRecoveryAction_RecommendationFallsBackToReportIssue(t *testing.T) {
	m := testManager(t, WithOutcomeTable(OutcomeTable{
		models.ActionContactAdmin:      {SuccessProbability: 0},
		models.ActionRequestPermission: {SuccessProbability: 0},
		models.ActionDismiss:           {SuccessProbability: 0},
	}))
	err := permissionError()
	m.StartRecoveryFlow(err)

	m.ExecuteRecoveryAction(context.Background(), models.ActionContactAdmin, err)
	m.ExecuteRecoveryAction(context.Background(), models.ActionRequestPermission, err)
	result := m.ExecuteRecoveryAction(context.Background(), models.ActionDismiss, err)

	assert.False(t, result.IsSuccessful)
	assert.Equal(t, models.ActionReportIssue, result.NextRecommendedAction)
}

func TestExecuteRecoveryAction_DeterministicUnderSeed(t *testing.T) {
	run := func() bool {
		m := NewManager(
			WithRand(rand.New(rand.NewSource(1234))),
			WithLatency(NoLatency()),
		)
		err := models.MockError{
			ID: "fixed-id", Category: models.CategoryNetwork, Subtype: "no_connection",
			Title: "No Connection", Message: "Offline.", Severity: models.SeverityHigh,
			IsRetryable: true, RecoveryActions: []models.RecoveryActionKind{models.ActionRetry},
			CreatedAt: time.Unix(0, 0),
		}
		m.StartRecoveryFlow(err)
		return m.ExecuteRecoveryAction(context.Background(), models.ActionRetry, err).IsSuccessful
	}

	first := run()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, run())
	}
}

func TestExecuteRecoveryAction_ImplicitFlowStart(t *testing.T) {
	m := testManager(t, WithOutcomeTable(fixedTable(0)))
	err := networkError()

	// No StartRecoveryFlow call: executing starts the flow.
	m.ExecuteRecoveryAction(context.Background(), models.ActionRetry, err)
	progress, ok := m.Progress()
	require.True(t, ok)
	assert.Equal(t, err.ID, progress.ErrorID)
	assert.Equal(t, 1, progress.CurrentStep)
}

func TestExecuteRecoveryAction_NewErrorDiscardsPriorFlow(t *testing.T) {
	m := testManager(t, WithOutcomeTable(fixedTable(0)))
	first := networkError()
	m.StartRecoveryFlow(first)
	m.ExecuteRecoveryAction(context.Background(), models.ActionRetry, first)

	second := permissionError()
	m.StartRecoveryFlow(second)

	progress, ok := m.Progress()
	require.True(t, ok)
	assert.Equal(t, second.ID, progress.ErrorID)
	assert.Equal(t, 0, progress.CurrentStep)
}

func TestExecuteRecoveryAction_CancelledContextDoesNotMutate(t *testing.T) {
	m := testManager(t,
		WithOutcomeTable(fixedTable(1)),
		WithLatency(fixedLatency(50*time.Millisecond)),
	)
	err := networkError()
	m.StartRecoveryFlow(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := m.ExecuteRecoveryAction(ctx, models.ActionRetry, err)
	assert.False(t, result.IsSuccessful)

	progress, ok := m.Progress()
	require.True(t, ok)
	assert.Equal(t, 0, progress.CurrentStep, "cancelled execution must not advance the flow")
	assert.False(t, progress.IsComplete)
}

func TestExecuteRecoveryAction_AbandonDuringLatencyIsGuarded(t *testing.T) {
	m := testManager(t,
		WithOutcomeTable(fixedTable(1)),
		WithLatency(fixedLatency(80*time.Millisecond)),
	)
	err := networkError()
	m.StartRecoveryFlow(err)

	done := make(chan models.RecoveryResult, 1)
	go func() {
		done <- m.ExecuteRecoveryAction(context.Background(), models.ActionRetry, err)
	}()

	time.Sleep(20 * time.Millisecond)
	m.AbandonFlow()

	result := <-done
	assert.False(t, result.IsSuccessful)

	_, ok := m.Progress()
	assert.False(t, ok, "abandoned flow must stay discarded")
}

func TestOutcomeTable_SuccessProbabilityFor(t *testing.T) {
	table := DefaultOutcomeTable()
	retryable := networkError()
	notRetryable := permissionError()

	assert.Equal(t, 1.0, table.SuccessProbabilityFor(models.ActionDismiss, retryable))
	assert.Equal(t, 1.0, table.SuccessProbabilityFor(models.ActionUseDefaultState, notRetryable))
	assert.Zero(t, table.SuccessProbabilityFor(models.ActionContactAdmin, retryable))
	assert.Zero(t, table.SuccessProbabilityFor(models.ActionRequestPermission, notRetryable))

	// Retry-like actions earn the retryable probability only on retryable errors.
	assert.Greater(t,
		table.SuccessProbabilityFor(models.ActionRetry, retryable),
		table.SuccessProbabilityFor(models.ActionRetry, notRetryable))

	// Unknown actions get an even chance.
	assert.Equal(t, 0.5, table.SuccessProbabilityFor("percussive_maintenance", retryable))
}

// fixedLatency returns the same delay for every step.
type fixedLatency time.Duration

func (f fixedLatency) Next() time.Duration { return time.Duration(f) }
func (f fixedLatency) Reset()              {}

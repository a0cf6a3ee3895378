package models

import (
	"time"

	"github.com/google/uuid"
)

// MockError represents one simulated error event. It is immutable once
// created: recovery flows track progress alongside it, never inside it.
type MockError struct {
	ID              string               `json:"id"`
	Category        ErrorCategory        `json:"category"`
	Subtype         string               `json:"subtype"`
	Title           string               `json:"title"`
	Message         string               `json:"message"`
	Severity        ErrorSeverity        `json:"severity"`
	IsRetryable     bool                 `json:"is_retryable"`
	RecoveryActions []RecoveryActionKind `json:"recovery_actions"`
	Context         map[string]string    `json:"context,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

// NewMockError builds a MockError with a fresh identity and timestamp.
func NewMockError(category ErrorCategory, subtype, title, message string, severity ErrorSeverity, retryable bool, actions []RecoveryActionKind) MockError {
	if len(actions) == 0 {
		actions = []RecoveryActionKind{ActionDismiss}
	}
	return MockError{
		ID:              uuid.New().String(),
		Category:        category,
		Subtype:         subtype,
		Title:           title,
		Message:         message,
		Severity:        severity,
		IsRetryable:     retryable,
		RecoveryActions: actions,
		CreatedAt:       time.Now(),
	}
}

// PrimaryActions returns the actions shown directly, in priority order.
func (e MockError) PrimaryActions() []RecoveryActionKind {
	if len(e.RecoveryActions) <= MaxPrimaryActions {
		return e.RecoveryActions
	}
	return e.RecoveryActions[:MaxPrimaryActions]
}

// OverflowActions returns the actions collapsed behind the overflow control.
func (e MockError) OverflowActions() []RecoveryActionKind {
	if len(e.RecoveryActions) <= MaxPrimaryActions {
		return nil
	}
	return e.RecoveryActions[MaxPrimaryActions:]
}

// RecoveryProgress tracks one recovery flow for one error. CurrentStep is
// 1-based once the first action executes; HasSucceeded is meaningful only
// when IsComplete is true.
type RecoveryProgress struct {
	ErrorID      string `json:"error_id"`
	CurrentStep  int    `json:"current_step"`
	TotalSteps   int    `json:"total_steps"`
	IsComplete   bool   `json:"is_complete"`
	HasSucceeded bool   `json:"has_succeeded"`
}

// ProgressPercentage returns completion in [0,1].
func (p RecoveryProgress) ProgressPercentage() float64 {
	if p.TotalSteps <= 0 {
		return 0
	}
	return float64(p.CurrentStep) / float64(p.TotalSteps)
}

// RecoveryResult is the outcome of one executed recovery action. Results are
// rendered once and discarded; only aggregate counts outlive them.
type RecoveryResult struct {
	IsSuccessful          bool               `json:"is_successful"`
	Message               string             `json:"message"`
	NextRecommendedAction RecoveryActionKind `json:"next_recommended_action,omitempty"`
}

// ErrorScenario is a named policy for automatic, timed error emission.
// Weights bias category selection; a zero or missing weight excludes the
// category.
type ErrorScenario struct {
	Name     string                `json:"name"`
	Interval time.Duration         `json:"interval"`
	Weights  map[ErrorCategory]int `json:"weights"`
}

// ErrorStatistics is derived from error history on demand, never stored.
type ErrorStatistics struct {
	TotalErrors          int                   `json:"total_errors"`
	ErrorsByCategory     map[ErrorCategory]int `json:"errors_by_category"`
	AverageErrorsPerHour float64               `json:"average_errors_per_hour"`
}

// RecoveryInsight is a derived, human-readable observation computed from
// error history. Category is empty when the insight is not category-specific.
type RecoveryInsight struct {
	Message        string        `json:"message"`
	Recommendation string        `json:"recommendation"`
	Category       ErrorCategory `json:"category,omitempty"`
}

// ErrorExport is the snapshot shape handed to external consumers.
type ErrorExport struct {
	ExportedAt time.Time   `json:"exported_at"`
	Errors     []MockError `json:"errors"`
}

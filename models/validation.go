package models

import (
	"fmt"
	"time"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidCategory reports whether c belongs to the known taxonomy.
func ValidCategory(c ErrorCategory) bool {
	_, ok := categoryMetadata[c]
	return ok
}

// NormalizeCategory maps an out-of-taxonomy category to generic. Generation
// must never fail for bad input, so callers normalize instead of erroring.
func NormalizeCategory(c ErrorCategory) ErrorCategory {
	if ValidCategory(c) {
		return c
	}
	return CategoryGeneric
}

// ValidAction reports whether a belongs to the known action set.
func ValidAction(a RecoveryActionKind) bool {
	_, ok := actionMetadata[a]
	return ok
}

// Validate validates a MockError
func (e *MockError) Validate() error {
	if e.ID == "" {
		return ValidationError{Field: "ID", Message: "id cannot be empty"}
	}

	if !ValidCategory(e.Category) {
		return ValidationError{Field: "Category", Message: "unknown category"}
	}

	if e.Title == "" {
		return ValidationError{Field: "Title", Message: "title cannot be empty"}
	}

	if e.Message == "" {
		return ValidationError{Field: "Message", Message: "message cannot be empty"}
	}

	if e.Severity < SeverityInfo || e.Severity > SeverityCritical {
		return ValidationError{Field: "Severity", Message: "severity out of range"}
	}

	if len(e.RecoveryActions) == 0 {
		return ValidationError{Field: "RecoveryActions", Message: "at least one recovery action is required"}
	}

	for _, action := range e.RecoveryActions {
		if !ValidAction(action) {
			return ValidationError{Field: "RecoveryActions", Message: fmt.Sprintf("unknown action '%s'", action)}
		}
	}

	if e.CreatedAt.IsZero() {
		return ValidationError{Field: "CreatedAt", Message: "creation timestamp cannot be zero"}
	}

	if e.CreatedAt.After(time.Now().Add(time.Minute)) {
		return ValidationError{Field: "CreatedAt", Message: "creation timestamp cannot be in the future"}
	}

	return nil
}

// Validate validates an ErrorScenario
func (s *ErrorScenario) Validate() error {
	if s.Name == "" {
		return ValidationError{Field: "Name", Message: "name cannot be empty"}
	}

	if s.Interval <= 0 {
		return ValidationError{Field: "Interval", Message: "interval must be positive"}
	}

	if len(s.Weights) == 0 {
		return ValidationError{Field: "Weights", Message: "at least one weighted category is required"}
	}

	total := 0
	for category, weight := range s.Weights {
		if !ValidCategory(category) {
			return ValidationError{Field: "Weights", Message: fmt.Sprintf("unknown category '%s'", category)}
		}
		if weight < 0 {
			return ValidationError{Field: "Weights", Message: "weights cannot be negative"}
		}
		total += weight
	}

	if total == 0 {
		return ValidationError{Field: "Weights", Message: "at least one weight must be greater than zero"}
	}

	return nil
}

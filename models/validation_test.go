package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestError() MockError {
	return NewMockError(CategoryNetwork, "no_connection", "No Connection",
		"The network is unreachable.", SeverityHigh, true,
		[]RecoveryActionKind{ActionRetry, ActionCheckConnection, ActionDismiss})
}

func TestMockError_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MockError)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid error",
			mutate:  func(e *MockError) {},
			wantErr: false,
		},
		{
			name:    "empty id",
			mutate:  func(e *MockError) { e.ID = "" },
			wantErr: true,
			errMsg:  "id cannot be empty",
		},
		{
			name:    "unknown category",
			mutate:  func(e *MockError) { e.Category = ErrorCategory("cosmic_ray") },
			wantErr: true,
			errMsg:  "unknown category",
		},
		{
			name:    "empty title",
			mutate:  func(e *MockError) { e.Title = "" },
			wantErr: true,
			errMsg:  "title cannot be empty",
		},
		{
			name:    "empty message",
			mutate:  func(e *MockError) { e.Message = "" },
			wantErr: true,
			errMsg:  "message cannot be empty",
		},
		{
			name:    "severity out of range",
			mutate:  func(e *MockError) { e.Severity = SeverityCritical + 1 },
			wantErr: true,
			errMsg:  "severity out of range",
		},
		{
			name:    "no recovery actions",
			mutate:  func(e *MockError) { e.RecoveryActions = nil },
			wantErr: true,
			errMsg:  "at least one recovery action is required",
		},
		{
			name:    "unknown action",
			mutate:  func(e *MockError) { e.RecoveryActions = []RecoveryActionKind{"percussive_maintenance"} },
			wantErr: true,
			errMsg:  "unknown action",
		},
		{
			name:    "zero timestamp",
			mutate:  func(e *MockError) { e.CreatedAt = time.Time{} },
			wantErr: true,
			errMsg:  "creation timestamp cannot be zero",
		},
		{
			name:    "future timestamp",
			mutate:  func(e *MockError) { e.CreatedAt = time.Now().Add(time.Hour) },
			wantErr: true,
			errMsg:  "creation timestamp cannot be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validTestError()
			tt.mutate(&err)

			verr := err.Validate()
			if tt.wantErr {
				require.Error(t, verr)
				assert.Contains(t, verr.Error(), tt.errMsg)
			} else {
				assert.NoError(t, verr)
			}
		})
	}
}

func TestErrorScenario_Validate(t *testing.T) {
	tests := []struct {
		name     string
		scenario ErrorScenario
		wantErr  bool
		errMsg   string
	}{
		{
			name: "valid scenario",
			scenario: ErrorScenario{
				Name:     ScenarioNetworkOutage,
				Interval: time.Second,
				Weights:  map[ErrorCategory]int{CategoryNetwork: 3, CategoryDependency: 1},
			},
			wantErr: false,
		},
		{
			name: "empty name",
			scenario: ErrorScenario{
				Interval: time.Second,
				Weights:  map[ErrorCategory]int{CategoryNetwork: 1},
			},
			wantErr: true,
			errMsg:  "name cannot be empty",
		},
		{
			name: "non-positive interval",
			scenario: ErrorScenario{
				Name:    "broken",
				Weights: map[ErrorCategory]int{CategoryNetwork: 1},
			},
			wantErr: true,
			errMsg:  "interval must be positive",
		},
		{
			name: "no weights",
			scenario: ErrorScenario{
				Name:     "broken",
				Interval: time.Second,
			},
			wantErr: true,
			errMsg:  "at least one weighted category is required",
		},
		{
			name: "unknown category",
			scenario: ErrorScenario{
				Name:     "broken",
				Interval: time.Second,
				Weights:  map[ErrorCategory]int{"warp_core": 1},
			},
			wantErr: true,
			errMsg:  "unknown category",
		},
		{
			name: "negative weight",
			scenario: ErrorScenario{
				Name:     "broken",
				Interval: time.Second,
				Weights:  map[ErrorCategory]int{CategoryNetwork: -1},
			},
			wantErr: true,
			errMsg:  "weights cannot be negative",
		},
		{
			name: "all weights zero",
			scenario: ErrorScenario{
				Name:     "broken",
				Interval: time.Second,
				Weights:  map[ErrorCategory]int{CategoryNetwork: 0},
			},
			wantErr: true,
			errMsg:  "at least one weight must be greater than zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	for _, category := range AllCategories() {
		assert.Equal(t, category, NormalizeCategory(category))
	}
	assert.Equal(t, CategoryGeneric, NormalizeCategory("tachyon_burst"))
	assert.Equal(t, CategoryGeneric, NormalizeCategory(""))
}

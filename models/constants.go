package models

import "time"

// Recovery flow sizing
const (
	// MaxPrimaryActions is how many recovery actions are shown directly;
	// the remainder collapse behind an overflow control.
	MaxPrimaryActions = 3

	// Steps per severity tier. Higher tiers get longer flows so critical
	// errors feel more involved to recover from.
	StepsShortFlow    = 2 // info, low
	StepsStandardFlow = 3 // medium, high
	StepsCriticalFlow = 4 // critical
)

// RecoveryStepsFor maps a severity to its fixed recovery flow length.
func RecoveryStepsFor(severity ErrorSeverity) int {
	switch {
	case severity >= SeverityCritical:
		return StepsCriticalFlow
	case severity >= SeverityMedium:
		return StepsStandardFlow
	default:
		return StepsShortFlow
	}
}

// Scenario timing
const (
	DefaultScenarioInterval = 5 * time.Second
	MinScenarioInterval     = 100 * time.Millisecond
	DefaultDemoStepDelay    = 1500 * time.Millisecond
)

// Statistics derivation
const (
	// MinStatsElapsed is the shortest history span for which an hourly
	// rate is meaningful; below it AverageErrorsPerHour reports 0.
	MinStatsElapsed = time.Minute
)

// Predefined scenario names
const (
	ScenarioNetworkOutage   = "network_outage"
	ScenarioPermissionStorm = "permission_storm"
	ScenarioValidationFlood = "validation_flood"
	ScenarioMixedChaos      = "mixed_chaos"
)

// File paths and patterns
const (
	ConfigFileName        = ".faultdeck.yml"
	DefaultExportFileName = "faultdeck-errors"
)

// Time formats
const (
	DisplayTimeFormat = "2006-01-02 15:04:05"
	FileTimeFormat    = "20060102-150405"
)

// UI constants
const (
	DefaultTerminalWidth  = 80
	DefaultTerminalHeight = 24
	MinTerminalWidth      = 60
	MinTerminalHeight     = 10
)

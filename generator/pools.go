package generator

import "github.com/glitchlab/faultdeck/models"

// Template is one generatable error shape. Titles and Messages are parallel
// variant pools; generation picks a title index and an independent message
// index. RetryableBias is the probability the produced error is retryable.
type Template struct {
	Subtype       string
	Titles        []string
	Messages      []string
	Severity      models.ErrorSeverity
	Actions       []models.RecoveryActionKind
	RetryableBias float64
}

// DefaultPools returns the built-in template pool for every category.
// Network and dependency errors lean retryable; validation and permission
// errors lean not.
func DefaultPools() map[models.ErrorCategory][]Template {
	return map[models.ErrorCategory][]Template{
		models.CategoryNetwork: {
			{
				Subtype: "no_connection",
				Titles:  []string{"No Connection", "You're Offline"},
				Messages: []string{
					"The network is unreachable. Check your connection and try again.",
					"We couldn't reach the server. Your device appears to be offline.",
				},
				Severity: models.SeverityHigh,
				Actions: []models.RecoveryActionKind{
					models.ActionRetry, models.ActionCheckConnection, models.ActionWorkOffline, models.ActionDismiss,
				},
				RetryableBias: 0.9,
			},
			{
				Subtype: "timeout",
				Titles:  []string{"Request Timed Out", "Slow Connection"},
				Messages: []string{
					"The server took too long to respond.",
					"This is taking longer than expected. The connection may be unstable.",
				},
				Severity: models.SeverityMedium,
				Actions: []models.RecoveryActionKind{
					models.ActionRetry, models.ActionCheckConnection, models.ActionDismiss,
				},
				RetryableBias: 0.9,
			},
		},
		models.CategoryValidation: {
			{
				Subtype: "invalid_input",
				Titles:  []string{"Invalid Input", "Check Your Entry"},
				Messages: []string{
					"Some fields contain values we can't accept.",
					"The highlighted fields need a different value before you can continue.",
				},
				Severity: models.SeverityLow,
				Actions: []models.RecoveryActionKind{
					models.ActionEditInput, models.ActionUseDefaultState, models.ActionDismiss,
				},
				RetryableBias: 0.1,
			},
			{
				Subtype: "duplicate_name",
				Titles:  []string{"Name Already Taken", "Duplicate Name"},
				Messages: []string{
					"An item with this name already exists.",
					"That name is in use. Pick something unique.",
				},
				Severity: models.SeverityLow,
				Actions: []models.RecoveryActionKind{
					models.ActionChooseDifferentName, models.ActionEditInput, models.ActionDismiss,
				},
				RetryableBias: 0.1,
			},
		},
		models.CategoryAuthentication: {
			{
				Subtype: "session_expired",
				Titles:  []string{"Session Expired", "Signed Out"},
				Messages: []string{
					"Your session has expired. Sign in again to continue.",
					"For your security you've been signed out after a period of inactivity.",
				},
				Severity: models.SeverityMedium,
				Actions: []models.RecoveryActionKind{
					models.ActionRetry, models.ActionRefreshEnvironment, models.ActionDismiss,
				},
				RetryableBias: 0.6,
			},
			{
				Subtype: "invalid_credentials",
				Titles:  []string{"Sign-In Failed", "Wrong Credentials"},
				Messages: []string{
					"The credentials you entered don't match our records.",
					"We couldn't verify your identity with those details.",
				},
				Severity: models.SeverityMedium,
				Actions: []models.RecoveryActionKind{
					models.ActionEditInput, models.ActionRetry, models.ActionReportIssue, models.ActionDismiss,
				},
				RetryableBias: 0.4,
			},
		},
		models.CategoryPermission: {
			{
				Subtype: "access_denied",
				Titles:  []string{"Access Denied", "Not Allowed"},
				Messages: []string{
					"You don't have permission to view this item.",
					"This area is restricted. An administrator can grant you access.",
				},
				Severity: models.SeverityHigh,
				Actions: []models.RecoveryActionKind{
					models.ActionRequestPermission, models.ActionContactAdmin, models.ActionDismiss,
				},
				RetryableBias: 0.05,
			},
			{
				Subtype: "feature_restricted",
				Titles:  []string{"Feature Locked", "Upgrade Required"},
				Messages: []string{
					"Your current role can't use this feature.",
					"This feature isn't included in your current plan.",
				},
				Severity: models.SeverityMedium,
				Actions: []models.RecoveryActionKind{
					models.ActionContactAdmin, models.ActionDismiss,
				},
				RetryableBias: 0.05,
			},
		},
		models.CategoryNotFound: {
			{
				Subtype: "resource_missing",
				Titles:  []string{"Not Found", "Item Missing"},
				Messages: []string{
					"The item you're looking for doesn't exist or was removed.",
					"We couldn't find that resource. It may have been deleted.",
				},
				Severity: models.SeverityMedium,
				Actions: []models.RecoveryActionKind{
					models.ActionRefreshEnvironment, models.ActionReportIssue, models.ActionDismiss,
				},
				RetryableBias: 0.3,
			},
			{
				Subtype: "link_expired",
				Titles:  []string{"Link Expired", "Gone"},
				Messages: []string{
					"This link pointed to something that no longer exists.",
					"The shared item was moved or its link expired.",
				},
				Severity: models.SeverityLow,
				Actions: []models.RecoveryActionKind{
					models.ActionReportIssue, models.ActionDismiss,
				},
				RetryableBias: 0.1,
			},
		},
		models.CategoryGeneric: {
			{
				Subtype: "unexpected",
				Titles:  []string{"Something Went Wrong", "Unexpected Error"},
				Messages: []string{
					"An unexpected problem occurred. You can try again.",
					"We hit a snag. If this keeps happening, report the issue.",
				},
				Severity: models.SeverityMedium,
				Actions: []models.RecoveryActionKind{
					models.ActionRetry, models.ActionReportIssue, models.ActionDismiss,
				},
				RetryableBias: 0.5,
			},
			{
				Subtype: "operation_failed",
				Titles:  []string{"Couldn't Complete That", "Operation Failed"},
				Messages: []string{
					"The operation didn't finish. No changes were saved.",
					"Something interrupted the operation before it could complete.",
				},
				Severity: models.SeverityLow,
				Actions: []models.RecoveryActionKind{
					models.ActionRetry, models.ActionDismiss,
				},
				RetryableBias: 0.6,
			},
		},
		models.CategoryInfo: {
			{
				Subtype: "notice",
				Titles:  []string{"Heads Up", "Just So You Know"},
				Messages: []string{
					"Nothing is broken. This is an informational notice.",
					"A background task finished with notes you may want to review.",
				},
				Severity: models.SeverityInfo,
				Actions: []models.RecoveryActionKind{
					models.ActionDismiss,
				},
				RetryableBias: 0,
			},
			{
				Subtype: "maintenance_window",
				Titles:  []string{"Scheduled Maintenance", "Maintenance Ahead"},
				Messages: []string{
					"Maintenance is scheduled soon. Save your work beforehand.",
					"Some features will be briefly unavailable during an upcoming maintenance window.",
				},
				Severity: models.SeverityInfo,
				Actions: []models.RecoveryActionKind{
					models.ActionDismiss,
				},
				RetryableBias: 0,
			},
		},
		models.CategoryDependency: {
			{
				Subtype: "service_unavailable",
				Titles:  []string{"Service Unavailable", "Upstream Outage"},
				Messages: []string{
					"A service this feature depends on is not responding.",
					"A third-party dependency is degraded. Functionality may be limited.",
				},
				Severity: models.SeverityHigh,
				Actions: []models.RecoveryActionKind{
					models.ActionRetry, models.ActionWorkOffline, models.ActionReportIssue, models.ActionDismiss,
				},
				RetryableBias: 0.85,
			},
			{
				Subtype: "version_mismatch",
				Titles:  []string{"Update Required", "Incompatible Version"},
				Messages: []string{
					"A dependency changed its interface. Refresh to pick up the new version.",
					"The app and its backend disagree on versions.",
				},
				Severity: models.SeverityMedium,
				Actions: []models.RecoveryActionKind{
					models.ActionRefreshEnvironment, models.ActionRetry, models.ActionDismiss,
				},
				RetryableBias: 0.7,
			},
		},
		models.CategoryStateInconsistency: {
			{
				Subtype: "stale_state",
				Titles:  []string{"Out of Sync", "Stale Data"},
				Messages: []string{
					"Your local view no longer matches the source of truth.",
					"The data on screen changed elsewhere while you were editing.",
				},
				Severity: models.SeverityMedium,
				Actions: []models.RecoveryActionKind{
					models.ActionRefreshEnvironment, models.ActionUseDefaultState, models.ActionReportIssue, models.ActionDismiss,
				},
				RetryableBias: 0.5,
			},
			{
				Subtype: "conflicting_edit",
				Titles:  []string{"Edit Conflict", "Conflicting Changes"},
				Messages: []string{
					"Someone else changed this record while you were editing it.",
					"Two sets of changes collided and cannot both be applied.",
				},
				Severity: models.SeverityMedium,
				Actions: []models.RecoveryActionKind{
					models.ActionRefreshEnvironment, models.ActionReportIssue, models.ActionDismiss,
				},
				RetryableBias: 0.4,
			},
		},
	}
}

// DefaultScenarios returns the built-in named emission policies.
func DefaultScenarios() map[string]models.ErrorScenario {
	return map[string]models.ErrorScenario{
		models.ScenarioNetworkOutage: {
			Name:     models.ScenarioNetworkOutage,
			Interval: models.DefaultScenarioInterval,
			Weights: map[models.ErrorCategory]int{
				models.CategoryNetwork:    5,
				models.CategoryDependency: 2,
			},
		},
		models.ScenarioPermissionStorm: {
			Name:     models.ScenarioPermissionStorm,
			Interval: models.DefaultScenarioInterval,
			Weights: map[models.ErrorCategory]int{
				models.CategoryPermission:     5,
				models.CategoryAuthentication: 2,
			},
		},
		models.ScenarioValidationFlood: {
			Name:     models.ScenarioValidationFlood,
			Interval: models.DefaultScenarioInterval / 2,
			Weights: map[models.ErrorCategory]int{
				models.CategoryValidation: 1,
			},
		},
		models.ScenarioMixedChaos: {
			Name:     models.ScenarioMixedChaos,
			Interval: models.DefaultScenarioInterval,
			Weights: func() map[models.ErrorCategory]int {
				weights := make(map[models.ErrorCategory]int)
				for _, category := range models.AllCategories() {
					weights[category] = 1
				}
				return weights
			}(),
		},
	}
}

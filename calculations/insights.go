package calculations

import (
	"fmt"

	"github.com/glitchlab/faultdeck/models"
)

// RecoveryCounts carries the aggregate recovery outcome counters the
// coordinator keeps. Individual results are never retained.
type RecoveryCounts struct {
	Succeeded int64
	Failed    int64
}

// Total returns the number of completed recovery flows observed.
func (c RecoveryCounts) Total() int64 { return c.Succeeded + c.Failed }

// FailureRatio returns failed/total, 0 when nothing was attempted.
func (c RecoveryCounts) FailureRatio() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Failed) / float64(total)
}

// Insight ranking thresholds.
const (
	dominantShareThreshold  = 0.4
	highFailureThreshold    = 0.5
	highHourlyRateThreshold = 10.0
	retryableShareThreshold = 0.6
)

// DeriveInsights computes a small ranked list of observations from error
// history and recovery counters. An empty history yields an empty list.
func DeriveInsights(history []models.MockError, stats models.ErrorStatistics, counts RecoveryCounts) []models.RecoveryInsight {
	if stats.TotalErrors == 0 {
		return []models.RecoveryInsight{}
	}

	insights := make([]models.RecoveryInsight, 0, 4)

	if category, count, ok := DominantCategory(stats.ErrorsByCategory); ok {
		share := float64(count) / float64(stats.TotalErrors)
		if share >= dominantShareThreshold {
			insights = append(insights, models.RecoveryInsight{
				Message: fmt.Sprintf("%s errors dominate: %d of %d recent errors.",
					category.Label(), count, stats.TotalErrors),
				Recommendation: recommendationFor(category),
				Category:       category,
			})
		}
	}

	if ratio := counts.FailureRatio(); counts.Total() >= 3 && ratio >= highFailureThreshold {
		insights = append(insights, models.RecoveryInsight{
			Message: fmt.Sprintf("Recovery is failing often: %.0f%% of %d flows did not resolve.",
				ratio*100, counts.Total()),
			Recommendation: "Try a different recovery action first, or report the issue.",
		})
	}

	if stats.AverageErrorsPerHour >= highHourlyRateThreshold {
		insights = append(insights, models.RecoveryInsight{
			Message:        fmt.Sprintf("Errors are arriving fast: %.1f per hour.", stats.AverageErrorsPerHour),
			Recommendation: "Consider pausing the active scenario or resetting tracking.",
		})
	}

	if share := RetryableShare(history); share >= retryableShareThreshold {
		insights = append(insights, models.RecoveryInsight{
			Message:        fmt.Sprintf("%.0f%% of recent errors were retryable.", share*100),
			Recommendation: "Retrying is usually the fastest path to recovery here.",
		})
	}

	return insights
}

// recommendationFor maps a dominant category to a remedial suggestion.
func recommendationFor(category models.ErrorCategory) string {
	switch category {
	case models.CategoryNetwork:
		return "Check your connection, or switch to offline mode."
	case models.CategoryValidation:
		return "Review the highlighted inputs before submitting."
	case models.CategoryAuthentication:
		return "Sign in again to refresh your session."
	case models.CategoryPermission:
		return "Ask an administrator to review your access."
	case models.CategoryNotFound:
		return "Refresh the view; the items may have moved."
	case models.CategoryDependency:
		return "An upstream service is degraded; retry shortly."
	case models.CategoryStateInconsistency:
		return "Refresh to resynchronize your local state."
	default:
		return "If this keeps happening, report the issue."
	}
}

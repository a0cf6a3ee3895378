// Package calculations derives statistics and insights from error history.
// Everything here is a pure function over its inputs; nothing is cached or
// stored.
package calculations

import (
	"time"

	"github.com/glitchlab/faultdeck/models"
)

// ComputeStatistics recomputes ErrorStatistics from history. The hourly rate
// is 0 when history is empty or spans less than models.MinStatsElapsed, which
// also guards the division.
func ComputeStatistics(history []models.MockError, now time.Time) models.ErrorStatistics {
	stats := models.ErrorStatistics{
		TotalErrors:      len(history),
		ErrorsByCategory: make(map[models.ErrorCategory]int),
	}
	if len(history) == 0 {
		return stats
	}

	first := history[0].CreatedAt
	for _, err := range history {
		stats.ErrorsByCategory[err.Category]++
		if err.CreatedAt.Before(first) {
			first = err.CreatedAt
		}
	}

	elapsed := now.Sub(first)
	if elapsed >= models.MinStatsElapsed {
		stats.AverageErrorsPerHour = float64(stats.TotalErrors) / elapsed.Hours()
	}
	return stats
}

// DominantCategory returns the category with the highest count and that
// count. ok is false when the map is empty. Ties break on the stable
// category order.
func DominantCategory(byCategory map[models.ErrorCategory]int) (category models.ErrorCategory, count int, ok bool) {
	for _, c := range models.AllCategories() {
		if byCategory[c] > count {
			category, count, ok = c, byCategory[c], true
		}
	}
	return category, count, ok
}

// RetryableShare returns the fraction of history that was retryable, 0 for
// empty history.
func RetryableShare(history []models.MockError) float64 {
	if len(history) == 0 {
		return 0
	}
	retryable := 0
	for _, err := range history {
		if err.IsRetryable {
			retryable++
		}
	}
	return float64(retryable) / float64(len(history))
}

package calculations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glitchlab/faultdeck/models"
)

func TestDeriveInsights_EmptyHistory(t *testing.T) {
	insights := DeriveInsights(nil, ComputeStatistics(nil, time.Now()), RecoveryCounts{})
	assert.NotNil(t, insights)
	assert.Empty(t, insights)
}

func TestDeriveInsights_DominantCategory(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	history := []models.MockError{
		historyError(models.CategoryNetwork, true, base),
		historyError(models.CategoryNetwork, true, base.Add(time.Minute)),
		historyError(models.CategoryNetwork, true, base.Add(2*time.Minute)),
		historyError(models.CategoryValidation, false, base.Add(3*time.Minute)),
	}
	stats := ComputeStatistics(history, base.Add(2*time.Hour))

	insights := DeriveInsights(history, stats, RecoveryCounts{})
	require.NotEmpty(t, insights)

	assert.Equal(t, models.CategoryNetwork, insights[0].Category)
	assert.Contains(t, insights[0].Message, "Network")
	assert.NotEmpty(t, insights[0].Recommendation)
}

func TestDeriveInsights_RecoveryFailureRatio(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	history := []models.MockError{historyError(models.CategoryGeneric, false, base)}
	stats := ComputeStatistics(history, base.Add(time.Hour))

	insights := DeriveInsights(history, stats, RecoveryCounts{Succeeded: 1, Failed: 4})

	found := false
	for _, insight := range insights {
		if insight.Category == "" && insight.Recommendation != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a failure-ratio insight")
}

func TestDeriveInsights_FewFlowsNoFailureInsight(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	history := []models.MockError{historyError(models.CategoryGeneric, false, base)}
	stats := ComputeStatistics(history, base.Add(time.Hour))

	// Two flows is below the significance floor even at 100% failure.
	withFew := DeriveInsights(history, stats, RecoveryCounts{Failed: 2})
	withMany := DeriveInsights(history, stats, RecoveryCounts{Failed: 5})
	assert.Less(t, len(withFew), len(withMany))
}

func TestDeriveInsights_RetryableShare(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	history := []models.MockError{
		historyError(models.CategoryNetwork, true, base),
		historyError(models.CategoryDependency, true, base.Add(time.Minute)),
	}
	stats := ComputeStatistics(history, base.Add(time.Hour))

	insights := DeriveInsights(history, stats, RecoveryCounts{})

	found := false
	for _, insight := range insights {
		if insight.Recommendation == "Retrying is usually the fastest path to recovery here." {
			found = true
		}
	}
	assert.True(t, found, "expected a retryable-share insight")
}

func TestRecoveryCounts(t *testing.T) {
	counts := RecoveryCounts{Succeeded: 3, Failed: 1}
	assert.EqualValues(t, 4, counts.Total())
	assert.InDelta(t, 0.25, counts.FailureRatio(), 1e-9)
	assert.Zero(t, RecoveryCounts{}.FailureRatio())
}

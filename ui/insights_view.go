package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/glitchlab/faultdeck/calculations"
	"github.com/glitchlab/faultdeck/models"
)

// InsightsView shows aggregated statistics and derived recovery insights
type InsightsView struct {
	stats    models.ErrorStatistics
	counts   calculations.RecoveryCounts
	insights []models.RecoveryInsight

	width  int
	height int
	styles Styles
}

// NewInsightsView creates a new insights view
func NewInsightsView(styles Styles) *InsightsView {
	return &InsightsView{
		styles: styles,
		width:  models.DefaultTerminalWidth,
		height: models.DefaultTerminalHeight,
	}
}

// UpdateData installs the latest statistics and insights
func (v *InsightsView) UpdateData(stats models.ErrorStatistics, counts calculations.RecoveryCounts, insights []models.RecoveryInsight) {
	v.stats = stats
	v.counts = counts
	v.insights = insights
}

// Resize updates the view dimensions
func (v *InsightsView) Resize(width, height int) {
	v.width = width
	v.height = height
}

// View renders the insights page
func (v *InsightsView) View() string {
	sections := []string{
		v.renderStatistics(),
		v.renderRecovery(),
		v.renderInsights(),
	}
	return strings.Join(sections, "\n\n")
}

// renderStatistics renders the error statistics panel
func (v *InsightsView) renderStatistics() string {
	lines := []string{
		v.styles.Subtitle.Render("Statistics"),
		fmt.Sprintf("Total errors:  %d", v.stats.TotalErrors),
		fmt.Sprintf("Hourly rate:   %.1f", v.stats.AverageErrorsPerHour),
	}

	if len(v.stats.ErrorsByCategory) > 0 {
		lines = append(lines, "", v.styles.Bold.Render("By category"))
		lines = append(lines, v.renderCategoryBreakdown()...)
	}

	return strings.Join(lines, "\n")
}

// renderCategoryBreakdown renders per-category counts with a small bar
func (v *InsightsView) renderCategoryBreakdown() []string {
	categories := make([]models.ErrorCategory, 0, len(v.stats.ErrorsByCategory))
	for category := range v.stats.ErrorsByCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		ci, cj := v.stats.ErrorsByCategory[categories[i]], v.stats.ErrorsByCategory[categories[j]]
		if ci != cj {
			return ci > cj
		}
		return categories[i] < categories[j]
	})

	lines := make([]string, 0, len(categories))
	for _, category := range categories {
		count := v.stats.ErrorsByCategory[category]
		bar := strings.Repeat("█", v.barWidth(count))
		lines = append(lines, fmt.Sprintf("  %s %-20s %3d %s",
			category.Icon(), category.Label(), count, v.styles.Info.Render(bar)))
	}
	return lines
}

// barWidth scales a count into a bar segment bounded by the view width
func (v *InsightsView) barWidth(count int) int {
	if v.stats.TotalErrors == 0 {
		return 0
	}
	max := v.width - 40
	if max < 10 {
		max = 10
	}
	w := count * max / v.stats.TotalErrors
	if w < 1 {
		w = 1
	}
	return w
}

// renderRecovery renders the recovery outcome counters
func (v *InsightsView) renderRecovery() string {
	lines := []string{
		v.styles.Subtitle.Render("Recovery flows"),
		fmt.Sprintf("Succeeded:  %s", v.styles.Success.Render(fmt.Sprintf("%d", v.counts.Succeeded))),
		fmt.Sprintf("Failed:     %s", v.styles.Error.Render(fmt.Sprintf("%d", v.counts.Failed))),
	}

	if total := v.counts.Total(); total > 0 {
		lines = append(lines, fmt.Sprintf("Failure:    %.0f%%", v.counts.FailureRatio()*100))
	}

	return strings.Join(lines, "\n")
}

// renderInsights renders the derived insight list
func (v *InsightsView) renderInsights() string {
	lines := []string{v.styles.Subtitle.Render("Insights")}

	if len(v.insights) == 0 {
		lines = append(lines, v.styles.Muted.Render("Not enough data yet — generate some errors first"))
		return strings.Join(lines, "\n")
	}

	for _, insight := range v.insights {
		lines = append(lines, fmt.Sprintf("• %s", insight.Message))
		if insight.Recommendation != "" {
			lines = append(lines, v.styles.Muted.Render("  "+insight.Recommendation))
		}
	}

	return strings.Join(lines, "\n")
}

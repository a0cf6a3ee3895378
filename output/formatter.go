package output

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/glitchlab/faultdeck/calculations"
	"github.com/glitchlab/faultdeck/models"
)

// ConsoleFormatter renders engine state as plain text for headless runs
type ConsoleFormatter struct {
	timeFormat string
	barWidth   int
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(timeFormat string) *ConsoleFormatter {
	if timeFormat == "" {
		timeFormat = models.DisplayTimeFormat
	}

	return &ConsoleFormatter{
		timeFormat: timeFormat,
		barWidth:   30,
	}
}

// FormatSummary formats a full engine summary for console output
func (f *ConsoleFormatter) FormatSummary(stats models.ErrorStatistics, counts calculations.RecoveryCounts, insights []models.RecoveryInsight) string {
	var lines []string
	lines = append(lines, f.renderHeader()...)
	lines = append(lines, "")
	lines = append(lines, f.renderStatistics(stats)...)

	if len(stats.ErrorsByCategory) > 0 {
		lines = append(lines, "")
		lines = append(lines, f.renderCategoryBreakdown(stats)...)
	}

	if counts.Total() > 0 {
		lines = append(lines, "")
		lines = append(lines, f.renderRecovery(counts)...)
	}

	if len(insights) > 0 {
		lines = append(lines, "")
		lines = append(lines, f.renderInsights(insights)...)
	}

	lines = append(lines, "")
	lines = append(lines, f.renderFooter())

	return strings.Join(lines, "\n")
}

// FormatError formats a single displayed error as one console line
func (f *ConsoleFormatter) FormatError(e models.MockError) string {
	return fmt.Sprintf("%s  %-20s %-8s %s", e.Category.Icon(), e.Category.Label(), e.Severity, e.Title)
}

func (f *ConsoleFormatter) renderHeader() []string {
	title := "FAULTDECK RUN SUMMARY"
	separator := strings.Repeat("=", 50)

	return []string{title, separator}
}

func (f *ConsoleFormatter) renderStatistics(stats models.ErrorStatistics) []string {
	return []string{
		fmt.Sprintf("Errors displayed:   %d", stats.TotalErrors),
		fmt.Sprintf("Error rate:         %.1f/hr", stats.AverageErrorsPerHour),
	}
}

// renderCategoryBreakdown renders one bar per category, largest first
func (f *ConsoleFormatter) renderCategoryBreakdown(stats models.ErrorStatistics) []string {
	type row struct {
		category models.ErrorCategory
		count    int
	}

	rows := make([]row, 0, len(stats.ErrorsByCategory))
	var max int
	for category, count := range stats.ErrorsByCategory {
		rows = append(rows, row{category, count})
		if count > max {
			max = count
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].category < rows[j].category
	})

	lines := []string{"By category:"}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("  %-14s %s %d",
			r.category.Label(), f.renderBar(r.count, max), r.count))
	}
	return lines
}

func (f *ConsoleFormatter) renderRecovery(counts calculations.RecoveryCounts) []string {
	return []string{
		"Recovery:",
		fmt.Sprintf("  Succeeded:        %d", counts.Succeeded),
		fmt.Sprintf("  Failed:           %d", counts.Failed),
		fmt.Sprintf("  Failure ratio:    %.0f%%", counts.FailureRatio()*100),
	}
}

func (f *ConsoleFormatter) renderInsights(insights []models.RecoveryInsight) []string {
	lines := []string{"Insights:"}
	for _, insight := range insights {
		lines = append(lines, fmt.Sprintf("  • %s", insight.Message))
		if insight.Recommendation != "" {
			lines = append(lines, fmt.Sprintf("    %s", insight.Recommendation))
		}
	}
	return lines
}

func (f *ConsoleFormatter) renderFooter() string {
	return fmt.Sprintf("Finished at %s", time.Now().Format(f.timeFormat))
}

func (f *ConsoleFormatter) renderBar(count, max int) string {
	if max <= 0 {
		return strings.Repeat("░", f.barWidth)
	}
	filled := count * f.barWidth / max
	if filled > f.barWidth {
		filled = f.barWidth
	}
	if filled < 1 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", f.barWidth-filled)
}

package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/glitchlab/faultdeck/config"
	"github.com/glitchlab/faultdeck/models"
	"github.com/glitchlab/faultdeck/orchestrator"
)

// DashboardView shows the current error, its recovery actions and progress
type DashboardView struct {
	snapshot   orchestrator.StateSnapshot
	stats      models.ErrorStatistics
	lastResult *models.RecoveryResult
	recovering bool

	width  int
	height int
	styles Styles
	config *config.Config
}

// NewDashboardView creates a new dashboard view
func NewDashboardView(styles Styles, cfg *config.Config) *DashboardView {
	return &DashboardView{
		styles: styles,
		config: cfg,
		width:  models.DefaultTerminalWidth,
		height: models.DefaultTerminalHeight,
	}
}

// UpdateState installs the latest coordinator state
func (d *DashboardView) UpdateState(snapshot orchestrator.StateSnapshot, stats models.ErrorStatistics, lastResult *models.RecoveryResult, recovering bool) {
	d.snapshot = snapshot
	d.stats = stats
	d.lastResult = lastResult
	d.recovering = recovering
}

// Resize updates the view dimensions
func (d *DashboardView) Resize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard
func (d *DashboardView) View(bar progress.Model) string {
	sections := []string{
		d.renderErrorPanel(),
	}

	if d.snapshot.RecoveryProgress != nil {
		sections = append(sections, d.renderProgress(bar))
	}
	if d.lastResult != nil {
		sections = append(sections, d.renderResult())
	}

	sections = append(sections, d.renderStats())

	return strings.Join(sections, "\n")
}

// renderErrorPanel renders the current error card
func (d *DashboardView) renderErrorPanel() string {
	panel := d.styles.Panel.Width(d.width - 2)

	current := d.snapshot.CurrentError
	if current == nil {
		empty := d.styles.Muted.Render("No error displayed — press g to generate one")
		return panel.Render(empty)
	}

	badge := d.styles.SeverityStyle(current.Severity).Render(strings.ToUpper(current.Severity.String()))
	title := d.styles.Bold.Render(fmt.Sprintf("%s %s", current.Category.Icon(), current.Title))
	category := d.styles.Muted.Render(fmt.Sprintf("%s / %s", current.Category.Label(), current.Subtype))

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", badge),
		category,
		"",
		d.styles.Normal.Render(current.Message),
	}

	if len(current.Context) > 0 {
		lines = append(lines, "", d.renderContext(current))
	}

	lines = append(lines, "", d.renderActions(current))

	if current.Severity.AllowsTapDismiss() {
		lines = append(lines, d.styles.Muted.Render("press d to dismiss"))
	}

	return panel.Render(strings.Join(lines, "\n"))
}

// renderContext renders the error's context key/value pairs
func (d *DashboardView) renderContext(current *models.MockError) string {
	keys := make([]string, 0, len(current.Context))
	for key := range current.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, current.Context[key]))
	}
	return d.styles.Muted.Render(strings.Join(parts, "  "))
}

// renderActions renders the primary action buttons and overflow note
func (d *DashboardView) renderActions(current *models.MockError) string {
	primary := current.PrimaryActions()
	overflow := current.OverflowActions()

	buttons := make([]string, 0, len(primary)+1)
	for i, action := range primary {
		label := fmt.Sprintf("%d %s %s", i+1, action.Icon(), action.Label())
		buttons = append(buttons, d.styles.ActionStyle(action).Render(label))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)

	if len(overflow) > 0 {
		labels := make([]string, len(overflow))
		for i, action := range overflow {
			labels[i] = action.Label()
		}
		more := d.styles.Muted.Render(fmt.Sprintf("  +%d more: %s", len(overflow), strings.Join(labels, ", ")))
		row = lipgloss.JoinHorizontal(lipgloss.Center, row, more)
	}

	return row
}

// renderProgress renders the active recovery flow
func (d *DashboardView) renderProgress(bar progress.Model) string {
	rp := d.snapshot.RecoveryProgress

	label := fmt.Sprintf("Recovery: step %d of %d", rp.CurrentStep, rp.TotalSteps)
	if d.recovering {
		label += " (running...)"
	}
	if rp.IsComplete {
		if rp.HasSucceeded {
			label = d.styles.Success.Render("Recovery complete ✓")
		} else {
			label = d.styles.Error.Render("Recovery failed ✗")
		}
	}

	return fmt.Sprintf("%s\n%s", d.styles.Subtitle.Render(label), bar.ViewAs(rp.ProgressPercentage()))
}

// renderResult renders the outcome of the last executed action
func (d *DashboardView) renderResult() string {
	result := d.lastResult

	var line string
	if result.IsSuccessful {
		line = d.styles.Success.Render("✓ " + result.Message)
	} else {
		line = d.styles.Warning.Render("✗ " + result.Message)
		if result.NextRecommendedAction != "" {
			line += d.styles.Muted.Render("  try: " + result.NextRecommendedAction.Label())
		}
	}
	return line
}

// renderStats renders the footer statistics strip
func (d *DashboardView) renderStats() string {
	parts := []string{
		fmt.Sprintf("errors: %d", d.stats.TotalErrors),
		fmt.Sprintf("rate: %.1f/hr", d.stats.AverageErrorsPerHour),
		fmt.Sprintf("history: %d", d.snapshot.HistoryLength),
	}
	return d.styles.Muted.Render(strings.Join(parts, " · "))
}

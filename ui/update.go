package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glitchlab/faultdeck/config"
	"github.com/glitchlab/faultdeck/models"
	"github.com/glitchlab/faultdeck/orchestrator"
)

// Message types for the application

// TickMsg is sent periodically to trigger updates
type TickMsg time.Time

// StateUpdateMsg carries a coordinator state snapshot to the UI
type StateUpdateMsg struct {
	Snapshot orchestrator.StateSnapshot
}

// RecoveryResultMsg carries the outcome of an executed recovery action
type RecoveryResultMsg struct {
	Result  models.RecoveryResult
	Handled bool
}

// ExportedMsg reports a completed history export
type ExportedMsg struct {
	Path        string
	RecordCount int
}

// ConfigUpdatedMsg carries a live-reloaded configuration
type ConfigUpdatedMsg struct {
	Config *config.Config
}

// ErrorMsg carries error information
type ErrorMsg struct {
	Error error
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case TickMsg:
		var spinnerCmd tea.Cmd
		m.spinner, spinnerCmd = m.spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)

		m.refreshFromCoordinator()

		cmds = append(cmds, tickCmd(m.config.UI.RefreshRate))
		return m, tea.Batch(cmds...)

	case StateUpdateMsg:
		m.applySnapshot(msg.Snapshot)
		return m, nil

	case RecoveryResultMsg:
		m.recovering = false
		if msg.Handled {
			m.lastResult = &msg.Result
			if msg.Result.IsSuccessful {
				m.setStatus(msg.Result.Message, true)
			} else {
				m.setStatus(msg.Result.Message, false)
			}
		}
		m.refreshFromCoordinator()
		return m, nil

	case ConfigUpdatedMsg:
		m.applyConfig(msg.Config)
		m.setStatus("Configuration reloaded", true)
		return m, nil

	case ExportedMsg:
		m.setStatus(fmt.Sprintf("Exported %d errors to %s", msg.RecordCount, msg.Path), true)
		return m, nil

	case ErrorMsg:
		m.setStatus(msg.Error.Error(), false)
		return m, nil

	default:
		var spinnerCmd tea.Cmd
		m.spinner, spinnerCmd = m.spinner.Update(msg)
		return m, spinnerCmd
	}
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.SwitchView(ViewHelp)
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.SwitchView(ViewDashboard)
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.NextView()
		return m, nil

	case key.Matches(msg, m.keys.Generate):
		generated := m.coordinator.GenerateAndDisplayRandomError()
		if m.coordinator.IsEnabled() {
			m.setStatus(fmt.Sprintf("Generated %s error: %s", generated.Category, generated.Title), true)
		} else {
			m.setStatus("Error handling is disabled", false)
		}
		m.lastResult = nil
		m.refreshFromCoordinator()
		return m, nil

	case key.Matches(msg, m.keys.CycleCategory):
		categories := models.AllCategories()
		category := categories[m.categoryIdx%len(categories)]
		m.categoryIdx++
		m.coordinator.DisplayErrorForCategory(category)
		m.setStatus(fmt.Sprintf("Displayed %s error", category), true)
		m.lastResult = nil
		m.refreshFromCoordinator()
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.coordinator.DismissCurrentError()
		m.lastResult = nil
		m.setStatus("Error dismissed", true)
		m.refreshFromCoordinator()
		return m, nil

	case key.Matches(msg, m.keys.Recover):
		if progress, ok := m.coordinator.BeginRecovery(); ok {
			m.setStatus(fmt.Sprintf("Recovery started: %d steps", progress.TotalSteps), true)
		} else {
			m.setStatus("No error to recover from", false)
		}
		m.refreshFromCoordinator()
		return m, nil

	case key.Matches(msg, m.keys.Action1):
		return m.executeAction(0)
	case key.Matches(msg, m.keys.Action2):
		return m.executeAction(1)
	case key.Matches(msg, m.keys.Action3):
		return m.executeAction(2)

	case key.Matches(msg, m.keys.StartScenario):
		name := scenarioOrder[m.scenarioIdx%len(scenarioOrder)]
		m.scenarioIdx++
		if err := m.coordinator.StartScenario(name); err != nil {
			m.setStatus(err.Error(), false)
		} else {
			m.setStatus(fmt.Sprintf("Scenario started: %s", name), true)
		}
		m.refreshFromCoordinator()
		return m, nil

	case key.Matches(msg, m.keys.StopScenario):
		m.coordinator.StopScenario()
		m.setStatus("Scenario stopped", true)
		m.refreshFromCoordinator()
		return m, nil

	case key.Matches(msg, m.keys.ToggleEnabled):
		enabled := !m.coordinator.IsEnabled()
		m.coordinator.SetEnabled(enabled)
		if enabled {
			m.setStatus("Error handling enabled", true)
		} else {
			m.setStatus("Error handling disabled", false)
		}
		m.refreshFromCoordinator()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.coordinator.ResetTracking()
		m.lastResult = nil
		m.setStatus("Tracking reset", true)
		m.refreshFromCoordinator()
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m, exportCmd(m.coordinator, m.config.Export.OutputDir)
	}

	// View-specific key bindings
	if m.view == ViewHistory && m.history != nil {
		m.history.HandleKey(msg, m.keys)
	}

	return m, nil
}

// executeAction executes the Nth primary action of the current error
func (m Model) executeAction(index int) (tea.Model, tea.Cmd) {
	current := m.snapshot.CurrentError
	if current == nil {
		m.setStatus("No error to act on", false)
		return m, nil
	}
	if m.recovering {
		m.setStatus("A recovery action is already running", false)
		return m, nil
	}

	primary := current.PrimaryActions()
	if index >= len(primary) {
		return m, nil
	}

	action := primary[index]
	m.recovering = true
	m.setStatus(fmt.Sprintf("Executing %s...", action.Label()), true)
	m.refreshFromCoordinator()

	return m, executeActionCmd(m.coordinator, action)
}

// View renders the current view
func (m Model) View() string {
	if !m.ready {
		return m.spinner.View() + " Starting faultdeck..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	switch m.view {
	case ViewDashboard:
		body = m.dashboard.View(m.progress)
	case ViewHistory:
		body = m.history.View()
	case ViewInsights:
		body = m.insight.View()
	case ViewHelp:
		body = m.help.View()
	default:
		body = m.styles.Muted.Render("View not found")
	}

	return header + "\n" + body + "\n" + footer
}

// renderHeader renders the title bar with engine state
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("faultdeck")
	view := m.styles.Subtitle.Render(m.GetCurrentView())

	state := m.styles.Success.Render("● handling on")
	if !m.snapshot.Enabled {
		state = m.styles.Error.Render("○ handling off")
	}

	scenario := ""
	if m.snapshot.Scenario != nil {
		scenario = m.styles.Highlight.Render(" ⟳ " + m.snapshot.Scenario.Name)
	}

	return fmt.Sprintf("%s  %s  %s%s", title, view, state, scenario)
}

// renderFooter renders the status line and key hints
func (m Model) renderFooter() string {
	status := ""
	if m.status != "" {
		if m.statusOK {
			status = m.styles.Success.Render(m.status)
		} else {
			status = m.styles.Warning.Render(m.status)
		}
	}

	hints := m.styles.Muted.Render("g generate · c category · enter recover · 1-3 actions · d dismiss · s/S scenario · tab views · q quit")
	if status == "" {
		return hints
	}
	return status + "\n" + hints
}

package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glitchlab/faultdeck/calculations"
	"github.com/glitchlab/faultdeck/config"
	"github.com/glitchlab/faultdeck/models"
	"github.com/glitchlab/faultdeck/orchestrator"
)

// ViewType represents different views in the application
type ViewType int

const (
	ViewDashboard ViewType = iota
	ViewHistory
	ViewInsights
	ViewHelp
	ViewCount // Keep track of total views
)

// Model represents the application state
type Model struct {
	// Engine
	coordinator *orchestrator.Coordinator

	// Data
	snapshot   orchestrator.StateSnapshot
	stats      models.ErrorStatistics
	counts     calculations.RecoveryCounts
	insights   []models.RecoveryInsight
	lastResult *models.RecoveryResult
	status     string
	statusOK   bool

	// UI State
	view        ViewType
	width       int
	height      int
	ready       bool
	recovering  bool
	lastUpdate  time.Time
	categoryIdx int
	scenarioIdx int

	// Components
	dashboard *DashboardView
	history   *HistoryView
	insight   *InsightsView
	help      *HelpView

	// Utilities
	keys     KeyMap
	styles   Styles
	spinner  spinner.Model
	progress progress.Model
	config   *config.Config
}

// scenarioOrder is the cycle the start-scenario key walks through.
var scenarioOrder = []string{
	models.ScenarioNetworkOutage,
	models.ScenarioPermissionStorm,
	models.ScenarioValidationFlood,
	models.ScenarioMixedChaos,
}

// NewModel creates a new application model
func NewModel(coordinator *orchestrator.Coordinator, cfg *config.Config) Model {
	styles := NewStyles(GetThemeByName(cfg.UI.Theme))

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Normal

	p := progress.New(progress.WithDefaultGradient())

	m := Model{
		coordinator: coordinator,
		config:      cfg,
		view:        ViewDashboard,
		ready:       true,
		keys:        DefaultKeyMap(),
		styles:      styles,
		spinner:     s,
		progress:    p,
		lastUpdate:  time.Now(),
		width:       models.DefaultTerminalWidth,
		height:      models.DefaultTerminalHeight,
	}

	m.dashboard = NewDashboardView(styles, cfg)
	m.history = NewHistoryView(styles, cfg)
	m.insight = NewInsightsView(styles)
	m.help = NewHelpView(styles)

	m.refreshFromCoordinator()

	return m
}

// Init returns initial commands for the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tickCmd(m.config.UI.RefreshRate),
		tea.WindowSize(),
	)
}

// refreshFromCoordinator pulls the observable state into the model
func (m *Model) refreshFromCoordinator() {
	if m.coordinator == nil {
		return
	}

	snapshot := orchestrator.StateSnapshot{
		CurrentError: m.coordinator.CurrentError(),
		Enabled:      m.coordinator.IsEnabled(),
	}
	// Guard against a flow left over from a replaced error.
	if progress, ok := m.coordinator.RecoveryManager().Progress(); ok &&
		snapshot.CurrentError != nil && progress.ErrorID == snapshot.CurrentError.ID {
		snapshot.RecoveryProgress = &progress
	}
	snapshot.Scenario = m.coordinator.CurrentScenario()
	snapshot.HistoryLength = len(m.coordinator.History())

	m.applySnapshot(snapshot)
}

// applySnapshot installs a state snapshot and fans it out to the views
func (m *Model) applySnapshot(snapshot orchestrator.StateSnapshot) {
	m.snapshot = snapshot
	m.stats = m.coordinator.Statistics()
	m.counts = m.coordinator.RecoveryCounts()
	m.insights = m.coordinator.Insights()
	m.lastUpdate = time.Now()

	if m.dashboard != nil {
		m.dashboard.UpdateState(snapshot, m.stats, m.lastResult, m.recovering)
	}
	if m.history != nil {
		m.history.UpdateHistory(m.coordinator.History())
	}
	if m.insight != nil {
		m.insight.UpdateData(m.stats, m.counts, m.insights)
	}
}

// applyConfig installs a live-reloaded configuration. The themed pieces are
// rebuilt so the next render picks up the new theme; the refresh rate takes
// effect on the next tick.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.config = cfg
	m.styles = NewStyles(GetThemeByName(cfg.UI.Theme))
	m.spinner.Style = m.styles.Normal

	m.dashboard = NewDashboardView(m.styles, cfg)
	m.history = NewHistoryView(m.styles, cfg)
	m.insight = NewInsightsView(m.styles)
	m.help = NewHelpView(m.styles)

	m.Resize(m.width, m.height)
	m.refreshFromCoordinator()
}

// setStatus records a transient status line shown in the footer
func (m *Model) setStatus(message string, ok bool) {
	m.status = message
	m.statusOK = ok
}

// SwitchView changes the current view
func (m *Model) SwitchView(view ViewType) {
	if view >= 0 && view < ViewCount {
		m.view = view
	}
}

// NextView switches to the next view
func (m *Model) NextView() {
	m.view = (m.view + 1) % ViewCount
}

// GetCurrentView returns the current view name
func (m Model) GetCurrentView() string {
	switch m.view {
	case ViewDashboard:
		return "Dashboard"
	case ViewHistory:
		return "History"
	case ViewInsights:
		return "Insights"
	case ViewHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// IsReady returns whether the model is ready to display
func (m Model) IsReady() bool {
	return m.ready
}

// Resize updates the model dimensions
func (m *Model) Resize(width, height int) {
	if width < models.MinTerminalWidth {
		width = models.MinTerminalWidth
	}
	if height < models.MinTerminalHeight {
		height = models.MinTerminalHeight
	}
	m.width = width
	m.height = height

	m.progress.Width = width - 20

	if m.dashboard != nil {
		m.dashboard.Resize(width, height)
	}
	if m.history != nil {
		m.history.Resize(width, height)
	}
	if m.insight != nil {
		m.insight.Resize(width, height)
	}
	if m.help != nil {
		m.help.Resize(width, height)
	}
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glitchlab/faultdeck/config"
	"github.com/glitchlab/faultdeck/models"
)

// HistoryView lists every error displayed this session, newest last
type HistoryView struct {
	history []models.MockError
	cursor  int

	width  int
	height int
	styles Styles
	config *config.Config
}

// NewHistoryView creates a new history view
func NewHistoryView(styles Styles, cfg *config.Config) *HistoryView {
	return &HistoryView{
		styles: styles,
		config: cfg,
		width:  models.DefaultTerminalWidth,
		height: models.DefaultTerminalHeight,
	}
}

// UpdateHistory installs the latest history snapshot
func (h *HistoryView) UpdateHistory(history []models.MockError) {
	h.history = history
	if h.cursor >= len(history) {
		h.cursor = len(history) - 1
	}
	if h.cursor < 0 {
		h.cursor = 0
	}
}

// HandleKey processes history navigation keys
func (h *HistoryView) HandleKey(msg tea.KeyMsg, keys KeyMap) {
	switch {
	case key.Matches(msg, keys.Up):
		if h.cursor > 0 {
			h.cursor--
		}
	case key.Matches(msg, keys.Down):
		if h.cursor < len(h.history)-1 {
			h.cursor++
		}
	}
}

// Resize updates the view dimensions
func (h *HistoryView) Resize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the history list
func (h *HistoryView) View() string {
	if len(h.history) == 0 {
		return h.styles.Muted.Render("No errors recorded yet")
	}

	// Newest first
	visible := h.height - 6
	if visible < 3 {
		visible = 3
	}

	var rows []string
	header := h.styles.Subtitle.Render(fmt.Sprintf("Error history (%d)", len(h.history)))
	rows = append(rows, header, "")

	shown := 0
	for i := len(h.history) - 1; i >= 0 && shown < visible; i-- {
		rows = append(rows, h.renderRow(i, h.history[i]))
		shown++
	}

	if len(h.history) > visible {
		rows = append(rows, h.styles.Muted.Render(fmt.Sprintf("… %d older", len(h.history)-visible)))
	}

	return strings.Join(rows, "\n")
}

// renderRow renders a single history entry
func (h *HistoryView) renderRow(index int, err models.MockError) string {
	timestamp := err.CreatedAt.Format(h.timeFormat())
	severity := h.styles.SeverityStyle(err.Severity).Render(err.Severity.String())

	line := fmt.Sprintf("%s  %s %-18s %s  %s",
		h.styles.Muted.Render(timestamp),
		err.Category.Icon(),
		err.Category.Label(),
		severity,
		err.Title,
	)

	if index == h.cursor {
		return h.styles.Selected.Render("> " + line)
	}
	return "  " + line
}

func (h *HistoryView) timeFormat() string {
	if h.config != nil && h.config.UI.TimeFormat != "" {
		return h.config.UI.TimeFormat
	}
	return models.DisplayTimeFormat
}

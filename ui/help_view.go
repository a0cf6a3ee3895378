package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/glitchlab/faultdeck/models"
)

// HelpView lists the keyboard shortcuts
type HelpView struct {
	keys   KeyMap
	width  int
	height int
	styles Styles
}

// NewHelpView creates a new help view
func NewHelpView(styles Styles) *HelpView {
	return &HelpView{
		keys:   DefaultKeyMap(),
		styles: styles,
		width:  models.DefaultTerminalWidth,
		height: models.DefaultTerminalHeight,
	}
}

// Resize updates the view dimensions
func (h *HelpView) Resize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the help view
func (h *HelpView) View() string {
	sections := []string{
		h.styles.Subtitle.Render("Error simulation"),
		h.renderBindings(h.keys.Generate, h.keys.CycleCategory, h.keys.StartScenario, h.keys.StopScenario),
		"",
		h.styles.Subtitle.Render("Error handling"),
		h.renderBindings(h.keys.Recover, h.keys.Action1, h.keys.Action2, h.keys.Action3, h.keys.Dismiss),
		"",
		h.styles.Subtitle.Render("Engine"),
		h.renderBindings(h.keys.ToggleEnabled, h.keys.Reset, h.keys.Export),
		"",
		h.styles.Subtitle.Render("Navigation"),
		h.renderBindings(h.keys.Tab, h.keys.Up, h.keys.Down, h.keys.Back, h.keys.Help, h.keys.Quit),
	}

	return strings.Join(sections, "\n")
}

// renderBindings renders one line per key binding
func (h *HelpView) renderBindings(bindings ...key.Binding) string {
	lines := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		lines = append(lines, fmt.Sprintf("  %s  %s",
			h.styles.Highlight.Render(fmt.Sprintf("%-8s", help.Key)),
			h.styles.Normal.Render(help.Desc)))
	}
	return strings.Join(lines, "\n")
}

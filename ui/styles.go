package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glitchlab/faultdeck/models"
)

// Theme defines the color scheme for the application
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
}

// Styles contains all styled components
type Styles struct {
	// Basic text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Layout styles
	Border lipgloss.Style
	Panel  lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// Severity badges
	SeverityInfo     lipgloss.Style
	SeverityLow      lipgloss.Style
	SeverityMedium   lipgloss.Style
	SeverityHigh     lipgloss.Style
	SeverityCritical lipgloss.Style

	// Action buttons
	ActionPrimary     lipgloss.Style
	ActionSecondary   lipgloss.Style
	ActionTertiary    lipgloss.Style
	ActionDestructive lipgloss.Style

	// Special styles
	Highlight lipgloss.Style
	Selected  lipgloss.Style
	Disabled  lipgloss.Style
}

// DefaultTheme returns the default color theme
func DefaultTheme() Theme {
	return DarkTheme()
}

// DarkTheme returns a dark color theme
func DarkTheme() Theme {
	return Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#6366F1"), // Indigo
		Success:    lipgloss.Color("#10B981"), // Green
		Warning:    lipgloss.Color("#F59E0B"), // Amber
		Error:      lipgloss.Color("#EF4444"), // Red
		Info:       lipgloss.Color("#3B82F6"), // Blue
		Foreground: lipgloss.Color("#F3F4F6"), // Gray-100
		Muted:      lipgloss.Color("#9CA3AF"), // Gray-400
		Border:     lipgloss.Color("#374151"), // Gray-700
		Highlight:  lipgloss.Color("#FCD34D"), // Yellow-300
	}
}

// LightTheme returns a light color theme
func LightTheme() Theme {
	return Theme{
		Primary:    lipgloss.Color("#7C3AED"),
		Secondary:  lipgloss.Color("#6366F1"),
		Success:    lipgloss.Color("#059669"),
		Warning:    lipgloss.Color("#D97706"),
		Error:      lipgloss.Color("#DC2626"),
		Info:       lipgloss.Color("#2563EB"),
		Foreground: lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#6B7280"),
		Border:     lipgloss.Color("#D1D5DB"),
		Highlight:  lipgloss.Color("#FDE047"),
	}
}

// HighContrastTheme returns a high contrast theme for accessibility
func HighContrastTheme() Theme {
	return Theme{
		Primary:    lipgloss.Color("#FFFFFF"),
		Secondary:  lipgloss.Color("#CCCCCC"),
		Success:    lipgloss.Color("#00FF00"),
		Warning:    lipgloss.Color("#FFFF00"),
		Error:      lipgloss.Color("#FF0000"),
		Info:       lipgloss.Color("#00FFFF"),
		Foreground: lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#808080"),
		Border:     lipgloss.Color("#FFFFFF"),
		Highlight:  lipgloss.Color("#FFFF00"),
	}
}

// GetThemeByName returns a theme by name
func GetThemeByName(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	case "high-contrast":
		return HighContrastTheme()
	default:
		return DefaultTheme()
	}
}

// NewStyles creates styles based on a theme
func NewStyles(theme Theme) Styles {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	button := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(theme.Info).
			Bold(true),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border),

		SeverityInfo:     badge.Foreground(theme.Info),
		SeverityLow:      badge.Foreground(theme.Success),
		SeverityMedium:   badge.Foreground(theme.Warning),
		SeverityHigh:     badge.Foreground(theme.Error),
		SeverityCritical: badge.Foreground(lipgloss.Color("#FFFFFF")).Background(theme.Error),

		ActionPrimary:     button.BorderForeground(theme.Primary).Foreground(theme.Primary).Bold(true),
		ActionSecondary:   button.BorderForeground(theme.Secondary).Foreground(theme.Secondary),
		ActionTertiary:    button.BorderForeground(theme.Border).Foreground(theme.Muted),
		ActionDestructive: button.BorderForeground(theme.Error).Foreground(theme.Error),

		Highlight: lipgloss.NewStyle().
			Foreground(theme.Highlight).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Border).
			Bold(true),

		Disabled: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Strikethrough(true),
	}
}

// SeverityStyle returns the badge style for a severity
func (s Styles) SeverityStyle(severity models.ErrorSeverity) lipgloss.Style {
	switch severity {
	case models.SeverityInfo:
		return s.SeverityInfo
	case models.SeverityLow:
		return s.SeverityLow
	case models.SeverityMedium:
		return s.SeverityMedium
	case models.SeverityHigh:
		return s.SeverityHigh
	case models.SeverityCritical:
		return s.SeverityCritical
	default:
		return s.SeverityMedium
	}
}

// ActionStyle returns the button style for a recovery action
func (s Styles) ActionStyle(action models.RecoveryActionKind) lipgloss.Style {
	switch action.Style() {
	case models.StylePrimary:
		return s.ActionPrimary
	case models.StyleSecondary:
		return s.ActionSecondary
	case models.StyleDestructive:
		return s.ActionDestructive
	default:
		return s.ActionTertiary
	}
}

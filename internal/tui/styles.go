package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/DaraJKong/my-todos/internal/task"
	"github.com/DaraJKong/my-todos/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorDone        lipgloss.Color
	colorProgress    lipgloss.Color
	colorLow         lipgloss.Color
	colorMedium      lipgloss.Color
	colorHigh        lipgloss.Color
	colorWarning     lipgloss.Color

	// App container
	App lipgloss.Style

	// Header
	Title      lipgloss.Style
	HeaderMeta lipgloss.Style

	// Task rows
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	RowDone     lipgloss.Style
	CursorBar   lipgloss.Style

	// Status symbols
	StatusToDo       lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusDone       lipgloss.Style

	// Priority markers
	PriorityLow    lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityHigh   lipgloss.Style

	// Footer
	Muted   lipgloss.Style
	Status  lipgloss.Style
	Warning lipgloss.Style
	Help    lipgloss.Style

	// Text input
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	InputCursor      lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}

	// Convert theme colors to lipgloss colors
	s.colorBg = theme.Color(t.Bg)
	s.colorBgHighlight = theme.Color(t.BgHighlight)
	s.colorBgSelection = theme.Color(t.BgSelection)
	s.colorFg = theme.Color(t.Fg)
	s.colorFgMuted = theme.Color(t.FgMuted)
	s.colorAccent = theme.Color(t.Accent)
	s.colorDone = theme.Color(t.Done)
	s.colorProgress = theme.Color(t.Progress)
	s.colorLow = theme.Color(t.Low)
	s.colorMedium = theme.Color(t.Medium)
	s.colorHigh = theme.Color(t.High)
	s.colorWarning = theme.Color(t.Warning)

	// App container - padding provides consistent indentation for all content
	s.App = lipgloss.NewStyle().
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	// Header
	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent)

	s.HeaderMeta = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	// Task rows
	s.Row = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.RowSelected = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Bold(true)

	// Done rows read as finished without hiding the text entirely
	s.RowDone = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Strikethrough(true)

	s.CursorBar = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	// Status symbols
	s.StatusToDo = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.StatusInProgress = lipgloss.NewStyle().
		Foreground(s.colorProgress).
		Bold(true)

	s.StatusDone = lipgloss.NewStyle().
		Foreground(s.colorDone)

	// Priority markers
	s.PriorityLow = lipgloss.NewStyle().
		Foreground(s.colorLow)

	s.PriorityMedium = lipgloss.NewStyle().
		Foreground(s.colorMedium)

	s.PriorityHigh = lipgloss.NewStyle().
		Foreground(s.colorHigh).
		Bold(true)

	// Footer
	s.Muted = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.Status = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Bold(true)

	s.Warning = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Bold(true)

	s.Help = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	// Text input
	s.InputPrompt = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.InputText = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.InputPlaceholder = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.InputCursor = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	return s
}

// StatusStyle returns the style for a status symbol.
func (s *Styles) StatusStyle(st task.Status) lipgloss.Style {
	switch st {
	case task.StatusInProgress:
		return s.StatusInProgress
	case task.StatusDone:
		return s.StatusDone
	default:
		return s.StatusToDo
	}
}

// PriorityStyle returns the style for a priority marker.
func (s *Styles) PriorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityHigh:
		return s.PriorityHigh
	case task.PriorityMedium:
		return s.PriorityMedium
	default:
		return s.PriorityLow
	}
}

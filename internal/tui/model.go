// Package tui provides the terminal user interface for todos.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaraJKong/my-todos/internal/config"
	"github.com/DaraJKong/my-todos/internal/task"
	"github.com/DaraJKong/my-todos/internal/tui/commands"
	"github.com/DaraJKong/my-todos/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert // Typing a new task description
	ModeEdit   // Rewriting the selected task's description
	ModeConfirmDelete
)

// statusMsgTTL is how long transient status messages stay visible.
const statusMsgTTL = 5 * time.Second

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   task.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	tasks   []task.Task
	cursor  int
	filter  task.Filter
	sort    task.Sort
	mode    Mode
	loading bool // True until the first load completes

	// Text entry state
	input     textinput.Model
	editingID int64 // Task being edited in ModeEdit, 0 otherwise

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// New creates a new TUI model.
func New(repo task.Repository, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}

	// Create styles from theme
	styles := NewStyles(t)

	ti.PromptStyle = styles.InputPrompt
	ti.TextStyle = styles.InputText
	ti.PlaceholderStyle = styles.InputPlaceholder
	ti.Cursor.Style = styles.InputCursor

	filter := task.DefaultFilter
	if f, err := task.ParseFilter(cfg.UI.DefaultFilter); err == nil {
		filter = f
	}

	return Model{
		repo:    repo,
		config:  cfg,
		theme:   t,
		styles:  styles,
		filter:  filter,
		sort:    task.SortStatus,
		mode:    ModeNormal,
		loading: true,
		input:   ti,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadTasks(m.repo, m.filter, m.sort)
}

// Run starts the TUI.
func Run(repo task.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo task.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	p := tea.NewProgram(New(repo, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

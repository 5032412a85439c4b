package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/messages"
	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/styles"
	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/views/search"
	"github.com/reposcout/reposcout-cli/internal/core/domain"
)

// SettingsFunc returns the configured default sort and page size.
// It is re-invoked whenever the settings change notification fires.
type SettingsFunc func() (domain.SortCriterion, int)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// searchView is the repository search view component.
	searchView *search.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// loadSettings reads current config defaults, if configured.
	loadSettings SettingsFunc

	// settingsChanges signals that the config file changed on disk.
	settingsChanges <-chan struct{}

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	searchView := search.NewView(s, nil, ports.Search)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		searchView:  searchView,
		currentView: messages.ViewSearch,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView = a.searchView.WithContext(ctx)
	return a
}

// WithSettings wires config defaults and a live-reload channel. The
// defaults are applied immediately; changes holds a notification per
// on-disk edit and may be nil when watching is unavailable.
func (a *App) WithSettings(load SettingsFunc, changes <-chan struct{}) *App {
	a.loadSettings = load
	a.settingsChanges = changes
	if load != nil {
		criterion, perPage := load()
		a.searchView = a.searchView.WithDefaults(criterion, perPage)
	}
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("reposcout - GitHub Repository Search"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewSearch:
			// '?' opens help only while not typing a query
			if msg.String() == "?" && !a.searchView.InputFocused() {
				a.currentView = messages.ViewHelp
				return a, nil
			}
			if msg.String() == "q" && !a.searchView.InputFocused() {
				return a, tea.Quit
			}
			a.searchView, cmd = a.searchView.Update(msg)
			a.err = a.searchView.Err()
			return a, cmd

		case messages.ViewHelp:
			// Any of esc/q/? returns to search
			if msg.Type == tea.KeyEsc || msg.String() == "q" || msg.String() == "?" {
				a.currentView = messages.ViewSearch
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.SettingsReloaded:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewSearch {
			a.searchView, cmd = a.searchView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	if a.currentView == messages.ViewSearch {
		a.searchView, cmd = a.searchView.Update(msg)
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.searchView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Query:
  (type)      Enter search query
  enter       Submit search
  tab         Move to results

Results:
  j/k, ↑/↓    Navigate repositories
  s           Toggle sort (relevance / last-updated)
  tab         Move to language filters
  n           New search
  esc         Back to query input

Filters:
  j/k, ↑/↓    Navigate languages
  space       Toggle language filter
  s           Toggle sort

Global:
  ?           Toggle this help
  q, ctrl+c   Quit

[esc] back to search`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())

	if a.settingsChanges != nil && a.loadSettings != nil {
		go func() {
			for range a.settingsChanges {
				criterion, perPage := a.loadSettings()
				p.Send(messages.SettingsReloaded{DefaultSort: criterion, PerPage: perPage})
			}
		}()
	}

	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SearchView returns the search view component.
func (a *App) SearchView() *search.View {
	return a.searchView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
}

// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/keymap"
	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/styles"
)

// State represents the current query state for display.
type State string

const (
	StateIdle      State = "idle"
	StateSearching State = "searching"
	StateError     State = "error"
	StateResults   State = "results"
	StateHelp      State = "help"
)

// Bar displays query state, result counts and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	resultCount int
	totalCount  int
	lastPage    int
	sortLabel   string
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateIdle,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state summary on the left side.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateSearching:
		return s.styles.Muted.Render("Searching...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Search failed: %s", s.message))
		}
		return s.styles.Error.Render("Search failed")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateResults:
		summary := fmt.Sprintf("%d of %d repositories", s.resultCount, s.totalCount)
		if s.lastPage > 1 {
			summary += fmt.Sprintf(" (page 1/%d)", s.lastPage)
		}
		if s.sortLabel != "" {
			summary += "  sort: " + s.sortLabel
		}
		return s.styles.Normal.Render(summary)
	case StateIdle:
		return s.styles.Muted.Render("Ready")
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding

	if s.state == StateResults && s.resultCount > 0 {
		bindings = s.keymap.ResultsHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetCounts sets the visible and total result counts.
func (s *Bar) SetCounts(visible, total int) {
	s.resultCount = visible
	s.totalCount = total
}

// ResultCount returns the visible result count.
func (s *Bar) ResultCount() int {
	return s.resultCount
}

// SetLastPage sets the last page number reported by the API.
func (s *Bar) SetLastPage(page int) {
	s.lastPage = page
}

// SetSortLabel sets the sort criterion label.
func (s *Bar) SetSortLabel(label string) {
	s.sortLabel = label
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its idle state.
func (s *Bar) Clear() {
	s.state = StateIdle
	s.message = ""
	s.resultCount = 0
	s.totalCount = 0
	s.lastPage = 0
}

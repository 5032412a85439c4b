// Package messages defines Bubbletea message types for the TUI.
// Messages represent the intents that flow through the Elm architecture:
// each one maps to exactly one state transition in the receiving model.
package messages

import (
	"github.com/reposcout/reposcout-cli/internal/core/domain"
)

// SearchCompleted carries one search outcome back to the model.
// Seq echoes the request sequence number issued at submit time; the
// model drops completions whose sequence is no longer current, so a
// slow response can never overwrite a newer one.
type SearchCompleted struct {
	Seq     int
	Outcome *domain.SearchOutcome
	Err     error
}

// SettingsReloaded is sent when the config file changed on disk while
// the TUI is running.
type SettingsReloaded struct {
	DefaultSort domain.SortCriterion
	PerPage     int
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the query input, facets and results view.
	ViewSearch ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

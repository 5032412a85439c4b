// Package list provides the repository result list component for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/styles"
	"github.com/reposcout/reposcout-cli/internal/core/domain"
)

// ResultList displays repository results in a navigable list.
type ResultList struct {
	results  []domain.RepoResult
	selected int
	focused  bool
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		results:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No repositories")
	}

	lines := make([]string, 0, len(r.results)*2+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Repositories (%d)", len(r.results)))
	lines = append(lines, header, "")

	// Each repository takes 2 lines (title + detail), leave room for the header
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.results) {
		end = len(r.results)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderResult formats a single repository as a two-line entry.
func (r *ResultList) renderResult(index int, repo *domain.RepoResult) string {
	indicator := "  "
	if index == r.selected && r.focused {
		indicator = "> "
	}

	fullName := repo.Name
	if repo.Owner.Login != "" {
		fullName = repo.Owner.Login + "/" + repo.Name
	}

	maxNameLen := r.width - 24
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(fullName) > maxNameLen {
		fullName = fullName[:maxNameLen-3] + "..."
	}

	score := "-"
	if repo.Score != nil {
		score = fmt.Sprintf("%.2f", *repo.Score)
	}
	updated := repo.LastUpdated.Format("2006-01-02")

	var titleLine string
	if index == r.selected && r.focused {
		titleLine = r.styles.Selected.Render(
			fmt.Sprintf("%s%-*s  %s  %s", indicator, maxNameLen, fullName, score, updated))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxNameLen, fullName)) +
			r.styles.Muted.Render(score+"  "+updated)
	}

	detail := repo.Language
	if repo.Description != nil && *repo.Description != "" {
		detail = detail + "  " + *repo.Description
	}
	maxDetailLen := r.width - 6
	if maxDetailLen < 20 {
		maxDetailLen = 20
	}
	if len(detail) > maxDetailLen {
		detail = detail[:maxDetailLen-3] + "..."
	}

	detailLine := r.styles.Muted.Render("    " + detail)

	return titleLine + "\n" + detailLine
}

// SetResults updates the result list.
func (r *ResultList) SetResults(results []domain.RepoResult) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.RepoResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected repository, or nil if none.
func (r *ResultList) SelectedResult() *domain.RepoResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// Focus marks the list as the active panel.
func (r *ResultList) Focus() {
	r.focused = true
}

// Blur removes the active-panel marker.
func (r *ResultList) Blur() {
	r.focused = false
}

// Focused returns whether the list is the active panel.
func (r *ResultList) Focused() bool {
	return r.focused
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}

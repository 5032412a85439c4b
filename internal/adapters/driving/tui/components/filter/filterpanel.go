// Package filter provides the language facet panel for the TUI.
package filter

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/styles"
)

// facetEntry is one checkbox row in the panel.
type facetEntry struct {
	value    string
	selected bool
}

// Panel displays language facets as a navigable checkbox list.
type Panel struct {
	entries []facetEntry
	cursor  int
	focused bool
	styles  *styles.Styles
	width   int
	height  int
}

// NewPanel creates a new facet panel component.
func NewPanel(s *styles.Styles) *Panel {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Panel{
		entries: nil,
		cursor:  0,
		styles:  s,
		width:   24,
		height:  10,
	}
}

// Init initialises the facet panel.
func (p *Panel) Init() tea.Cmd {
	return nil
}

// Update handles panel navigation messages.
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			p.MoveUp()
		case "down", "j":
			p.MoveDown()
		}
	}
	return p, nil
}

// View renders the facet panel.
func (p *Panel) View() string {
	if len(p.entries) == 0 {
		return p.styles.Muted.Render("No filters")
	}

	lines := make([]string, 0, len(p.entries)+2)
	lines = append(lines, p.styles.Subtitle.Render("Languages"), "")

	for i, e := range p.entries {
		box := "[ ]"
		if e.selected {
			box = "[x]"
		}

		label := e.value
		maxLen := p.width - 8
		if maxLen < 8 {
			maxLen = 8
		}
		// Truncate by runes so multibyte names are never split.
		if runes := []rune(label); len(runes) > maxLen {
			label = string(runes[:maxLen-3]) + "..."
		}

		row := fmt.Sprintf("%s %s", box, label)
		if i == p.cursor && p.focused {
			lines = append(lines, p.styles.Selected.Render("> "+row))
		} else {
			lines = append(lines, p.styles.Normal.Render("  "+row))
		}
	}

	return strings.Join(lines, "\n")
}

// SetFacets replaces the panel contents from a facet selection map.
// Entries are ordered alphabetically so the panel is stable across
// refreshes; prior cursor position is kept when still in range.
func (p *Panel) SetFacets(facets map[string]bool) {
	values := make([]string, 0, len(facets))
	for v := range facets {
		values = append(values, v)
	}
	sort.Strings(values)

	entries := make([]facetEntry, 0, len(values))
	for _, v := range values {
		entries = append(entries, facetEntry{value: v, selected: facets[v]})
	}

	p.entries = entries
	if p.cursor >= len(entries) {
		p.cursor = 0
	}
}

// Toggle flips the checkbox under the cursor and reports the new
// state. ok is false when the panel is empty.
func (p *Panel) Toggle() (value string, selected bool, ok bool) {
	if len(p.entries) == 0 || p.cursor < 0 || p.cursor >= len(p.entries) {
		return "", false, false
	}
	p.entries[p.cursor].selected = !p.entries[p.cursor].selected
	return p.entries[p.cursor].value, p.entries[p.cursor].selected, true
}

// Values returns the facet values in display order.
func (p *Panel) Values() []string {
	values := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		values = append(values, e.value)
	}
	return values
}

// Cursor returns the index of the highlighted entry.
func (p *Panel) Cursor() int {
	return p.cursor
}

// MoveUp moves the cursor up.
func (p *Panel) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown moves the cursor down.
func (p *Panel) MoveDown() {
	if p.cursor < len(p.entries)-1 {
		p.cursor++
	}
}

// Focus marks the panel as the active panel.
func (p *Panel) Focus() {
	p.focused = true
}

// Blur removes the active-panel marker.
func (p *Panel) Blur() {
	p.focused = false
}

// Focused returns whether the panel is the active panel.
func (p *Panel) Focused() bool {
	return p.focused
}

// SetDimensions sets the component dimensions.
func (p *Panel) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}

// Count returns the number of facet entries.
func (p *Panel) Count() int {
	return len(p.entries)
}

// IsEmpty returns whether the panel has no entries.
func (p *Panel) IsEmpty() bool {
	return len(p.entries) == 0
}

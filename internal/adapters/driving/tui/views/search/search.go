// Package search provides the main repository search view for the TUI.
//
// The view owns the raw record set, the facet selections and the sort
// criterion. The rendered list is always derived from those three by
// filtering then sorting, so toggling a facet or switching the sort
// never mutates the records themselves.
package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/components/filter"
	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/components/input"
	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/components/list"
	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/components/status"
	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/keymap"
	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/messages"
	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/styles"
	"github.com/reposcout/reposcout-cli/internal/core/domain"
	"github.com/reposcout/reposcout-cli/internal/core/ports/driving"
	"github.com/reposcout/reposcout-cli/internal/logger"
)

// focusZone identifies which panel receives keyboard input.
type focusZone int

const (
	focusInput focusZone = iota
	focusResults
	focusFacets
)

// View represents the search view with input, facet panel, results
// list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.ResultList
	facets    *filter.Panel
	statusbar *status.Bar

	searchService driving.RepoSearchService
	ctx           context.Context

	// Raw pipeline state. records holds the decoded page exactly as
	// returned; what the list shows is recomputed from it on demand.
	records    []domain.RepoResult
	filters    *domain.FilterStore
	criterion  domain.SortCriterion
	txn        domain.QueryTransaction
	totalCount int
	lastPage   int

	// seq is bumped on every submit. Completions carrying an older
	// sequence belong to an abandoned request and are dropped.
	seq int

	perPage int

	width  int
	height int
	ready  bool
	err    error
	focus  focusZone
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.RepoSearchService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewQueryInput(s),
		list:          list.NewResultList(s),
		facets:        filter.NewPanel(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		ctx:           context.Background(),
		filters:       domain.NewFilterStore(),
		criterion:     domain.SortByScore,
		txn:           domain.NewQueryTransaction(),
		width:         80,
		height:        24,
		focus:         focusInput,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithDefaults applies configured defaults before the first search.
func (v *View) WithDefaults(criterion domain.SortCriterion, perPage int) *View {
	v.criterion = criterion
	v.perPage = perPage
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.SettingsReloaded:
		v.handleSettingsReloaded(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward to input component
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc from results or facets returns to the query input.
	if msg.Type == tea.KeyEsc {
		if v.focus != focusInput {
			v.setFocus(focusInput)
		}
		return v, nil
	}

	// Tab cycles input -> results -> facets.
	if keymap.Matches(msg.String(), v.keymap.NextFocus) {
		v.cycleFocus()
		return v, nil
	}

	// Enter in input mode submits the query.
	if msg.Type == tea.KeyEnter && v.focus == focusInput {
		return v, v.submit()
	}

	// Input mode: all other keys go to the text input.
	if v.focus == focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Sort cycling works from both results and facets panels.
	if keymap.Matches(msg.String(), v.keymap.CycleSort) {
		v.cycleSort()
		return v, nil
	}

	if keymap.Matches(msg.String(), v.keymap.NewSearch) {
		v.setFocus(focusInput)
		v.input.SetValue("")
		return v, nil
	}

	switch v.focus {
	case focusResults:
		v.list, _ = v.list.Update(msg)
	case focusFacets:
		if keymap.Matches(msg.String(), v.keymap.ToggleFacet) {
			v.toggleFacet()
			return v, nil
		}
		v.facets, _ = v.facets.Update(msg)
	case focusInput:
		// Already handled above
	}

	return v, nil
}

// submit begins a new query transaction for the pending input.
func (v *View) submit() tea.Cmd {
	query := v.input.Value()
	if query == "" {
		return nil
	}

	v.txn = v.txn.Begin()
	v.seq++
	v.err = nil
	v.statusbar.SetState(status.StateSearching)
	v.setFocus(focusResults)

	logger.Debug("submitting query %q (seq %d, txn %s)", query, v.seq, v.txn.ID)

	return v.performSearch(query, v.seq, v.perPage)
}

// performSearch executes a search and reports its outcome, tagged
// with the sequence number current at submit time. The command closure
// runs on its own goroutine, so everything it needs is captured by
// value here; it must not touch view fields the update loop mutates.
func (v *View) performSearch(query string, seq, perPage int) tea.Cmd {
	service := v.searchService
	ctx := v.ctx

	return func() tea.Msg {
		if service == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}

		outcome, err := service.Search(ctx, query, domain.SearchOptions{PerPage: perPage})
		return messages.SearchCompleted{Seq: seq, Outcome: outcome, Err: err}
	}
}

// handleSearchCompleted processes one search outcome. Stale
// completions are dropped; on failure the previous records stay
// visible so the user does not lose context.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Seq != v.seq {
		logger.Debug("dropping stale completion (seq %d, current %d)", msg.Seq, v.seq)
		return
	}

	if msg.Err != nil {
		v.txn = v.txn.Fail()
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		logger.Warn("search failed: %v", msg.Err)
		return
	}

	v.txn = v.txn.Succeed()
	v.err = nil
	v.records = msg.Outcome.Records
	v.totalCount = msg.Outcome.TotalCount
	v.lastPage = msg.Outcome.LastPage

	v.filters.SeedLanguageFacets(v.records)

	v.refreshVisible()
}

// handleSettingsReloaded applies config defaults changed on disk.
// The configured sort only takes effect before the first search; a
// sort the user picked in-session is never overridden.
func (v *View) handleSettingsReloaded(msg messages.SettingsReloaded) {
	v.perPage = msg.PerPage
	if v.txn.State == domain.StateNotAsked {
		v.criterion = msg.DefaultSort
	}
	logger.Debug("settings reloaded: per_page=%d default_sort=%s", msg.PerPage, msg.DefaultSort)
}

// toggleFacet flips the highlighted checkbox and recomputes the list.
func (v *View) toggleFacet() {
	value, selected, ok := v.facets.Toggle()
	if !ok {
		return
	}
	v.filters.SetFacet(domain.CategoryLanguage, value, selected)
	v.refreshVisible()
}

// cycleSort switches between relevance and last-updated ordering.
func (v *View) cycleSort() {
	if v.criterion == domain.SortByScore {
		v.criterion = domain.SortByLastUpdated
	} else {
		v.criterion = domain.SortByScore
	}
	v.refreshVisible()
}

// refreshVisible re-derives the rendered list from the raw records,
// current facet selections and sort criterion.
func (v *View) refreshVisible() {
	visible := domain.VisibleResults(v.records, v.filters, v.criterion)
	v.list.SetResults(visible)
	v.facets.SetFacets(v.filters.Facets(domain.CategoryLanguage))

	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetCounts(len(visible), v.totalCount)
	v.statusbar.SetLastPage(v.lastPage)
	v.statusbar.SetSortLabel(v.criterion.String())
}

// cycleFocus advances focus input -> results -> facets -> input.
func (v *View) cycleFocus() {
	switch v.focus {
	case focusInput:
		v.setFocus(focusResults)
	case focusResults:
		v.setFocus(focusFacets)
	case focusFacets:
		v.setFocus(focusInput)
	}
}

// setFocus moves keyboard focus to one panel.
func (v *View) setFocus(zone focusZone) {
	v.focus = zone

	v.input.Blur()
	v.list.Blur()
	v.facets.Blur()

	switch zone {
	case focusInput:
		v.input.Focus()
	case focusResults:
		v.list.Focus()
	case focusFacets:
		v.facets.Focus()
	}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("Reposcout")
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	// Facet panel beside the results list
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		v.list.View(),
		"   ",
		v.facets.View(),
	)
	sections = append(sections, body)

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	facetWidth := width / 4
	if facetWidth < 20 {
		facetWidth = 20
	}

	v.input.SetWidth(width)
	v.list.SetDimensions(width-facetWidth-3, height-10)
	v.facets.SetDimensions(facetWidth, height-10)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Records returns the raw records from the last successful search.
func (v *View) Records() []domain.RepoResult {
	return v.records
}

// VisibleResults returns the filtered and sorted list as rendered.
func (v *View) VisibleResults() []domain.RepoResult {
	return v.list.Results()
}

// Filters returns the facet selection store.
func (v *View) Filters() *domain.FilterStore {
	return v.filters
}

// Criterion returns the active sort criterion.
func (v *View) Criterion() domain.SortCriterion {
	return v.criterion
}

// Transaction returns the current query transaction.
func (v *View) Transaction() domain.QueryTransaction {
	return v.txn
}

// Seq returns the current request sequence number.
func (v *View) Seq() int {
	return v.seq
}

// TotalCount returns the API total for the last successful search.
func (v *View) TotalCount() int {
	return v.totalCount
}

// LastPage returns the last page number for the last successful search.
func (v *View) LastPage() int {
	return v.lastPage
}

// SelectedResult returns the currently selected repository.
func (v *View) SelectedResult() *domain.RepoResult {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the query input has focus.
func (v *View) InputFocused() bool {
	return v.focus == focusInput
}

// FacetsFocused returns whether the facet panel has focus.
func (v *View) FacetsFocused() bool {
	return v.focus == focusFacets
}

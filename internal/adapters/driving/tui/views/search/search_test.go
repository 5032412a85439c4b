package search

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/keymap"
	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/messages"
	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/styles"
	"github.com/reposcout/reposcout-cli/internal/core/domain"
)

// MockSearchService implements driving.RepoSearchService for testing.
type MockSearchService struct {
	SearchFunc func(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchOutcome, error)
	calls      int
}

func (m *MockSearchService) Search(
	ctx context.Context,
	query string,
	opts domain.SearchOptions,
) (*domain.SearchOutcome, error) {
	m.calls++
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return &domain.SearchOutcome{}, nil
}

func floatPtr(f float64) *float64 { return &f }

// testOutcome returns three repositories with distinct languages and
// descending scores.
func testOutcome() *domain.SearchOutcome {
	return &domain.SearchOutcome{
		Records: []domain.RepoResult{
			{
				Name:        "elm-compiler",
				Owner:       domain.Owner{Login: "elm"},
				URL:         "https://github.com/elm/compiler",
				LastUpdated: time.Unix(1538998604, 0).UTC(),
				Language:    "Elm",
				Score:       floatPtr(9.21),
			},
			{
				Name:        "phoenix",
				Owner:       domain.Owner{Login: "phoenixframework"},
				URL:         "https://github.com/phoenixframework/phoenix",
				LastUpdated: time.Unix(1233998500, 0).UTC(),
				Language:    "Elixir",
				Score:       floatPtr(5.77),
			},
			{
				Name:        "jquery",
				Owner:       domain.Owner{Login: "jquery"},
				URL:         "https://github.com/jquery/jquery",
				LastUpdated: time.Unix(1633998500, 0).UTC(),
				Language:    "JavaScript",
				Score:       floatPtr(1.92),
			},
		},
		TotalCount: 7341,
		LastPage:   34,
	}
}

// submitQuery types a query, presses enter and feeds the resulting
// completion back into the view, mirroring one full update cycle.
func submitQuery(t *testing.T, view *View, query string) {
	t.Helper()

	view.SetQuery(query)
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	completed, ok := msg.(messages.SearchCompleted)
	require.True(t, ok, "expected SearchCompleted, got %T", msg)
	view.Update(completed)
}

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	mock := &MockSearchService{}

	view := NewView(s, km, mock)

	require.NotNil(t, view)
	assert.False(t, view.Ready())
	assert.Equal(t, "", view.Query())
	assert.True(t, view.InputFocused())
	assert.Equal(t, domain.StateNotAsked, view.Transaction().State)
	assert.Equal(t, domain.SortByScore, view.Criterion())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, nil, nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.NotNil(t, view.keymap)
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, nil, nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.Ready())
	assert.Equal(t, 80, view.Width())
	assert.Equal(t, 24, view.Height())
}

func TestView_Submit_EmptyQueryIsIgnored(t *testing.T) {
	mock := &MockSearchService{}
	view := NewView(nil, nil, mock)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, domain.StateNotAsked, view.Transaction().State)
	assert.Equal(t, 0, mock.calls)
}

func TestView_Submit_EntersLoading(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(_ context.Context, _ string, _ domain.SearchOptions) (*domain.SearchOutcome, error) {
			return testOutcome(), nil
		},
	}
	view := NewView(nil, nil, mock)

	view.SetQuery("bbc")
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, domain.StateLoading, view.Transaction().State)
	assert.True(t, view.Transaction().InFlight())
	assert.Equal(t, 1, view.Seq())
	assert.False(t, view.InputFocused())
}

// TestView_SearchFlow runs a full query lifecycle: submit, receive
// three records, land in Success with facets seeded and everything
// visible under the default relevance sort.
func TestView_SearchFlow(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(_ context.Context, query string, _ domain.SearchOptions) (*domain.SearchOutcome, error) {
			assert.Equal(t, "bbc", query)
			return testOutcome(), nil
		},
	}
	view := NewView(nil, nil, mock)
	view.SetDimensions(120, 40)

	submitQuery(t, view, "bbc")

	assert.Equal(t, domain.StateSuccess, view.Transaction().State)
	require.Len(t, view.Records(), 3)
	assert.Equal(t, 7341, view.TotalCount())
	assert.Equal(t, 34, view.LastPage())

	// Every language facet is seeded selected, so the visible list is
	// the full record set in descending score order.
	visible := view.VisibleResults()
	require.Len(t, visible, 3)
	assert.Equal(t, "elm-compiler", visible[0].Name)
	assert.Equal(t, "phoenix", visible[1].Name)
	assert.Equal(t, "jquery", visible[2].Name)

	facets := view.Filters().Facets(domain.CategoryLanguage)
	require.Len(t, facets, 3)
	assert.True(t, facets["Elm"])
	assert.True(t, facets["Elixir"])
	assert.True(t, facets["JavaScript"])
}

func TestView_SearchFailure_KeepsPreviousRecords(t *testing.T) {
	fail := false
	mock := &MockSearchService{
		SearchFunc: func(_ context.Context, _ string, _ domain.SearchOptions) (*domain.SearchOutcome, error) {
			if fail {
				return nil, errors.New("api unreachable")
			}
			return testOutcome(), nil
		},
	}
	view := NewView(nil, nil, mock)
	view.SetDimensions(120, 40)

	submitQuery(t, view, "bbc")
	require.Len(t, view.Records(), 3)

	fail = true
	view.Update(tea.KeyMsg{Type: tea.KeyEsc}) // back to input
	submitQuery(t, view, "bbc news")

	assert.Equal(t, domain.StateFailure, view.Transaction().State)
	require.Error(t, view.Err())

	// Records from the last successful search survive the failure.
	assert.Len(t, view.Records(), 3)
}

// TestView_StaleCompletionIsDropped delivers a completion tagged with
// an outdated sequence number and verifies it cannot clobber state.
func TestView_StaleCompletionIsDropped(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(_ context.Context, _ string, _ domain.SearchOptions) (*domain.SearchOutcome, error) {
			return testOutcome(), nil
		},
	}
	view := NewView(nil, nil, mock)
	view.SetDimensions(120, 40)

	submitQuery(t, view, "bbc")
	require.Equal(t, domain.StateSuccess, view.Transaction().State)

	// A slow response from an earlier, abandoned request arrives late.
	view.Update(messages.SearchCompleted{
		Seq: 0,
		Err: errors.New("timeout from abandoned request"),
	})

	assert.Equal(t, domain.StateSuccess, view.Transaction().State)
	assert.NoError(t, view.Err())
	assert.Len(t, view.Records(), 3)
}

func TestView_ToggleFacet_NarrowsVisibleResults(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(_ context.Context, _ string, _ domain.SearchOptions) (*domain.SearchOutcome, error) {
			return testOutcome(), nil
		},
	}
	view := NewView(nil, nil, mock)
	view.SetDimensions(120, 40)

	submitQuery(t, view, "bbc")

	// Tab from results to facets, deselect the first facet (Elixir,
	// alphabetically first).
	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, view.FacetsFocused())
	view.Update(tea.KeyMsg{Type: tea.KeySpace})

	assert.False(t, view.Filters().Selected(domain.CategoryLanguage, "Elixir"))

	visible := view.VisibleResults()
	require.Len(t, visible, 2)
	for _, r := range visible {
		assert.NotEqual(t, "Elixir", r.Language)
	}

	// Toggle it back on; the record reappears.
	view.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Len(t, view.VisibleResults(), 3)
	assert.Len(t, view.Records(), 3)
}

func TestView_CycleSort_ReordersWithoutMutatingRecords(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(_ context.Context, _ string, _ domain.SearchOptions) (*domain.SearchOutcome, error) {
			return testOutcome(), nil
		},
	}
	view := NewView(nil, nil, mock)
	view.SetDimensions(120, 40)

	submitQuery(t, view, "bbc")
	require.Equal(t, domain.SortByScore, view.Criterion())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})

	assert.Equal(t, domain.SortByLastUpdated, view.Criterion())
	visible := view.VisibleResults()
	require.Len(t, visible, 3)
	assert.Equal(t, "jquery", visible[0].Name)
	assert.Equal(t, "elm-compiler", visible[1].Name)
	assert.Equal(t, "phoenix", visible[2].Name)

	// Raw records keep API order.
	assert.Equal(t, "elm-compiler", view.Records()[0].Name)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Equal(t, domain.SortByScore, view.Criterion())
}

func TestView_FocusCycling(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{})
	view.SetDimensions(120, 40)

	require.True(t, view.InputFocused())

	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, view.InputFocused())
	assert.False(t, view.FacetsFocused())

	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, view.FacetsFocused())

	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, view.InputFocused())
}

func TestView_EscReturnsToInput(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{})
	view.SetDimensions(120, 40)

	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, view.InputFocused())

	view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, view.InputFocused())
}

func TestView_NewSearchClearsInput(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(_ context.Context, _ string, _ domain.SearchOptions) (*domain.SearchOutcome, error) {
			return testOutcome(), nil
		},
	}
	view := NewView(nil, nil, mock)
	view.SetDimensions(120, 40)

	submitQuery(t, view, "bbc")
	require.False(t, view.InputFocused())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	assert.True(t, view.InputFocused())
	assert.Equal(t, "", view.Query())
	// Previous results stay on screen while typing the next query.
	assert.Len(t, view.Records(), 3)
}

func TestView_SettingsReloaded(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{})

	view.Update(messages.SettingsReloaded{
		DefaultSort: domain.SortByLastUpdated,
		PerPage:     50,
	})

	// Before the first search the configured default applies.
	assert.Equal(t, domain.SortByLastUpdated, view.Criterion())
	assert.Equal(t, 50, view.perPage)
}

func TestView_SettingsReloaded_DoesNotOverrideSessionSort(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(_ context.Context, _ string, _ domain.SearchOptions) (*domain.SearchOutcome, error) {
			return testOutcome(), nil
		},
	}
	view := NewView(nil, nil, mock)
	view.SetDimensions(120, 40)

	submitQuery(t, view, "bbc")

	view.Update(messages.SettingsReloaded{
		DefaultSort: domain.SortByLastUpdated,
		PerPage:     50,
	})

	assert.Equal(t, domain.SortByScore, view.Criterion())
	assert.Equal(t, 50, view.perPage)
}

// TestView_SearchCmdIsRaceFreeWithSettingsReload runs the search
// command on its own goroutine, as bubbletea does, while a settings
// reload mutates the view on the update loop. The command must work
// from values captured at submit time, so this passes under -race and
// the in-flight request keeps the page size it was submitted with.
func TestView_SearchCmdIsRaceFreeWithSettingsReload(t *testing.T) {
	var gotPerPage int
	mock := &MockSearchService{
		SearchFunc: func(_ context.Context, _ string, opts domain.SearchOptions) (*domain.SearchOutcome, error) {
			gotPerPage = opts.PerPage
			return testOutcome(), nil
		},
	}
	view := NewView(nil, nil, mock).WithDefaults(domain.SortByScore, 25)
	view.SetDimensions(120, 40)

	view.SetQuery("bbc")
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	done := make(chan tea.Msg, 1)
	go func() {
		done <- cmd()
	}()

	view.Update(messages.SettingsReloaded{
		DefaultSort: domain.SortByLastUpdated,
		PerPage:     50,
	})

	msg := <-done
	completed, ok := msg.(messages.SearchCompleted)
	require.True(t, ok)
	view.Update(completed)

	assert.Equal(t, 25, gotPerPage)
	assert.Equal(t, domain.StateSuccess, view.Transaction().State)
	// The reloaded page size applies from the next submit on.
	assert.Equal(t, 50, view.perPage)
}

func TestView_PerPageReachesService(t *testing.T) {
	var gotPerPage int
	mock := &MockSearchService{
		SearchFunc: func(_ context.Context, _ string, opts domain.SearchOptions) (*domain.SearchOutcome, error) {
			gotPerPage = opts.PerPage
			return testOutcome(), nil
		},
	}
	view := NewView(nil, nil, mock).WithDefaults(domain.SortByScore, 25)
	view.SetDimensions(120, 40)

	submitQuery(t, view, "bbc")

	assert.Equal(t, 25, gotPerPage)
}

func TestView_NoSearchService(t *testing.T) {
	view := NewView(nil, nil, nil)
	view.SetDimensions(120, 40)

	view.SetQuery("bbc")
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	errMsg, ok := msg.(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, ErrNoSearchService)
}

func TestView_View_RendersStates(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(_ context.Context, _ string, _ domain.SearchOptions) (*domain.SearchOutcome, error) {
			return testOutcome(), nil
		},
	}
	view := NewView(nil, nil, mock)

	assert.Equal(t, "Initialising...", view.View())

	view.SetDimensions(120, 40)
	out := view.View()
	assert.Contains(t, out, "Reposcout")

	submitQuery(t, view, "bbc")
	out = view.View()
	assert.Contains(t, out, "elm-compiler")
	assert.Contains(t, out, "Languages")
}

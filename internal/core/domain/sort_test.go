package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(name string, score float64) RepoResult {
	return RepoResult{Name: name, Language: "Go", Score: &score}
}

func updated(name string, ts int64) RepoResult {
	return RepoResult{Name: name, Language: "Go", LastUpdated: time.Unix(ts, 0)}
}

// TestSortResults_ByLastUpdated orders strictly by descending timestamp.
func TestSortResults_ByLastUpdated(t *testing.T) {
	records := []RepoResult{
		updated("mid", 1538998604),
		updated("old", 1233998500),
		updated("new", 1633998500),
	}

	sorted := SortResults(SortByLastUpdated, records)

	require.Len(t, sorted, 3)
	assert.Equal(t, "new", sorted[0].Name)
	assert.Equal(t, "mid", sorted[1].Name)
	assert.Equal(t, "old", sorted[2].Name)
}

// TestSortResults_ByScore orders strictly by descending score.
func TestSortResults_ByScore(t *testing.T) {
	records := []RepoResult{
		scored("low", 1.92),
		scored("mid", 5.77),
		scored("high", 9.21),
	}

	sorted := SortResults(SortByScore, records)

	require.Len(t, sorted, 3)
	assert.Equal(t, "high", sorted[0].Name)
	assert.Equal(t, "mid", sorted[1].Name)
	assert.Equal(t, "low", sorted[2].Name)
}

// TestSortResults_Stable keeps relative input order for equal keys.
func TestSortResults_Stable(t *testing.T) {
	records := []RepoResult{
		scored("first", 3.0),
		scored("second", 3.0),
		scored("third", 3.0),
		scored("top", 7.5),
	}

	sorted := SortResults(SortByScore, records)

	require.Len(t, sorted, 4)
	assert.Equal(t, "top", sorted[0].Name)
	assert.Equal(t, "first", sorted[1].Name)
	assert.Equal(t, "second", sorted[2].Name)
	assert.Equal(t, "third", sorted[3].Name)
}

// TestSortResults_InputUntouched does not reorder the caller's slice.
func TestSortResults_InputUntouched(t *testing.T) {
	records := []RepoResult{
		scored("low", 1.0),
		scored("high", 9.0),
	}

	_ = SortResults(SortByScore, records)

	assert.Equal(t, "low", records[0].Name)
	assert.Equal(t, "high", records[1].Name)
}

// TestSortResults_NilScore sorts records without a score below scored ones.
func TestSortResults_NilScore(t *testing.T) {
	records := []RepoResult{
		{Name: "unscored", Language: "Go"},
		scored("scored", 0.5),
	}

	sorted := SortResults(SortByScore, records)

	assert.Equal(t, "scored", sorted[0].Name)
	assert.Equal(t, "unscored", sorted[1].Name)
}

func TestParseSortCriterion(t *testing.T) {
	assert.Equal(t, SortByLastUpdated, ParseSortCriterion("last-updated"))
	assert.Equal(t, SortByScore, ParseSortCriterion("relevance"))
	assert.Equal(t, SortByScore, ParseSortCriterion(""))
	assert.Equal(t, SortByScore, ParseSortCriterion("stars"))
}

func TestSortCriterion_String(t *testing.T) {
	assert.Equal(t, "relevance", SortByScore.String())
	assert.Equal(t, "last-updated", SortByLastUpdated.String())
}

// TestVisibleResults filters before sorting.
func TestVisibleResults(t *testing.T) {
	elm := scored("elm-repo", 2.0)
	elm.Language = "Elm"
	records := []RepoResult{
		scored("go-low", 1.0),
		elm,
		scored("go-high", 9.0),
	}

	filters := NewFilterStore()
	filters.SetFacet(CategoryLanguage, "Go", true)

	visible := VisibleResults(records, filters, SortByScore)

	require.Len(t, visible, 2)
	assert.Equal(t, "go-high", visible[0].Name)
	assert.Equal(t, "go-low", visible[1].Name)
}

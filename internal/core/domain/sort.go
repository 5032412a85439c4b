package domain

import "sort"

// SortCriterion selects the ordering applied to a result set.
// Both criteria order descending; there is no ascending variant.
type SortCriterion int

const (
	// SortByScore orders by relevance score, highest first. Default.
	SortByScore SortCriterion = iota

	// SortByLastUpdated orders by update timestamp, newest first.
	SortByLastUpdated
)

// String returns the user-facing name of the criterion.
func (c SortCriterion) String() string {
	switch c {
	case SortByLastUpdated:
		return "last-updated"
	default:
		return "relevance"
	}
}

// ParseSortCriterion maps a selector value to a criterion.
// "last-updated" selects SortByLastUpdated; anything else, including the
// empty string, defaults to SortByScore.
func ParseSortCriterion(s string) SortCriterion {
	if s == "last-updated" {
		return SortByLastUpdated
	}
	return SortByScore
}

// SortResults returns records ordered by the numeric projection of the
// criterion, descending. The sort is stable: equal keys retain their
// relative input order. The input slice is not modified.
func SortResults(criterion SortCriterion, records []RepoResult) []RepoResult {
	sorted := make([]RepoResult, len(records))
	copy(sorted, records)

	key := scoreKey
	if criterion == SortByLastUpdated {
		key = updatedKey
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return key(&sorted[i]) > key(&sorted[j])
	})
	return sorted
}

// scoreKey projects a record onto its relevance score.
// A missing score sorts below every present one.
func scoreKey(r *RepoResult) float64 {
	if r.Score == nil {
		return 0
	}
	return *r.Score
}

// updatedKey projects a record onto its update timestamp as Unix seconds.
func updatedKey(r *RepoResult) float64 {
	return float64(r.LastUpdated.Unix())
}

// VisibleResults derives the rendered result list: language filtering
// followed by a stable descending sort.
func VisibleResults(records []RepoResult, filters *FilterStore, criterion SortCriterion) []RepoResult {
	return SortResults(criterion, ApplyLanguageFilter(records, filters))
}

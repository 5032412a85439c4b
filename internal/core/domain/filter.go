package domain

// CategoryLanguage is the facet category for detected languages,
// currently the only category in use.
const CategoryLanguage = "language"

// FilterStore holds facet selection state as a two-level mapping from
// category name to facet value to selected flag.
type FilterStore struct {
	categories map[string]map[string]bool
}

// NewFilterStore creates an empty filter store.
func NewFilterStore() *FilterStore {
	return &FilterStore{
		categories: make(map[string]map[string]bool),
	}
}

// SeedLanguageFacets inserts (language, true) into the language category
// for each distinct language in records, overwriting any existing entry.
// Duplicates collapse; discovery order is irrelevant.
func (f *FilterStore) SeedLanguageFacets(records []RepoResult) {
	for i := range records {
		f.SetFacet(CategoryLanguage, records[i].Language, true)
	}
}

// SetFacet records a point update for one facet value. Missing categories
// and values are created; any pair is accepted, including categories that
// were never seeded.
func (f *FilterStore) SetFacet(category, value string, selected bool) {
	facets, ok := f.categories[category]
	if !ok {
		facets = make(map[string]bool)
		f.categories[category] = facets
	}
	facets[value] = selected
}

// Selected reports whether a facet value is selected.
// Absent categories and values default to false: a filter with no
// recorded state excludes the record.
func (f *FilterStore) Selected(category, value string) bool {
	facets, ok := f.categories[category]
	if !ok {
		return false
	}
	return facets[value]
}

// Facets returns the facet map for a category, or nil if absent.
// The returned map is the live state; callers must not mutate it.
func (f *FilterStore) Facets(category string) map[string]bool {
	return f.categories[category]
}

// ApplyLanguageFilter keeps each record whose language is a selected facet
// in the language category. An empty or absent category keeps nothing:
// the empty disjunction is false, which is the state immediately after a
// query returns but before facets are seeded.
func ApplyLanguageFilter(records []RepoResult, filters *FilterStore) []RepoResult {
	kept := make([]RepoResult, 0, len(records))
	for i := range records {
		if filters.Selected(CategoryLanguage, records[i].Language) {
			kept = append(kept, records[i])
		}
	}
	return kept
}

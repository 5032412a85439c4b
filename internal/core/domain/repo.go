package domain

import "time"

// NoLanguage is the sentinel language assigned to repositories for which
// GitHub reports no detected language.
const NoLanguage = "NO LANGUAGE"

// Owner identifies the account that owns a repository.
// Immutable once decoded.
type Owner struct {
	// Login is the account name, e.g. "torvalds".
	Login string

	// AvatarURL points at the owner's avatar image.
	AvatarURL string
}

// RepoResult is one normalised repository search hit.
// A full replacement slice arrives atomically per successful query;
// individual results are never mutated after decoding.
type RepoResult struct {
	// Name is the repository name, e.g. "linux".
	Name string

	// Owner is the owning account.
	Owner Owner

	// URL is the browser-facing html_url of the repository.
	URL string

	// LastUpdated is the updated_at timestamp reported by the API.
	LastUpdated time.Time

	// Description is nil when the repository has no description.
	Description *string

	// Language is the primary detected language, or NoLanguage.
	Language string

	// Score is the relevance score. Nil when the API response omitted it.
	Score *float64
}

// SearchOptions configures a repository search request.
type SearchOptions struct {
	// PerPage is the requested page size. Zero means the API default.
	PerPage int
}

// SearchOutcome is the result of one completed search request.
type SearchOutcome struct {
	// Records is the decoded result set, capped at one page.
	Records []RepoResult

	// TotalCount is the total match count reported by the API,
	// which may exceed len(Records).
	TotalCount int

	// LastPage is the last page number parsed from the Link response
	// header, or 0 when the response fits in a single page.
	LastPage int
}

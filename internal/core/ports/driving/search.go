package driving

import (
	"context"

	"github.com/reposcout/reposcout-cli/internal/core/domain"
)

// RepoSearchService provides repository search to external actors.
type RepoSearchService interface {
	// Search runs one repository search and returns the decoded outcome.
	// A blank query returns an empty outcome without issuing a request.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchOutcome, error)
}

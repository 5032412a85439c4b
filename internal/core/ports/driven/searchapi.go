package driven

import (
	"context"

	"github.com/reposcout/reposcout-cli/internal/core/domain"
)

// SearchPage is one raw page returned by the search endpoint.
// The body is left undecoded so the domain decoder owns field mapping.
type SearchPage struct {
	// Body is the raw JSON response body.
	Body []byte

	// LastPage is the page number extracted from the Link response
	// header's rel="last" entry, or 0 when the header is absent.
	LastPage int
}

// SearchAPI fetches repository search results from a remote API.
// Implementations handle transport, authentication and request pacing;
// they do not decode the body.
type SearchAPI interface {
	// Search fetches the first result page for a query.
	// Transport and HTTP-level failures are returned as errors.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*SearchPage, error)
}

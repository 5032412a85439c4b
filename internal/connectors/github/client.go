package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/reposcout/reposcout-cli/internal/core/domain"
	"github.com/reposcout/reposcout-cli/internal/core/ports/driven"
	"github.com/reposcout/reposcout-cli/internal/logger"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Ensure Client implements the driven port.
var _ driven.SearchAPI = (*Client)(nil)

// Client wraps the go-github client for the repository search endpoint.
type Client struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewClient creates an unauthenticated search client.
// baseURL overrides the API root when non-empty (e.g. GitHub Enterprise);
// it must include a trailing slash or one is added.
func NewClient(baseURL string) (*Client, error) {
	hc := &http.Client{Timeout: DefaultTimeout}
	return newClient(hc, baseURL, false)
}

// NewClientWithToken creates a search client with a static access token.
// Works for both PAT and OAuth access tokens.
func NewClientWithToken(ctx context.Context, token, baseURL string) (*Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	return newClient(tc, baseURL, true)
}

func newClient(hc *http.Client, baseURL string, authenticated bool) (*Client, error) {
	client := gh.NewClient(hc)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parse base URL: %w", err)
		}
		client.BaseURL = parsed
	}

	return &Client{
		gh:          client,
		rateLimiter: NewRateLimiter(authenticated),
	}, nil
}

// Search fetches the first page of repository search results as raw JSON.
// The query is URL-escaped before being sent; decoding is left to the
// caller so the whole batch can be validated in one place.
func (c *Client) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (*driven.SearchPage, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	if opts.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	req, err := c.gh.NewRequest(http.MethodGet, "search/repositories?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	var body json.RawMessage
	resp, err := c.gh.Do(ctx, req, &body)
	if err != nil {
		return nil, c.wrapError(err, "search repositories")
	}

	lastPage, ok := LastPageNumber(resp.Header.Get("Link"))
	if !ok {
		lastPage = 0
	}
	logger.Debug("Search response: %d bytes, last page %d", len(body), lastPage)

	return &driven.SearchPage{Body: body, LastPage: lastPage}, nil
}

// GitHub returns the underlying go-github client.
func (c *Client) GitHub() *gh.Client {
	return c.gh
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil && ghErr.Response.Request.URL != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return &APIError{
			StatusCode: 403,
			Message:    rateErr.Message,
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}

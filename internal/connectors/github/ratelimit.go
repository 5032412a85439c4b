package github

import (
	"context"

	"golang.org/x/time/rate"
)

const (
	// UnauthenticatedSearchBudget is the search endpoint budget without
	// a token (10 requests/minute).
	UnauthenticatedSearchBudget = 10

	// AuthenticatedSearchBudget is the budget with a token
	// (30 requests/minute).
	AuthenticatedSearchBudget = 30
)

// RateLimiter paces outbound search requests with a token bucket so the
// client stays inside the endpoint budget. It is pacing only: a response
// that still comes back rate-limited is surfaced as an error, never
// retried.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a limiter sized for the search endpoint budget.
func NewRateLimiter(authenticated bool) *RateLimiter {
	budget := UnauthenticatedSearchBudget
	if authenticated {
		budget = AuthenticatedSearchBudget
	}
	perSecond := rate.Limit(float64(budget) / 60.0)
	return &RateLimiter{
		bucket: rate.NewLimiter(perSecond, 1),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

package mcp

import (
	"context"

	"github.com/reposcout/reposcout-cli/internal/core/domain"
)

// mockSearchService implements driving.RepoSearchService for testing.
type mockSearchService struct {
	outcome *domain.SearchOutcome
	err     error

	gotQuery string
	gotOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) (*domain.SearchOutcome, error) {
	m.gotQuery = query
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.outcome != nil {
		return m.outcome, nil
	}
	return &domain.SearchOutcome{}, nil
}

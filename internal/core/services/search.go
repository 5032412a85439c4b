// Package services implements the driving ports on top of driven ports.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/reposcout/reposcout-cli/internal/core/domain"
	"github.com/reposcout/reposcout-cli/internal/core/ports/driven"
	"github.com/reposcout/reposcout-cli/internal/core/ports/driving"
	"github.com/reposcout/reposcout-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.RepoSearchService = (*SearchService)(nil)

// SearchService runs repository searches against a driven SearchAPI and
// decodes the raw response into domain records.
type SearchService struct {
	api driven.SearchAPI
}

// NewSearchService creates a new search service.
func NewSearchService(api driven.SearchAPI) *SearchService {
	return &SearchService{api: api}
}

// Search fetches and decodes one page of repository search results.
// A blank query short-circuits to an empty outcome without touching the
// network. Transport and decode errors both abort the whole batch; no
// partial results are surfaced.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (*domain.SearchOutcome, error) {
	logger.Section("Repository Search")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return &domain.SearchOutcome{Records: []domain.RepoResult{}}, nil
	}

	page, err := s.api.Search(ctx, query, opts)
	if err != nil {
		logger.Warn("Search request failed: %v", err)
		return nil, fmt.Errorf("search request: %w", err)
	}

	records, total, err := domain.DecodeSearchResponse(page.Body)
	if err != nil {
		logger.Warn("Search response rejected: %v", err)
		return nil, fmt.Errorf("search response: %w", err)
	}

	logger.Info("Decoded %d of %d matches (last page %d)", len(records), total, page.LastPage)
	return &domain.SearchOutcome{
		Records:    records,
		TotalCount: total,
		LastPage:   page.LastPage,
	}, nil
}

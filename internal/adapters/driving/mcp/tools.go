package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reposcout/reposcout-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_repositories tool.
type SearchInput struct {
	Query     string   `json:"query" jsonschema:"the repository search query"`
	Sort      string   `json:"sort,omitempty" jsonschema:"sort order: relevance (default) or last-updated"`
	Languages []string `json:"languages,omitempty" jsonschema:"only return repositories in these languages"`
	Limit     int      `json:"limit,omitempty" jsonschema:"results per page, max 100 (default 30)"`
}

// SearchOutput is the output schema for the search_repositories tool.
type SearchOutput struct {
	Results    []RepoOutput `json:"results"`
	Count      int          `json:"count"`
	TotalCount int          `json:"total_count"`
	LastPage   int          `json:"last_page"`
}

// RepoOutput represents a single repository result.
type RepoOutput struct {
	FullName    string    `json:"full_name"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language"`
	Score       float64   `json:"score"`
	LastUpdated time.Time `json:"last_updated"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_repositories",
		Description: "Search GitHub repositories by query, with optional language filtering and sorting",
	}, s.handleSearch)
}

// handleSearch handles the search_repositories tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	outcome, err := s.ports.Search.Search(ctx, input.Query, domain.SearchOptions{PerPage: input.Limit})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	criterion := domain.ParseSortCriterion(input.Sort)

	filters := domain.NewFilterStore()
	if len(input.Languages) > 0 {
		for _, lang := range input.Languages {
			filters.SetFacet(domain.CategoryLanguage, lang, true)
		}
	} else {
		filters.SeedLanguageFacets(outcome.Records)
	}

	visible := domain.VisibleResults(outcome.Records, filters, criterion)

	output := SearchOutput{
		Results:    make([]RepoOutput, len(visible)),
		Count:      len(visible),
		TotalCount: outcome.TotalCount,
		LastPage:   outcome.LastPage,
	}

	for i := range visible {
		repo := RepoOutput{
			FullName:    visible[i].Name,
			URL:         visible[i].URL,
			Language:    visible[i].Language,
			LastUpdated: visible[i].LastUpdated,
		}
		if visible[i].Owner.Login != "" {
			repo.FullName = visible[i].Owner.Login + "/" + visible[i].Name
		}
		if visible[i].Description != nil {
			repo.Description = *visible[i].Description
		}
		if visible[i].Score != nil {
			repo.Score = *visible[i].Score
		}
		output.Results[i] = repo
	}

	return nil, output, nil
}

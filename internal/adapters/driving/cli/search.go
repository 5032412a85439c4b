package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui/styles"
	"github.com/reposcout/reposcout-cli/internal/core/domain"
)

var (
	searchSort      string
	searchLanguages []string
	searchLimit     int
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search GitHub repositories",
	Long: `Performs a one-shot repository search against the GitHub search API.

Results are sorted by relevance score by default; pass --sort
last-updated to order by most recent push instead. Use --language to
restrict results to one or more languages.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchSort, "sort", "relevance", "sort order: relevance or last-updated")
	searchCmd.Flags().StringSliceVarP(&searchLanguages, "language", "l", nil, "only show repositories in these languages")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 30, "results per page (max 100)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	outcome, err := searchService.Search(cmd.Context(), query, domain.SearchOptions{PerPage: searchLimit})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	criterion := domain.ParseSortCriterion(searchSort)

	// Seed every discovered language, then narrow to --language values
	// when given.
	filters := domain.NewFilterStore()
	if len(searchLanguages) > 0 {
		for _, lang := range searchLanguages {
			filters.SetFacet(domain.CategoryLanguage, lang, true)
		}
	} else {
		filters.SeedLanguageFacets(outcome.Records)
	}

	visible := domain.VisibleResults(outcome.Records, filters, criterion)

	if searchJSON {
		return outputSearchJSON(cmd, visible, outcome)
	}

	return outputSearchTable(cmd, visible, outcome)
}

// searchRow is the JSON output shape for one repository.
type searchRow struct {
	FullName    string    `json:"full_name"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language"`
	Score       *float64  `json:"score,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

// searchOutput is the JSON output envelope.
type searchOutput struct {
	TotalCount int         `json:"total_count"`
	LastPage   int         `json:"last_page"`
	Results    []searchRow `json:"results"`
}

func fullName(r *domain.RepoResult) string {
	if r.Owner.Login == "" {
		return r.Name
	}
	return r.Owner.Login + "/" + r.Name
}

func outputSearchJSON(cmd *cobra.Command, results []domain.RepoResult, outcome *domain.SearchOutcome) error {
	rows := make([]searchRow, 0, len(results))
	for i := range results {
		row := searchRow{
			FullName:    fullName(&results[i]),
			URL:         results[i].URL,
			Language:    results[i].Language,
			Score:       results[i].Score,
			LastUpdated: results[i].LastUpdated,
		}
		if results[i].Description != nil {
			row.Description = *results[i].Description
		}
		rows = append(rows, row)
	}

	data, err := json.MarshalIndent(searchOutput{
		TotalCount: outcome.TotalCount,
		LastPage:   outcome.LastPage,
		Results:    rows,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.RepoResult, outcome *domain.SearchOutcome) error {
	if len(results) == 0 {
		cmd.Println("No repositories found.")
		return nil
	}

	// Colour only when writing to a terminal; piped output stays plain.
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	s := styles.DefaultStyles()

	cmd.Printf("Showing %d of %d repositories\n", len(results), outcome.TotalCount)
	cmd.Println()

	for i := range results {
		name := fullName(&results[i])
		score := "-"
		if results[i].Score != nil {
			score = fmt.Sprintf("%.2f", *results[i].Score)
		}

		header := fmt.Sprintf("  [%d] %s (%s)", i+1, name, score)
		if styled {
			header = fmt.Sprintf("  [%d] %s (%s)", i+1, s.Title.Render(name), score)
		}
		cmd.Println(header)

		detail := fmt.Sprintf("      %s  updated %s",
			results[i].Language,
			results[i].LastUpdated.Format("2006-01-02"))
		if styled {
			detail = s.Muted.Render(detail)
		}
		cmd.Println(detail)

		if results[i].Description != nil && *results[i].Description != "" {
			cmd.Printf("      %s\n", *results[i].Description)
		}
		cmd.Printf("      %s\n", results[i].URL)
		cmd.Println()
	}

	if outcome.LastPage > 1 {
		cmd.Printf("Page 1 of %d\n", outcome.LastPage)
	}

	return nil
}

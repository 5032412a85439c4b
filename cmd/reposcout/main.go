// Command reposcout is a GitHub repository search client for the terminal.
// This is the composition root: it wires driven adapters into core
// services and hands them to the CLI driving adapter.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reposcout/reposcout-cli/internal/adapters/driven/config/file"
	"github.com/reposcout/reposcout-cli/internal/adapters/driving/cli"
	"github.com/reposcout/reposcout-cli/internal/connectors/github"
	"github.com/reposcout/reposcout-cli/internal/core/domain"
	"github.com/reposcout/reposcout-cli/internal/core/services"
	"github.com/reposcout/reposcout-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "reposcout: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	configDir, err := resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolving config dir: %w", err)
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	baseURL := store.GetString(file.KeyAPIBaseURL)
	token := store.GetString(file.KeyGitHubToken)

	var client *github.Client
	if token != "" {
		client, err = github.NewClientWithToken(ctx, token, baseURL)
	} else {
		client, err = github.NewClient(baseURL)
	}
	if err != nil {
		return fmt.Errorf("creating github client: %w", err)
	}

	searchService := services.NewSearchService(client)

	cli.SetVersion(version)
	cli.SetServices(searchService, store)

	// Config edits made while the TUI runs are picked up live; when
	// the watcher cannot start the TUI simply keeps its defaults.
	changes, err := store.Watch(ctx)
	if err != nil {
		logger.Warn("config watch unavailable: %v", err)
		changes = nil
	}

	cli.SetTUIConfig(&cli.TUIConfig{
		SearchService: searchService,
		Settings: func() (domain.SortCriterion, int) {
			return domain.ParseSortCriterion(store.GetString(file.KeyDefaultSort)),
				store.GetInt(file.KeyPerPage)
		},
		SettingsChanges: changes,
	})

	return cli.Execute()
}

// resolveConfigDir returns the reposcout config directory, creating it
// if needed. REPOSCOUT_CONFIG_DIR overrides the default location.
func resolveConfigDir() (string, error) {
	if dir := os.Getenv("REPOSCOUT_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, "reposcout")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/reposcout/reposcout-cli/internal/adapters/driving/tui"
	"github.com/reposcout/reposcout-cli/internal/core/ports/driving"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	SearchService driving.RepoSearchService

	// Settings reads the configured defaults; SettingsChanges fires
	// when the config file changes on disk. Both are optional.
	Settings        tui.SettingsFunc
	SettingsChanges <-chan struct{}
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Reposcout.

The TUI provides a visual interface for searching GitHub repositories
with language filtering and sorting.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Submit search
  Tab      - Switch panel
  Space    - Toggle language filter
  s        - Toggle sort order
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{}
	if tuiConfig != nil {
		ports.Search = tuiConfig.SearchService
	} else {
		ports.Search = searchService
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())
	if tuiConfig != nil && tuiConfig.Settings != nil {
		app.WithSettings(tuiConfig.Settings, tuiConfig.SettingsChanges)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

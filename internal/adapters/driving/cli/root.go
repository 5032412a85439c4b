// Package cli provides the command-line interface for reposcout.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/reposcout/reposcout-cli/internal/core/ports/driven"
	"github.com/reposcout/reposcout-cli/internal/core/ports/driving"
	"github.com/reposcout/reposcout-cli/internal/logger"
)

// version is the build version, overridden at link time.
var version = "dev"

// Services injected by the composition root before Execute runs.
var (
	searchService driving.RepoSearchService
	configStore   driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "reposcout",
	Short: "Search GitHub repositories from the terminal",
	Long: `Reposcout searches GitHub repositories from the terminal.

Run without arguments to launch the interactive TUI, or use the
search command for one-shot queries suitable for scripting.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the core services used by the commands.
func SetServices(search driving.RepoSearchService, config driven.ConfigStore) {
	searchService = search
	configStore = config
}

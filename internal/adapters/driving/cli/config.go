package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reposcout/reposcout-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage reposcout configuration",
	Long: `View and edit the configuration file.

Well-known keys:
  github.token         - personal access token for authenticated requests
  github.api_base_url  - API base URL (for GitHub Enterprise)
  search.per_page      - results per page (max 100)
  search.default_sort  - default sort: relevance or last-updated`,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	for _, key := range []string{
		file.KeyGitHubToken,
		file.KeyAPIBaseURL,
		file.KeyPerPage,
		file.KeyDefaultSort,
	} {
		value, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("  %s = (unset)\n", key)
			continue
		}
		if key == file.KeyGitHubToken {
			value = "(set)"
		}
		cmd.Printf("  %s = %v\n", key, value)
	}

	cmd.Println()
	cmd.Printf("File: %s\n", configStore.Path())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}

	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %q: %w", args[0], err)
	}

	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(configStore.Path())
	return nil
}

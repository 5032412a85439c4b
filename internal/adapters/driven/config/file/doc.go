// Package file provides a file-based implementation of the ConfigStore
// driven port, persisting configuration as TOML in the reposcout config
// directory. The store can also watch its file for edits so a running
// TUI picks up settings changes without a restart.
package file

package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/wpg/internal/config"
)

var (
	dbPath     string
	configPath string

	// cfg and logger are set by RootCmd's PersistentPreRunE before any
	// subcommand runs.
	cfg    *config.Config
	logger *slog.Logger

	// RootCmd is the root command for wpg
	RootCmd = &cobra.Command{
		Use:   "wpg",
		Short: "Word puzzle generator built on anagram buckets",
		Long: `wpg builds anagram puzzles from a word list.

Every word is filed under its letter signature (its letters sorted). A
signature's bucket also collects the words of every smaller signature that
can be spelled from the same letters, so a bucket with many reachable words
makes a good puzzle.

Quick Start:
  1. wpg load words.txt
  2. wpg rank
  3. wpg generate

Examples:
  # Show dictionary statistics
  wpg info

  # Inspect the bucket for a word
  wpg inspect stare

  # Generate three 6-letter puzzles
  wpg single 6 3

  # Re-merge a word list whenever it changes
  wpg watch words.txt`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.wpg/wpg.db)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/wpg/config.yaml)")

	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// setup loads the configuration and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = p
	}

	c, err := config.Load(path)
	if err != nil {
		return err
	}

	cfg = c
	logger = NewLogger(c.Log)
	return nil
}

// getDBPath returns the database path, using the flag value or default
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	wpgDir := filepath.Join(home, ".wpg")
	if err := os.MkdirAll(wpgDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create wpg directory: %w", err)
	}

	return filepath.Join(wpgDir, "wpg.db"), nil
}

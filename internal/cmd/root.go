// Package cmd implements the CLI commands for jig.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jig/internal/config"
	"jig/internal/logging"
)

var (
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "jig",
	Short: "Jira from the terminal",
	Long: `Jig manages Jira tickets without leaving the terminal: inspect issues,
move them through the workflow, log work, comment, and report time totals.

The issue key is optional for most commands; when omitted, jig derives it
from the current git branch name (e.g. feature/AD-62-daily-sync).`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(aliasCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(configCmd)
}

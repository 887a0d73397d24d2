package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <duration> [KEY]",
	Short: "Log work on an issue",
	Long: `Log time spent on an issue, in Jira work notation (1d = 8h, 1w = 5d).

Examples:
  jig log 30m AD-62
  jig log "2h 30m"     # key taken from the current git branch`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	key, err := resolveKey(argAt(args, 1))
	if err != nil {
		return err
	}

	client, err := apiClient()
	if err != nil {
		return err
	}

	if err := client.AddWorklog(cmd.Context(), key, args[0]); err != nil {
		return err
	}

	fmt.Printf("logged %s on %s\n", args[0], key)
	return nil
}

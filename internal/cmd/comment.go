package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment <text> [KEY]",
	Short: "Add a comment to an issue",
	Long: `Add a plain-text comment to an issue.

Examples:
  jig comment "deployed to staging" AD-62
  jig comment "needs another review"   # key taken from the current git branch`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runComment,
}

func runComment(cmd *cobra.Command, args []string) error {
	key, err := resolveKey(argAt(args, 1))
	if err != nil {
		return err
	}

	client, err := apiClient()
	if err != nil {
		return err
	}

	if err := client.AddComment(cmd.Context(), key, args[0]); err != nil {
		return err
	}

	fmt.Printf("commented on %s\n", key)
	return nil
}

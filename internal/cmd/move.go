package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jig/internal/term"
	"jig/internal/workflow"
)

var moveCmd = &cobra.Command{
	Use:   "move <status> [KEY]",
	Short: "Transition an issue to another status",
	Long: `Transition an issue toward the given status.

The status term is resolved through the alias map (see 'jig alias') and then
matched against the transitions available on the issue, by transition name or
target status, case-insensitively. If the server rejects the move because a
mandatory field is unset, jig asks for a value, sets the field, and retries.

Examples:
  jig move review AD-62
  jig move wip          # key taken from the current git branch
  jig move "In Progress"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMove,
}

func runMove(cmd *cobra.Command, args []string) error {
	key, err := resolveKey(argAt(args, 1))
	if err != nil {
		return err
	}

	client, err := apiClient()
	if err != nil {
		return err
	}

	resolver := &workflow.Resolver{
		Gateway: client,
		Prompt:  term.Prompt{},
		Aliases: workflow.MergeAliases(cfg.Aliases),
		FieldID: cfg.Rescue.Field,
		Out:     os.Stdout,
	}

	err = resolver.Move(cmd.Context(), key, args[0])

	var notMatched *workflow.NotMatchedError
	if errors.As(err, &notMatched) {
		fmt.Fprintf(os.Stderr, "no transition on %s matches %q; available:\n", key, notMatched.Term)
		for _, name := range notMatched.Available {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		return fmt.Errorf("nothing changed")
	}
	return err
}

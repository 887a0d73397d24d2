package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"jig/internal/workflow"
)

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage status aliases for 'jig move'",
	Long: `Manage the short status terms accepted by 'jig move'.

Built-in aliases (todo, wip, review, cr, qa, done) can be overridden; user
entries always win on collision and are stored in the config file.`,
}

var aliasLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List aliases",
	Args:  cobra.NoArgs,
	RunE:  runAliasLs,
}

var aliasSetCmd = &cobra.Command{
	Use:   "set <name> <status>",
	Short: "Add or replace an alias",
	Long: `Add or replace an alias.

Examples:
  jig alias set cr "Code Review"
  jig alias set blocked "On Hold"`,
	Args: cobra.ExactArgs(2),
	RunE: runAliasSet,
}

var aliasRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a user alias",
	Args:  cobra.ExactArgs(1),
	RunE:  runAliasRm,
}

func init() {
	aliasCmd.AddCommand(aliasLsCmd)
	aliasCmd.AddCommand(aliasSetCmd)
	aliasCmd.AddCommand(aliasRmCmd)
}

func runAliasLs(_ *cobra.Command, _ []string) error {
	merged := workflow.MergeAliases(cfg.Aliases)

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		marker := " "
		if _, ok := cfg.Aliases[name]; ok {
			marker = "*"
		}
		fmt.Printf("%s %-10s %s\n", marker, name, merged[name])
	}
	if len(cfg.Aliases) > 0 {
		fmt.Println("\n* user-defined")
	}
	return nil
}

func runAliasSet(_ *cobra.Command, args []string) error {
	name := strings.ToLower(args[0])
	if err := cfg.SetAlias(name, args[1]); err != nil {
		return err
	}
	fmt.Printf("alias %s -> %q\n", name, args[1])
	return nil
}

func runAliasRm(_ *cobra.Command, args []string) error {
	name := strings.ToLower(args[0])
	if err := cfg.RemoveAlias(name); err != nil {
		return err
	}
	fmt.Printf("removed alias %s\n", name)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration with source annotations",
	Long: `Show the fully resolved configuration and where each value came from.

Configuration is loaded with the following precedence:
  1. Embedded defaults (built into binary)
  2. Global config (~/.config/jig/config.yaml)
  3. Environment variables (highest precedence)`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	fmt.Println("# Jig Configuration")
	fmt.Println()
	fmt.Println("## Sources (in order of precedence)")
	for _, src := range cfg.Sources() {
		fmt.Printf("  - %s\n", src)
	}
	fmt.Println()

	fmt.Println("## Jira")
	printOr("url", cfg.Jira.URL, "(not set)")
	printOr("email", cfg.Jira.Email, "(not set)")
	printOr("project", cfg.Jira.Project, "(all projects)")
	fmt.Println()

	fmt.Println("## Rescue")
	fmt.Printf("  field:   %s\n", cfg.Rescue.Field)
	fmt.Println()

	fmt.Println("## Report")
	fmt.Printf("  concurrency: %d\n", cfg.Report.Concurrency)

	if len(cfg.Aliases) > 0 {
		fmt.Println()
		fmt.Println("## User Aliases")
		for name, status := range cfg.Aliases {
			fmt.Printf("  %s: %s\n", name, status)
		}
	}
	return nil
}

func printOr(label, value, fallback string) {
	if value == "" {
		value = fallback
	}
	fmt.Printf("  %-8s %s\n", label+":", value)
}

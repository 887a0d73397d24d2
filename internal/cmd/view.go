package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"jig/internal/adf"
	"jig/internal/jira"
	"jig/internal/term"
)

var viewJSON bool

var viewCmd = &cobra.Command{
	Use:   "view [KEY]",
	Short: "Show an issue",
	Long: `Show an issue's summary, status, people, description, and comments.

Examples:
  jig view AD-62
  jig view             # key taken from the current git branch
  jig view AD-62 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVar(&viewJSON, "json", false, "print the raw API response")
}

var viewFields = []string{
	"summary", "status", "issuetype", "assignee", "reporter",
	"created", "updated", "labels", "description", "comment",
}

func runView(cmd *cobra.Command, args []string) error {
	key, err := resolveKey(argAt(args, 0))
	if err != nil {
		return err
	}

	client, err := apiClient()
	if err != nil {
		return err
	}

	if viewJSON {
		raw, err := client.RawIssue(cmd.Context(), key)
		if err != nil {
			return err
		}
		os.Stdout.Write(pretty.Pretty(raw))
		return nil
	}

	issue, err := client.Issue(cmd.Context(), key, viewFields)
	if err != nil {
		return err
	}

	printIssue(issue)
	return nil
}

func printIssue(issue *jira.Issue) {
	f := issue.Fields

	fmt.Printf("%s  %s\n", term.KeyStyle.Render(issue.Key), f.Summary)
	fmt.Printf("%s %s", term.LabelStyle.Render("status:"), term.StatusStyle.Render(f.Status.Name))
	if f.IssueType.Name != "" {
		fmt.Printf("  %s %s", term.LabelStyle.Render("type:"), f.IssueType.Name)
	}
	fmt.Println()

	if f.Assignee != nil {
		fmt.Printf("%s %s\n", term.LabelStyle.Render("assignee:"), f.Assignee.DisplayName)
	}
	if f.Reporter != nil {
		fmt.Printf("%s %s\n", term.LabelStyle.Render("reporter:"), f.Reporter.DisplayName)
	}
	if len(f.Labels) > 0 {
		fmt.Printf("%s %s\n", term.LabelStyle.Render("labels:"), strings.Join(f.Labels, ", "))
	}

	if text := adf.Text(f.Description); text != "" {
		fmt.Printf("\n%s\n", text)
	}

	if f.Comment != nil && len(f.Comment.Comments) > 0 {
		fmt.Printf("\n%s\n", term.LabelStyle.Render("comments:"))
		for _, c := range f.Comment.Comments {
			fmt.Printf("  %s (%s)\n", c.Author.DisplayName, c.Created)
			for _, line := range strings.Split(adf.Text(c.Body), "\n") {
				fmt.Printf("    %s\n", line)
			}
		}
	}
}

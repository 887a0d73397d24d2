package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"jig/internal/term"
	"jig/internal/worklog"
	"jig/internal/worktime"
)

var (
	reportSince string
	reportLimit int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show time logged per issue",
	Long: `Show the time you logged per issue since a start date.

The default period starts on Monday of the current week. Totals are shown in
work notation (1d = 8h, 1w = 5d) with a wall-clock total at the bottom.

Examples:
  jig report
  jig report --since 2026-08-01`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportSince, "since", "", "start date (YYYY-MM-DD, default: Monday of this week)")
	reportCmd.Flags().IntVar(&reportLimit, "limit", 50, "maximum issues to inspect")
}

func runReport(cmd *cobra.Command, args []string) error {
	since := startOfWeek(time.Now())
	if reportSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", reportSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since date %q: %w", reportSince, err)
		}
		since = parsed
	}

	client, err := apiClient()
	if err != nil {
		return err
	}

	me, err := client.Myself(cmd.Context())
	if err != nil {
		return err
	}

	jql := fmt.Sprintf("worklogAuthor = currentUser() AND worklogDate >= %q", since.Format("2006-01-02"))
	if cfg.Jira.Project != "" {
		jql = fmt.Sprintf("project = %s AND %s", cfg.Jira.Project, jql)
	}

	issues, err := client.Search(cmd.Context(), jql, []string{"summary"}, reportLimit)
	if err != nil {
		return err
	}

	totals, err := worklog.FetchTotals(cmd.Context(), client, issues, me.AccountID, since, cfg.Report.Concurrency)
	if err != nil {
		return err
	}

	grand := 0
	for _, t := range totals {
		if t.Seconds == 0 {
			continue
		}
		grand += t.Seconds
		fmt.Printf("%s  %-8s %s\n", term.KeyStyle.Render(fmt.Sprintf("%-10s", t.Key)), worktime.Format(t.Seconds), t.Summary)
	}

	if grand == 0 {
		fmt.Printf("no work logged since %s\n", since.Format("2006-01-02"))
		return nil
	}

	fmt.Printf("\n%s %s (%s) since %s\n",
		term.LabelStyle.Render("total:"),
		term.TotalStyle.Render(worktime.Format(grand)),
		worktime.FormatClock(grand),
		since.Format("2006-01-02"))
	return nil
}

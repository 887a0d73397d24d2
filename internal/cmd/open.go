package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [KEY]",
	Short: "Open an issue in the browser",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOpen,
}

func runOpen(_ *cobra.Command, args []string) error {
	key, err := resolveKey(argAt(args, 0))
	if err != nil {
		return err
	}

	if cfg.Jira.URL == "" {
		return fmt.Errorf("jira.url is not configured: edit %s or set JIRA_URL", cfg.Path())
	}

	url := strings.TrimRight(cfg.Jira.URL, "/") + "/browse/" + key
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

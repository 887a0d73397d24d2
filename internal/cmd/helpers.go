package cmd

import (
	"fmt"
	"os"
	"time"

	"jig/internal/branch"
	"jig/internal/credential"
	"jig/internal/git"
	"jig/internal/jira"
)

// apiClient builds a Jira client from config and the stored credential.
func apiClient() (*jira.Client, error) {
	if cfg.Jira.URL == "" {
		return nil, fmt.Errorf("jira.url is not configured: edit %s or set JIRA_URL", cfg.Path())
	}
	if cfg.Jira.Email == "" {
		return nil, fmt.Errorf("jira.email is not configured: edit %s or set JIRA_EMAIL", cfg.Path())
	}
	token, err := credential.Token()
	if err != nil {
		return nil, err
	}
	return jira.NewClient(jira.Config{
		BaseURL:  cfg.Jira.URL,
		Email:    cfg.Jira.Email,
		APIToken: token,
	}), nil
}

// resolveKey turns an optional positional argument into an issue key,
// falling back to the current git branch name.
func resolveKey(explicit string) (string, error) {
	r := &branch.Resolver{Out: os.Stderr}
	if wd, err := os.Getwd(); err == nil {
		if repo, err := git.Open(wd); err == nil {
			r.Head = repo
		}
	}
	return r.Resolve(explicit)
}

// argAt returns args[i] or "" when the argument was not given.
func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// startOfWeek returns Monday 00:00 of now's week, in now's location.
func startOfWeek(now time.Time) time.Time {
	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	day := now.AddDate(0, 0, -(weekday - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}

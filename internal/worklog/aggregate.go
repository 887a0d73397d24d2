// Package worklog aggregates time spent on issues from Jira worklog entries.
package worklog

import (
	"time"

	"jig/internal/jira"
)

// Sum adds up the seconds logged by accountID on or after since.
//
// Entries by other authors, entries without a parseable start timestamp, and
// entries started strictly before since are skipped. Malformed entries are
// never an error; a missing duration counts as zero.
func Sum(entries []jira.Worklog, accountID string, since time.Time) int {
	total := 0
	for _, e := range entries {
		if e.Author.AccountID == "" || e.Author.AccountID != accountID {
			continue
		}
		started, ok := e.StartedAt()
		if !ok {
			continue
		}
		if started.Before(since) {
			continue
		}
		total += e.TimeSpentSeconds
	}
	return total
}

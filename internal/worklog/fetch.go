package worklog

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"jig/internal/jira"
)

// Source fetches the worklog entries of a single issue.
type Source interface {
	Worklogs(ctx context.Context, key string) ([]jira.Worklog, error)
}

// IssueTotal is the time logged by one user on one issue.
type IssueTotal struct {
	Key     string
	Summary string
	Seconds int
}

// FetchTotals fetches worklogs for each issue concurrently and sums the time
// logged by accountID since the given date. Each issue is fetched
// independently and contributes its own partial sum, so results combine in
// issue order regardless of fetch completion order.
func FetchTotals(ctx context.Context, src Source, issues []jira.Issue, accountID string, since time.Time, concurrency int) ([]IssueTotal, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	totals := make([]IssueTotal, len(issues))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, issue := range issues {
		g.Go(func() error {
			entries, err := src.Worklogs(ctx, issue.Key)
			if err != nil {
				return err
			}
			totals[i] = IssueTotal{
				Key:     issue.Key,
				Summary: issue.Fields.Summary,
				Seconds: Sum(entries, accountID, since),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return totals, nil
}

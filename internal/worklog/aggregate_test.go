package worklog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jig/internal/jira"
)

func stamp(t *testing.T, v time.Time) string {
	t.Helper()
	return v.Format(jira.TimeFormat)
}

func TestSum(t *testing.T) {
	day := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	entry := func(account string, started time.Time, seconds int) jira.Worklog {
		return jira.Worklog{
			Author:           jira.User{AccountID: account},
			Started:          started.Format(jira.TimeFormat),
			TimeSpentSeconds: seconds,
		}
	}

	t.Run("counts only the requested author", func(t *testing.T) {
		entries := []jira.Worklog{
			entry("A", day, 3600),
			entry("B", day, 1800),
		}
		assert.Equal(t, 3600, Sum(entries, "A", day))
	})

	t.Run("start date boundary is inclusive", func(t *testing.T) {
		entries := []jira.Worklog{
			entry("A", day, 3600),
			entry("A", day.Add(-time.Second), 1800),
		}
		assert.Equal(t, 3600, Sum(entries, "A", day))
	})

	t.Run("skips entries without a start timestamp", func(t *testing.T) {
		entries := []jira.Worklog{
			{Author: jira.User{AccountID: "A"}, TimeSpentSeconds: 3600},
			entry("A", day.Add(time.Hour), 900),
		}
		assert.Equal(t, 900, Sum(entries, "A", day))
	})

	t.Run("absent author never matches", func(t *testing.T) {
		entries := []jira.Worklog{
			{Started: stamp(t, day), TimeSpentSeconds: 3600},
		}
		assert.Equal(t, 0, Sum(entries, "", day))
	})

	t.Run("missing duration counts as zero", func(t *testing.T) {
		entries := []jira.Worklog{
			{Author: jira.User{AccountID: "A"}, Started: stamp(t, day)},
			entry("A", day, 600),
		}
		assert.Equal(t, 600, Sum(entries, "A", day))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, 0, Sum(nil, "A", day))
	})
}

type fakeSource struct {
	logs map[string][]jira.Worklog
	err  error
}

func (f fakeSource) Worklogs(_ context.Context, key string) ([]jira.Worklog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.logs[key], nil
}

func TestFetchTotals(t *testing.T) {
	day := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	src := fakeSource{logs: map[string][]jira.Worklog{
		"AD-1": {
			{Author: jira.User{AccountID: "A"}, Started: stamp(t, day), TimeSpentSeconds: 3600},
			{Author: jira.User{AccountID: "B"}, Started: stamp(t, day), TimeSpentSeconds: 1800},
		},
		"AD-2": {
			{Author: jira.User{AccountID: "A"}, Started: stamp(t, day.Add(time.Hour)), TimeSpentSeconds: 900},
		},
	}}
	issues := []jira.Issue{
		{Key: "AD-1", Fields: jira.Fields{Summary: "first"}},
		{Key: "AD-2", Fields: jira.Fields{Summary: "second"}},
		{Key: "AD-3", Fields: jira.Fields{Summary: "untouched"}},
	}

	totals, err := FetchTotals(context.Background(), src, issues, "A", day, 4)
	require.NoError(t, err)

	require.Len(t, totals, 3)
	assert.Equal(t, IssueTotal{Key: "AD-1", Summary: "first", Seconds: 3600}, totals[0])
	assert.Equal(t, IssueTotal{Key: "AD-2", Summary: "second", Seconds: 900}, totals[1])
	assert.Equal(t, 0, totals[2].Seconds)
}

func TestFetchTotalsPropagatesErrors(t *testing.T) {
	src := fakeSource{err: assert.AnError}
	issues := []jira.Issue{{Key: "AD-1"}}

	_, err := FetchTotals(context.Background(), src, issues, "A", time.Now(), 2)
	assert.ErrorIs(t, err, assert.AnError)
}

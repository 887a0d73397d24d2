package jira

import "time"

// TimeFormat is the strict timestamp layout used by the Jira REST API.
const TimeFormat = "2006-01-02T15:04:05.000-0700"

// Issue is a single Jira issue as returned by the REST API, limited to the
// fields this tool consumes.
type Issue struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Fields Fields `json:"fields"`
}

// Fields holds the standard issue fields.
type Fields struct {
	Summary     string       `json:"summary"`
	Status      Status       `json:"status"`
	IssueType   IssueType    `json:"issuetype"`
	Assignee    *User        `json:"assignee"`
	Reporter    *User        `json:"reporter"`
	Project     Project      `json:"project"`
	Created     string       `json:"created"`
	Updated     string       `json:"updated"`
	Labels      []string     `json:"labels,omitempty"`
	Description any          `json:"description,omitempty"`
	Comment     *CommentPage `json:"comment,omitempty"`
}

// Status is an issue's workflow status.
type Status struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IssueType is the type of an issue (Bug, Story, ...).
type IssueType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is a Jira account.
type User struct {
	AccountID    string `json:"accountId"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

// Project is the project an issue belongs to.
type Project struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Component is a project component.
type Component struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Transition is one edge in an issue's workflow state machine, valid for the
// issue's current status only. Transitions are re-fetched on every use and
// never cached.
type Transition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	To   Status `json:"to"`
}

type transitionsResponse struct {
	Transitions []Transition `json:"transitions"`
}

// Comment is a single issue comment. The body is ADF on API v3.
type Comment struct {
	ID      string `json:"id"`
	Author  User   `json:"author"`
	Body    any    `json:"body"`
	Created string `json:"created"`
}

// CommentPage is the paginated comment container embedded in issue fields.
type CommentPage struct {
	StartAt    int       `json:"startAt"`
	MaxResults int       `json:"maxResults"`
	Total      int       `json:"total"`
	Comments   []Comment `json:"comments"`
}

// Worklog is a timestamped record of time spent on an issue.
type Worklog struct {
	ID               string `json:"id"`
	Author           User   `json:"author"`
	Started          string `json:"started"`
	TimeSpentSeconds int    `json:"timeSpentSeconds"`
	Comment          any    `json:"comment,omitempty"`
}

// StartedAt parses the worklog start timestamp. The second return value is
// false when the timestamp is absent or malformed.
func (w Worklog) StartedAt() (time.Time, bool) {
	if w.Started == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(TimeFormat, w.Started)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type worklogPage struct {
	StartAt    int       `json:"startAt"`
	MaxResults int       `json:"maxResults"`
	Total      int       `json:"total"`
	Worklogs   []Worklog `json:"worklogs"`
}

type searchRequest struct {
	JQL        string   `json:"jql"`
	Fields     []string `json:"fields,omitempty"`
	MaxResults int      `json:"maxResults"`
}

type searchResponse struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

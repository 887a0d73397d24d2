// Package jira is a thin HTTP client for the Jira Cloud REST API v3.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"jig/internal/adf"
)

// Config holds connection settings for a Jira Cloud instance. Authentication
// is HTTP basic with the account email and an API token.
type Config struct {
	BaseURL  string
	Email    string
	APIToken string
	Timeout  time.Duration
}

// Client talks to a single Jira instance. All methods issue one request per
// call (plus pagination); nothing is cached between calls.
type Client struct {
	cfg        Config
	httpClient *http.Client
	maxRetries int
}

// NewClient creates a client for the instance at cfg.BaseURL.
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:        Config{BaseURL: strings.TrimRight(cfg.BaseURL, "/"), Email: cfg.Email, APIToken: cfg.APIToken, Timeout: cfg.Timeout},
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxRetries: 3,
	}
}

// Issue fetches a single issue with the given fields. An empty fields list
// requests the server default field set.
func (c *Client) Issue(ctx context.Context, key string, fields []string) (*Issue, error) {
	path := "/rest/api/3/issue/" + url.PathEscape(key)
	if len(fields) > 0 {
		path += "?fields=" + url.QueryEscape(strings.Join(fields, ","))
	}
	var issue Issue
	if err := c.do(ctx, http.MethodGet, path, nil, &issue); err != nil {
		return nil, fmt.Errorf("get issue %s: %w", key, err)
	}
	return &issue, nil
}

// RawIssue fetches an issue and returns the response body verbatim.
func (c *Client) RawIssue(ctx context.Context, key string) ([]byte, error) {
	body, err := c.doRaw(ctx, http.MethodGet, "/rest/api/3/issue/"+url.PathEscape(key), nil)
	if err != nil {
		return nil, fmt.Errorf("get issue %s: %w", key, err)
	}
	return body, nil
}

// Myself returns the account the API token belongs to.
func (c *Client) Myself(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/rest/api/3/myself", nil, &user); err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	return &user, nil
}

// Transitions lists the transitions available from the issue's current
// status, in server order.
func (c *Client) Transitions(ctx context.Context, key string) ([]Transition, error) {
	var resp transitionsResponse
	path := "/rest/api/3/issue/" + url.PathEscape(key) + "/transitions"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get transitions for %s: %w", key, err)
	}
	return resp.Transitions, nil
}

// DoTransition executes a workflow transition. The server rejects it with a
// validation error when a mandatory field of the target status is unset.
func (c *Client) DoTransition(ctx context.Context, key, transitionID string) error {
	body := map[string]any{"transition": map[string]string{"id": transitionID}}
	path := "/rest/api/3/issue/" + url.PathEscape(key) + "/transitions"
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("transition %s on %s: %w", transitionID, key, err)
	}
	return nil
}

// EditIssue updates issue fields. The payload is a complete request body of
// the form {"fields": {...}} and is sent verbatim, since custom field shapes
// vary per instance.
func (c *Client) EditIssue(ctx context.Context, key string, payload json.RawMessage) error {
	path := "/rest/api/3/issue/" + url.PathEscape(key)
	if err := c.do(ctx, http.MethodPut, path, payload, nil); err != nil {
		return fmt.Errorf("edit issue %s: %w", key, err)
	}
	return nil
}

// ProjectComponents lists components of a project.
func (c *Client) ProjectComponents(ctx context.Context, projectKey string) ([]Component, error) {
	var comps []Component
	path := "/rest/api/3/project/" + url.PathEscape(projectKey) + "/components"
	if err := c.do(ctx, http.MethodGet, path, nil, &comps); err != nil {
		return nil, fmt.Errorf("get components for %s: %w", projectKey, err)
	}
	return comps, nil
}

// Worklogs returns all worklog entries of an issue, following pagination.
func (c *Client) Worklogs(ctx context.Context, key string) ([]Worklog, error) {
	var all []Worklog
	startAt := 0
	for {
		var page worklogPage
		path := fmt.Sprintf("/rest/api/3/issue/%s/worklog?startAt=%d", url.PathEscape(key), startAt)
		if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, fmt.Errorf("get worklogs for %s: %w", key, err)
		}
		all = append(all, page.Worklogs...)
		startAt += len(page.Worklogs)
		if startAt >= page.Total || len(page.Worklogs) == 0 {
			break
		}
	}
	return all, nil
}

// AddWorklog logs time against an issue. The duration is work notation
// ("2h 30m") and is validated server side.
func (c *Client) AddWorklog(ctx context.Context, key, timeSpent string) error {
	body := map[string]any{"timeSpent": timeSpent}
	path := "/rest/api/3/issue/" + url.PathEscape(key) + "/worklog"
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("add worklog to %s: %w", key, err)
	}
	return nil
}

// AddComment adds a plain-text comment, wrapped in the minimal ADF document.
func (c *Client) AddComment(ctx context.Context, key, text string) error {
	body := map[string]any{"body": adf.Document(text)}
	path := "/rest/api/3/issue/" + url.PathEscape(key) + "/comment"
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("add comment to %s: %w", key, err)
	}
	return nil
}

// Search runs a JQL query and returns up to limit issues with the given fields.
func (c *Client) Search(ctx context.Context, jql string, fields []string, limit int) ([]Issue, error) {
	req := searchRequest{JQL: jql, Fields: fields, MaxResults: limit}
	var resp searchResponse
	if err := c.do(ctx, http.MethodPost, "/rest/api/3/search", req, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", jql, err)
	}
	return resp.Issues, nil
}

// BrowseURL returns the web UI address of an issue.
func (c *Client) BrowseURL(key string) string {
	return c.cfg.BaseURL + "/browse/" + key
}

// do performs a JSON request and unmarshals a JSON response into result.
// A json.RawMessage body is sent verbatim; any other non-nil body is
// marshaled. Retries once per attempt on HTTP 429, honoring Retry-After.
func (c *Client) do(ctx context.Context, method, path string, body any, result any) error {
	respBody, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if result == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		switch b := body.(type) {
		case json.RawMessage:
			payload = b
		default:
			data, err := json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("encode request body: %w", err)
			}
			payload = data
		}
	}

	endpoint := c.cfg.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.SetBasicAuth(c.cfg.Email, c.cfg.APIToken)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		log.Debug().Str("method", method).Str("path", path).Int("attempt", attempt).Msg("jira request")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, err)
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("read response: %w", readErr)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			wait := retryAfter(resp, attempt)
			lastErr = newAPIError(resp.StatusCode, respBody)
			log.Debug().Dur("wait", wait).Msg("rate limited, backing off")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, newAPIError(resp.StatusCode, respBody)
		}
		return respBody, nil
	}
	return nil, fmt.Errorf("retries exhausted: %w", lastErr)
}

// retryAfter returns the server-requested backoff, falling back to an
// exponential schedule when the Retry-After header is missing.
func retryAfter(resp *http.Response, attempt int) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Duration(1<<attempt) * time.Second
}

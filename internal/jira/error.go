package jira

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// APIError is a non-2xx response from the Jira REST API. Validation failures
// (missing mandatory fields, closed workflows) arrive as 400s with human
// readable messages in the body.
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("jira: HTTP %d", e.Status)
	}
	return fmt.Sprintf("jira: HTTP %d: %s", e.Status, strings.Join(e.Messages, "; "))
}

// newAPIError extracts error messages from a Jira error body. Jira reports
// both a top-level "errorMessages" array and a per-field "errors" object;
// both are collected.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	for _, m := range gjson.GetBytes(body, "errorMessages").Array() {
		apiErr.Messages = append(apiErr.Messages, m.String())
	}
	gjson.GetBytes(body, "errors").ForEach(func(field, msg gjson.Result) bool {
		apiErr.Messages = append(apiErr.Messages, fmt.Sprintf("%s: %s", field.String(), msg.String()))
		return true
	})

	return apiErr
}

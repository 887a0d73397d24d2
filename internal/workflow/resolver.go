// Package workflow moves issues through their workflow, recovering from
// transitions that are rejected for lacking a mandatory field value.
package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"jig/internal/branch"
	"jig/internal/jira"
)

// ErrNoTransitions is returned when the issue's current status has no
// outgoing transitions (e.g. a terminal status).
var ErrNoTransitions = errors.New("issue has no available transitions")

// NotMatchedError is returned when the search term matched none of the
// available transitions. It carries the full option list so the user can
// retry with a better term.
type NotMatchedError struct {
	Term      string
	Available []string
}

func (e *NotMatchedError) Error() string {
	return fmt.Sprintf("no transition matches %q; available: %s", e.Term, strings.Join(e.Available, ", "))
}

// ExhaustedError is returned when every candidate payload shape for the
// rescue field was rejected.
type ExhaustedError struct {
	Field string
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("could not set field %q: every payload shape was rejected", e.Field)
}

// Gateway is the slice of the issue tracker the resolver needs.
type Gateway interface {
	Transitions(ctx context.Context, key string) ([]jira.Transition, error)
	DoTransition(ctx context.Context, key, transitionID string) error
	EditIssue(ctx context.Context, key string, payload json.RawMessage) error
	ProjectComponents(ctx context.Context, projectKey string) ([]jira.Component, error)
}

// Prompter asks the user to pick or type a value during rescue.
type Prompter interface {
	Choose(title string, options []string) (string, error)
	Input(title string) (string, error)
}

// manualEntry is the sentinel choice that switches the rescue value
// selection from the component list to free-text input.
const manualEntry = "(enter manually)"

// Resolver matches a status term against an issue's available transitions
// and executes the match, falling back to the rescue procedure when the
// server rejects the move.
type Resolver struct {
	Gateway Gateway
	Prompt  Prompter

	// Aliases maps short terms to full status search terms; see MergeAliases.
	Aliases map[string]string
	// FieldID is the field the rescue value is written to. Empty means the
	// built-in components field.
	FieldID string
	// Out receives user-visible status lines. nil defaults to io.Discard.
	Out io.Writer
}

// Move transitions the issue toward the status described by term.
//
// The term is resolved through the alias map, then matched case-insensitively
// as a substring against each transition's own name and its target status
// name; the first match in gateway order wins. A rejection of the direct move
// is swallowed regardless of cause (the server gives no structured code to
// tell a missing mandatory field apart from anything else) and triggers the
// rescue procedure: pick a value, write it to the configured field trying
// each payload shape in turn, then retry the same transition once. The retry
// failure, unlike the first, is surfaced.
func (r *Resolver) Move(ctx context.Context, key, term string) error {
	search := resolveTerm(r.Aliases, term)

	transitions, err := r.Gateway.Transitions(ctx, key)
	if err != nil {
		return err
	}
	if len(transitions) == 0 {
		return ErrNoTransitions
	}

	match, ok := matchTransition(transitions, search)
	if !ok {
		return &NotMatchedError{Term: term, Available: transitionNames(transitions)}
	}

	if err := r.Gateway.DoTransition(ctx, key, match.ID); err != nil {
		log.Debug().Err(err).Str("transition", match.Name).Msg("direct move rejected, entering rescue")
		return r.rescue(ctx, key, match)
	}

	fmt.Fprintf(r.out(), "%s moved to %s\n", key, match.To.Name)
	return nil
}

// matchTransition finds the first transition whose name or target status
// name contains the search term, case-insensitively. List order is the
// ranking; there is no scoring.
func matchTransition(transitions []jira.Transition, term string) (jira.Transition, bool) {
	needle := strings.ToLower(term)
	for _, t := range transitions {
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(t.To.Name), needle) {
			return t, true
		}
	}
	return jira.Transition{}, false
}

func transitionNames(transitions []jira.Transition) []string {
	names := make([]string, len(transitions))
	for i, t := range transitions {
		names[i] = fmt.Sprintf("%s (-> %s)", t.Name, t.To.Name)
	}
	return names
}

// rescue drives the fallback after a rejected move: select a value, set the
// configured field with it, retry the transition.
func (r *Resolver) rescue(ctx context.Context, key string, t jira.Transition) error {
	fmt.Fprintf(r.out(), "%s: transition %q was rejected, trying to set a required field\n", key, t.Name)

	value, err := r.selectValue(ctx, key)
	if err != nil {
		return err
	}

	fieldID := r.FieldID
	if fieldID == "" {
		fieldID = ComponentsField
	}

	if err := r.updateField(ctx, key, fieldID, value); err != nil {
		return err
	}

	if err := r.Gateway.DoTransition(ctx, key, t.ID); err != nil {
		return fmt.Errorf("transition %q still rejected after setting %s: %w", t.Name, fieldID, err)
	}

	fmt.Fprintf(r.out(), "%s moved to %s\n", key, t.To.Name)
	return nil
}

// selectValue offers the project's components, with manual entry as the
// first option.
func (r *Resolver) selectValue(ctx context.Context, key string) (string, error) {
	components, err := r.Gateway.ProjectComponents(ctx, branch.ProjectKey(key))
	if err != nil {
		return "", fmt.Errorf("get project components: %w", err)
	}

	options := make([]string, 0, len(components)+1)
	options = append(options, manualEntry)
	for _, c := range components {
		options = append(options, c.Name)
	}

	choice, err := r.Prompt.Choose("Pick a value for the required field", options)
	if err != nil {
		return "", err
	}
	if choice == manualEntry {
		return r.Prompt.Input("Field value")
	}
	return choice, nil
}

// updateField tries each candidate payload shape in order and stops at the
// first one the server accepts.
func (r *Resolver) updateField(ctx context.Context, key, fieldID, value string) error {
	for _, payload := range fieldCandidates(fieldID, value) {
		err := r.Gateway.EditIssue(ctx, key, payload)
		if err == nil {
			return nil
		}
		log.Debug().Err(err).Str("field", fieldID).Msg("payload shape rejected")
	}
	return &ExhaustedError{Field: fieldID}
}

func (r *Resolver) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}

package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jig/internal/jira"
)

// fakeGateway scripts the remote side of a move. moveErrs is consumed one
// error per DoTransition call (nil meaning success).
type fakeGateway struct {
	transitions    []jira.Transition
	transitionsErr error
	components     []jira.Component
	componentsErr  error
	moveErrs       []error
	editErrs       []error

	movedIDs     []string
	editPayloads []string
	projectKeys  []string
}

func (g *fakeGateway) Transitions(context.Context, string) ([]jira.Transition, error) {
	return g.transitions, g.transitionsErr
}

func (g *fakeGateway) DoTransition(_ context.Context, _ string, id string) error {
	g.movedIDs = append(g.movedIDs, id)
	if len(g.moveErrs) == 0 {
		return nil
	}
	err := g.moveErrs[0]
	g.moveErrs = g.moveErrs[1:]
	return err
}

func (g *fakeGateway) EditIssue(_ context.Context, _ string, payload json.RawMessage) error {
	g.editPayloads = append(g.editPayloads, string(payload))
	if len(g.editErrs) == 0 {
		return nil
	}
	err := g.editErrs[0]
	g.editErrs = g.editErrs[1:]
	return err
}

func (g *fakeGateway) ProjectComponents(_ context.Context, projectKey string) ([]jira.Component, error) {
	g.projectKeys = append(g.projectKeys, projectKey)
	return g.components, g.componentsErr
}

type fakePrompt struct {
	choice string
	input  string

	chooseOptions []string
}

func (p *fakePrompt) Choose(_ string, options []string) (string, error) {
	p.chooseOptions = options
	return p.choice, nil
}

func (p *fakePrompt) Input(string) (string, error) {
	return p.input, nil
}

func reviewTransitions() []jira.Transition {
	return []jira.Transition{
		{ID: "21", Name: "Start Review", To: jira.Status{Name: "Code Review"}},
		{ID: "31", Name: "Close", To: jira.Status{Name: "Done"}},
	}
}

func TestMoveDirectSuccess(t *testing.T) {
	gw := &fakeGateway{transitions: reviewTransitions()}
	var out bytes.Buffer
	r := &Resolver{Gateway: gw, Aliases: MergeAliases(nil), Out: &out}

	require.NoError(t, r.Move(context.Background(), "AD-62", "review"))

	assert.Equal(t, []string{"21"}, gw.movedIDs)
	assert.Contains(t, out.String(), "AD-62 moved to Code Review")
}

func TestMoveMatchesTargetStatusName(t *testing.T) {
	// "review" matches neither transition name "Start Review" only: it also
	// matches the destination "Code Review"; either is sufficient.
	gw := &fakeGateway{transitions: []jira.Transition{
		{ID: "41", Name: "Kick off", To: jira.Status{Name: "In Review"}},
	}}
	r := &Resolver{Gateway: gw, Aliases: MergeAliases(nil)}

	require.NoError(t, r.Move(context.Background(), "AD-62", "REVIEW"))
	assert.Equal(t, []string{"41"}, gw.movedIDs)
}

func TestMoveResolvesAlias(t *testing.T) {
	gw := &fakeGateway{transitions: reviewTransitions()}
	r := &Resolver{Gateway: gw, Aliases: MergeAliases(map[string]string{"cr": "Code Review"})}

	require.NoError(t, r.Move(context.Background(), "AD-62", "cr"))
	assert.Equal(t, []string{"21"}, gw.movedIDs)
}

func TestMoveFirstMatchWins(t *testing.T) {
	gw := &fakeGateway{transitions: []jira.Transition{
		{ID: "11", Name: "Reopen Review", To: jira.Status{Name: "Open"}},
		{ID: "21", Name: "Start Review", To: jira.Status{Name: "Code Review"}},
	}}
	r := &Resolver{Gateway: gw, Aliases: MergeAliases(nil)}

	require.NoError(t, r.Move(context.Background(), "AD-62", "review"))
	assert.Equal(t, []string{"11"}, gw.movedIDs)
}

func TestMoveNoTransitions(t *testing.T) {
	gw := &fakeGateway{}
	r := &Resolver{Gateway: gw, Aliases: MergeAliases(nil)}

	err := r.Move(context.Background(), "AD-62", "done")
	assert.ErrorIs(t, err, ErrNoTransitions)
}

func TestMoveNotMatchedListsOptions(t *testing.T) {
	gw := &fakeGateway{transitions: reviewTransitions()}
	r := &Resolver{Gateway: gw, Aliases: MergeAliases(nil)}

	err := r.Move(context.Background(), "AD-62", "blocked")

	var notMatched *NotMatchedError
	require.ErrorAs(t, err, &notMatched)
	assert.Equal(t, "blocked", notMatched.Term)
	assert.Equal(t, []string{"Start Review (-> Code Review)", "Close (-> Done)"}, notMatched.Available)
	assert.Empty(t, gw.movedIDs)
}

func TestMoveRescueEndToEnd(t *testing.T) {
	// Direct move rejected, user picks a component, the single components
	// payload is applied, retry succeeds.
	gw := &fakeGateway{
		transitions: reviewTransitions(),
		components:  []jira.Component{{Name: "Backend"}, {Name: "Frontend"}},
		moveErrs:    []error{errors.New("components is required"), nil},
	}
	prompt := &fakePrompt{choice: "Backend"}
	var out bytes.Buffer
	r := &Resolver{Gateway: gw, Prompt: prompt, Aliases: MergeAliases(nil), Out: &out}

	require.NoError(t, r.Move(context.Background(), "AD-62", "review"))

	assert.Equal(t, []string{"AD"}, gw.projectKeys)
	assert.Equal(t, []string{manualEntry, "Backend", "Frontend"}, prompt.chooseOptions)
	require.Len(t, gw.editPayloads, 1)
	assert.JSONEq(t, `{"fields":{"components":[{"name":"Backend"}]}}`, gw.editPayloads[0])
	assert.Equal(t, []string{"21", "21"}, gw.movedIDs)
	assert.Contains(t, out.String(), "AD-62 moved to Code Review")
}

func TestMoveRescueManualEntry(t *testing.T) {
	gw := &fakeGateway{
		transitions: reviewTransitions(),
		moveErrs:    []error{errors.New("field is required"), nil},
	}
	prompt := &fakePrompt{choice: manualEntry, input: "Platform"}
	r := &Resolver{Gateway: gw, Prompt: prompt, Aliases: MergeAliases(nil)}

	require.NoError(t, r.Move(context.Background(), "AD-62", "review"))

	require.Len(t, gw.editPayloads, 1)
	assert.JSONEq(t, `{"fields":{"components":[{"name":"Platform"}]}}`, gw.editPayloads[0])
}

func TestMoveRescueCustomFieldTriesShapesInOrder(t *testing.T) {
	// First two shapes rejected, third accepted, then the retry succeeds.
	gw := &fakeGateway{
		transitions: reviewTransitions(),
		components:  []jira.Component{{Name: "Backend"}},
		moveErrs:    []error{errors.New("team is required"), nil},
		editErrs:    []error{errors.New("bad shape"), errors.New("bad shape"), nil},
	}
	prompt := &fakePrompt{choice: "Backend"}
	r := &Resolver{Gateway: gw, Prompt: prompt, Aliases: MergeAliases(nil), FieldID: "customfield_10010"}

	require.NoError(t, r.Move(context.Background(), "AD-62", "review"))

	require.Len(t, gw.editPayloads, 3)
	assert.JSONEq(t, `{"fields":{"customfield_10010":[{"value":"Backend"}]}}`, gw.editPayloads[2])
	assert.Equal(t, []string{"21", "21"}, gw.movedIDs)
}

func TestMoveRescueExhausted(t *testing.T) {
	gw := &fakeGateway{
		transitions: reviewTransitions(),
		components:  []jira.Component{{Name: "Backend"}},
		moveErrs:    []error{errors.New("team is required")},
		editErrs: []error{
			errors.New("no"), errors.New("no"), errors.New("no"), errors.New("no"),
		},
	}
	prompt := &fakePrompt{choice: "Backend"}
	r := &Resolver{Gateway: gw, Prompt: prompt, Aliases: MergeAliases(nil), FieldID: "customfield_10010"}

	err := r.Move(context.Background(), "AD-62", "review")

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "customfield_10010", exhausted.Field)
	// The transition was not retried after the field update failed.
	assert.Equal(t, []string{"21"}, gw.movedIDs)
}

func TestMoveRescueRetryFailureIsSurfaced(t *testing.T) {
	retryErr := errors.New("workflow validator rejected the move")
	gw := &fakeGateway{
		transitions: reviewTransitions(),
		components:  []jira.Component{{Name: "Backend"}},
		moveErrs:    []error{errors.New("components is required"), retryErr},
	}
	prompt := &fakePrompt{choice: "Backend"}
	r := &Resolver{Gateway: gw, Prompt: prompt, Aliases: MergeAliases(nil)}

	err := r.Move(context.Background(), "AD-62", "review")

	require.ErrorIs(t, err, retryErr)
	assert.Equal(t, []string{"21", "21"}, gw.movedIDs)
}

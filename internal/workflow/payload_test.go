package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldCandidatesForComponents(t *testing.T) {
	candidates := fieldCandidates(ComponentsField, "Backend")

	require.Len(t, candidates, 1)
	assert.JSONEq(t, `{"fields":{"components":[{"name":"Backend"}]}}`, string(candidates[0]))
}

func TestFieldCandidatesForCustomField(t *testing.T) {
	candidates := fieldCandidates("customfield_10010", "Backend")

	require.Len(t, candidates, 4)

	// Rich-text document first, then bare string, option list, option object.
	assert.Contains(t, string(candidates[0]), `"type":"doc"`)
	assert.Contains(t, string(candidates[0]), `"text":"Backend"`)
	assert.JSONEq(t, `{"fields":{"customfield_10010":"Backend"}}`, string(candidates[1]))
	assert.JSONEq(t, `{"fields":{"customfield_10010":[{"value":"Backend"}]}}`, string(candidates[2]))
	assert.JSONEq(t, `{"fields":{"customfield_10010":{"value":"Backend"}}}`, string(candidates[3]))
}

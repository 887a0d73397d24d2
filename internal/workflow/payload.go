package workflow

import (
	"encoding/json"

	"github.com/tidwall/sjson"

	"jig/internal/adf"
)

// ComponentsField is the built-in Jira field the rescue value is written to
// unless the user configured a custom field id.
const ComponentsField = "components"

// fieldCandidates builds the ordered edit payloads to try for a field whose
// expected shape is unknown. Custom fields accept, depending on their type,
// a rich-text document, a bare string, a single-element option list, or a
// bare option object; exactly one of these is expected to be accepted.
//
// The built-in components field has a known shape, so it gets a single
// structurally-correct payload and no trial sequence.
func fieldCandidates(fieldID, value string) []json.RawMessage {
	path := "fields." + fieldID

	if fieldID == ComponentsField {
		p, _ := sjson.Set("{}", path, []map[string]string{{"name": value}})
		return []json.RawMessage{json.RawMessage(p)}
	}

	shapes := []any{
		adf.Document(value),
		value,
		[]map[string]string{{"value": value}},
		map[string]string{"value": value},
	}
	candidates := make([]json.RawMessage, 0, len(shapes))
	for _, shape := range shapes {
		p, err := sjson.Set("{}", path, shape)
		if err != nil {
			continue
		}
		candidates = append(candidates, json.RawMessage(p))
	}
	return candidates
}

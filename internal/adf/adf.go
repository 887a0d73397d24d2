// Package adf flattens Atlassian Document Format trees into plain text.
//
// Jira Cloud returns descriptions, comments, and worklog comments as ADF: a
// tree of nodes where leaves carry a "text" field and containers carry an
// ordered "content" list. Older API versions return plain strings for the
// same fields, so extraction accepts both. The API guarantees the structure
// is a tree, so no cycle protection is needed.
package adf

// Text flattens a decoded ADF node into plain text.
//
// A nil node or an unrecognized shape yields the empty string. Children are
// concatenated with no separator: whitespace between words is already present
// as explicit text leaves in the source document.
func Text(node any) string {
	switch n := node.(type) {
	case nil:
		return ""
	case string:
		return n
	case map[string]any:
		if text, ok := n["text"].(string); ok {
			return text
		}
		if content, ok := n["content"].([]any); ok {
			var out string
			for _, child := range content {
				out += Text(child)
			}
			return out
		}
		return ""
	default:
		return ""
	}
}

// Document builds a minimal ADF document wrapping a single paragraph of text.
// This is the shape Jira expects when writing comments or rich-text fields.
func Document(text string) map[string]any {
	return map[string]any{
		"type":    "doc",
		"version": 1,
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": text},
				},
			},
		},
	}
}

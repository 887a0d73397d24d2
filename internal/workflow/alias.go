package workflow

import "strings"

// defaultAliases maps short status terms to full status-name search terms.
// User-configured aliases override these on collision.
var defaultAliases = map[string]string{
	"todo":   "To Do",
	"wip":    "In Progress",
	"review": "Code Review",
	"cr":     "Code Review",
	"qa":     "Testing",
	"done":   "Done",
}

// MergeAliases unions the built-in aliases with user entries, user entries
// winning on key collision. Keys are normalized to lowercase.
func MergeAliases(user map[string]string) map[string]string {
	merged := make(map[string]string, len(defaultAliases)+len(user))
	for k, v := range defaultAliases {
		merged[strings.ToLower(k)] = v
	}
	for k, v := range user {
		merged[strings.ToLower(k)] = v
	}
	return merged
}

// resolveTerm substitutes an aliased search term, or returns the term
// verbatim when no alias matches.
func resolveTerm(aliases map[string]string, term string) string {
	if full, ok := aliases[strings.ToLower(term)]; ok {
		return full
	}
	return term
}

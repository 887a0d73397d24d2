// Package branch resolves the issue key a command should act on, either from
// an explicit argument or from the current git branch name.
package branch

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ErrKeyNotFound is returned when no explicit key was given and none could be
// derived from the current branch.
var ErrKeyNotFound = errors.New(
	"no issue key found: pass one explicitly (e.g. AD-62) or run inside a git branch whose name contains a key")

// Issue keys look like PROJECT-123. Matching is case-insensitive; keys are
// normalized to uppercase before use.
var (
	keyPattern      = regexp.MustCompile(`[A-Za-z]+-[0-9]+`)
	exactKeyPattern = regexp.MustCompile(`^[A-Za-z]+-[0-9]+$`)
)

// HeadSource reports the name of the currently checked out branch.
type HeadSource interface {
	CurrentBranch() (string, error)
}

// Resolver turns an optional explicit argument into an issue key. When Head
// is nil the environment is treated as "not a repository".
type Resolver struct {
	Head HeadSource
	Out  io.Writer // notice sink for inferred keys; nil silences it
}

// Resolve returns the issue key to act on.
//
// An explicit argument that looks like a key always wins, uppercased. An
// explicit argument that does not look like a key is treated as absent, so
// callers can pass optional positional arguments through. Without a usable
// argument the current branch name is scanned for the first embedded key.
func (r *Resolver) Resolve(explicit string) (string, error) {
	if exactKeyPattern.MatchString(explicit) {
		return strings.ToUpper(explicit), nil
	}

	if r.Head == nil {
		return "", ErrKeyNotFound
	}
	name, err := r.Head.CurrentBranch()
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, err)
	}

	match := keyPattern.FindString(name)
	if match == "" {
		return "", ErrKeyNotFound
	}

	key := strings.ToUpper(match)
	if r.Out != nil {
		fmt.Fprintf(r.Out, "using %s (from branch %s)\n", key, name)
	}
	return key, nil
}

// ProjectKey returns the project prefix of an issue key ("AD-62" -> "AD").
func ProjectKey(key string) string {
	if i := strings.IndexByte(key, '-'); i > 0 {
		return key[:i]
	}
	return key
}

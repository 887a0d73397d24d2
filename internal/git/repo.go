// Package git provides read-only git repository queries for jig.
package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Repo wraps an open git repository.
type Repo struct {
	repo *git.Repository
}

// Open opens the repository containing dir, walking up parent directories.
// Returns an error when dir is not inside a git repository.
func Open(dir string) (*Repo, error) {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open git repo at %s: %w", dir, err)
	}
	return &Repo{repo: r}, nil
}

// CurrentBranch returns the short name of the currently checked out branch.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("get HEAD: %w", err)
	}
	return head.Name().Short(), nil
}

// IsInsideRepo checks if the given directory is inside a git repository,
// walking up parent directories to find a .git folder.
func IsInsideRepo(dir string) bool {
	_, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	return err == nil
}

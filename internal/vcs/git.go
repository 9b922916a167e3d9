// Package vcs handles post-generation repository initialization.
package vcs

import (
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"
)

// committerName is used when the package author is empty.
const committerName = "rek"

// Init initializes a git repository rooted at the generated tree and creates
// an initial commit containing the scaffold. It is invoked only after
// generation has fully succeeded; callers treat a failure as a warning, not
// as a generation failure.
func Init(root, author string) error {
	repo, err := git.PlainInit(root, false)
	if err != nil {
		return errors.Wrapf(err, "couldn't initialize a repository at %s", root)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return errors.Wrap(err, "couldn't open the new repository's worktree")
	}

	if _, err := worktree.Add("."); err != nil {
		return errors.Wrap(err, "couldn't stage the generated scaffold")
	}

	name := author
	if name == "" {
		name = committerName
	}

	_, err = worktree.Commit("Initial scaffold", &git.CommitOptions{
		Author: &object.Signature{
			Name: name,
			When: time.Now(),
		},
	})
	if err != nil {
		return errors.Wrap(err, "couldn't create the initial commit")
	}

	return nil
}

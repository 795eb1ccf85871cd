package domain

import "path/filepath"

// Worktree is a single entry of the repository's worktree list
type Worktree struct {
	Bare      bool
	Branch    string // Short branch name, empty when HEAD is detached
	Head      string // Commit sha
	IsPrimary bool   // First entry of the worktree list
	Locked    bool
	Path      string
	Prunable  bool
}

// Detached reports whether the worktree has no branch checked out
func (w Worktree) Detached() bool {
	return w.Branch == "" && !w.Bare
}

// Name returns the directory name of the worktree
func (w Worktree) Name() string {
	return filepath.Base(w.Path)
}

// Branch is a local branch ref
type Branch struct {
	Head string
	Name string
}

// WorktreeState describes an operation in progress inside a worktree
type WorktreeState string

const (
	WorktreeStateBisect     WorktreeState = "bisect"
	WorktreeStateCherryPick WorktreeState = "cherry-pick"
	WorktreeStateClean      WorktreeState = ""
	WorktreeStateMerge      WorktreeState = "merge"
	WorktreeStateRebase     WorktreeState = "rebase"
	WorktreeStateRevert     WorktreeState = "revert"
)

// FindPrimary returns the primary worktree of a list, if any
func FindPrimary(worktrees []Worktree) (Worktree, bool) {
	for _, wt := range worktrees {
		if wt.IsPrimary {
			return wt, true
		}
	}
	return Worktree{}, false
}

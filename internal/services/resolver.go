package services

import (
	"context"
	"path/filepath"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// CurrentTarget selects the worktree containing the working directory
const CurrentTarget = "@"

// resolveTarget maps user input to exactly one worktree or branch. Matches
// are tried in order: branch name, path, directory name, then a local
// branch with no worktree. Zero or several matches in the deciding tier
// are an error.
func resolveTarget(
	ctx context.Context,
	git ports.RefInspector,
	repoDir string,
	worktrees []domain.Worktree,
	currentRoot string,
	input string,
) (domain.RemovalTarget, error) {
	target := domain.RemovalTarget{Input: input}

	if input == "" || input == CurrentTarget {
		for _, wt := range worktrees {
			if currentRoot != "" && samePath(wt.Path, currentRoot) {
				return withWorktree(target, wt), nil
			}
		}
		return target, &domain.TargetError{Target: CurrentTarget, Err: domain.ErrTargetNotFound}
	}

	tiers := []func(domain.Worktree) bool{
		func(wt domain.Worktree) bool { return wt.Branch == input },
		func(wt domain.Worktree) bool { return samePath(wt.Path, absPath(input)) },
		func(wt domain.Worktree) bool { return wt.Name() == input },
	}
	for _, match := range tiers {
		var found []domain.Worktree
		for _, wt := range worktrees {
			if !wt.Bare && match(wt) {
				found = append(found, wt)
			}
		}
		switch len(found) {
		case 0:
			continue
		case 1:
			return withWorktree(target, found[0]), nil
		default:
			candidates := make([]string, len(found))
			for i, wt := range found {
				candidates[i] = wt.Path
			}
			return target, &domain.TargetError{Candidates: candidates, Err: domain.ErrAmbiguousTarget, Target: input}
		}
	}

	exists, err := git.BranchExists(ctx, repoDir, input)
	if err != nil {
		return target, err
	}
	if exists {
		head, err := git.ResolveCommit(ctx, repoDir, input)
		if err != nil {
			return target, err
		}
		target.Branch = input
		target.Head = head
		logging.Logger.Debug("Target resolved to branch", "input", input, "head", head)
		return target, nil
	}

	return target, &domain.TargetError{Target: input, Err: domain.ErrTargetNotFound}
}

func withWorktree(target domain.RemovalTarget, wt domain.Worktree) domain.RemovalTarget {
	target.Branch = wt.Branch
	target.Head = wt.Head
	target.Worktree = &wt
	logging.Logger.Debug("Target resolved to worktree", "input", target.Input, "path", wt.Path, "branch", wt.Branch)
	return target
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

// samePath compares paths after resolving symlinks where possible
func samePath(a, b string) bool {
	return canonicalPath(a) == canonicalPath(b)
}

func canonicalPath(p string) string {
	p = filepath.Clean(p)
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return p
}

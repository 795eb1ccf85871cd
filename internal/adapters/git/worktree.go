package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// parseWorktreeList parses git worktree list --porcelain output.
// The first entry is the primary worktree.
func parseWorktreeList(output string) []domain.Worktree {
	var worktrees []domain.Worktree
	var current *domain.Worktree

	flush := func() {
		if current != nil && current.Path != "" {
			worktrees = append(worktrees, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current = &domain.Worktree{Path: strings.TrimPrefix(line, "worktree ")}
		case current == nil:
			continue
		case strings.HasPrefix(line, "HEAD "):
			current.Head = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			current.Branch = strings.TrimPrefix(strings.TrimPrefix(line, "branch "), "refs/heads/")
		case line == "bare":
			current.Bare = true
		case line == "locked" || strings.HasPrefix(line, "locked "):
			current.Locked = true
		case line == "prunable" || strings.HasPrefix(line, "prunable "):
			current.Prunable = true
		}
	}
	flush()

	if len(worktrees) > 0 {
		worktrees[0].IsPrimary = true
	}
	return worktrees
}

// listWorktrees lists all worktrees of the repository containing dir
func listWorktrees(ctx context.Context, runner ports.GitRunner, dir string) ([]domain.Worktree, error) {
	logging.Logger.Debug("Listing worktrees", "dir", dir)

	output, err := runner.Run(ctx, dir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}

	worktrees := parseWorktreeList(output)
	logging.Logger.Debug("Found worktrees", "count", len(worktrees))
	return worktrees, nil
}

// hasUncommittedChanges reports modified, staged or untracked files in dir
func hasUncommittedChanges(ctx context.Context, runner ports.GitRunner, dir string) (bool, error) {
	output, err := runner.Run(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to get status: %w", err)
	}
	return output != "", nil
}

// worktreeState detects a merge, rebase, cherry-pick, revert or bisect in
// progress by looking at the worktree's private git directory
func worktreeState(ctx context.Context, runner ports.GitRunner, dir string) (domain.WorktreeState, error) {
	gitDir, err := runner.Run(ctx, dir, "rev-parse", "--git-dir")
	if err != nil {
		return domain.WorktreeStateClean, fmt.Errorf("failed to resolve git dir: %w", err)
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(dir, gitDir)
	}

	markers := []struct {
		name  string
		state domain.WorktreeState
	}{
		{"rebase-merge", domain.WorktreeStateRebase},
		{"rebase-apply", domain.WorktreeStateRebase},
		{"MERGE_HEAD", domain.WorktreeStateMerge},
		{"CHERRY_PICK_HEAD", domain.WorktreeStateCherryPick},
		{"REVERT_HEAD", domain.WorktreeStateRevert},
		{"BISECT_LOG", domain.WorktreeStateBisect},
	}
	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(gitDir, m.name)); err == nil {
			return m.state, nil
		}
	}
	return domain.WorktreeStateClean, nil
}

// removeWorktree removes a worktree. repoPath is where git runs from and
// must not be the worktree being removed.
func removeWorktree(ctx context.Context, runner ports.GitRunner, repoPath, worktreePath string, force bool) error {
	logging.Logger.Info("Removing worktree", "repo_path", repoPath, "worktree_path", worktreePath, "force", force)

	if _, err := os.Stat(worktreePath); os.IsNotExist(err) {
		// Directory already gone; drop the stale administrative entry
		logging.Logger.Warn("Worktree path does not exist, pruning", "path", worktreePath)
		if _, err := runner.Run(ctx, repoPath, "worktree", "prune"); err != nil {
			return fmt.Errorf("failed to prune worktrees: %w", err)
		}
		return nil
	}

	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, worktreePath)

	if _, err := runner.Run(ctx, repoPath, args...); err != nil {
		logging.Logger.Error("Git worktree remove failed", "error", err, "path", worktreePath)
		return fmt.Errorf("failed to remove worktree: %w", err)
	}

	logging.Logger.Info("Git worktree removed successfully", "path", worktreePath)
	return nil
}

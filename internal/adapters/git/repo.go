package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// topLevel returns the root of the worktree containing dir
func topLevel(ctx context.Context, runner ports.GitRunner, dir string) (string, error) {
	root, err := runner.Run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		if domain.HasExitCode(err, 128) {
			return "", fmt.Errorf("%w: %s", domain.ErrNotARepository, dir)
		}
		return "", err
	}
	return root, nil
}

// branchExists checks for a local branch
func branchExists(ctx context.Context, runner ports.GitRunner, dir, branch string) (bool, error) {
	_, err := runner.Run(ctx, dir, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	if err == nil {
		return true, nil
	}
	if domain.HasExitCode(err, 1) {
		return false, nil
	}
	return false, err
}

// defaultBranch returns the branch that origin/HEAD points to, falling back
// to a local main or master. Returns an empty string when none is found.
func defaultBranch(ctx context.Context, runner ports.GitRunner, dir string) (string, error) {
	logging.Logger.Debug("Detecting default branch", "dir", dir)

	if ref, err := runner.Run(ctx, dir, "symbolic-ref", "--short", "refs/remotes/origin/HEAD"); err == nil {
		name := ref
		if idx := strings.Index(ref, "/"); idx >= 0 {
			name = ref[idx+1:]
		}
		exists, err := branchExists(ctx, runner, dir, name)
		if err != nil {
			return "", err
		}
		if exists {
			logging.Logger.Debug("Default branch from origin/HEAD", "branch", name)
			return name, nil
		}
	}

	candidates := []string{"main", "master"}
	if configured, err := runner.Run(ctx, dir, "config", "--get", "init.defaultBranch"); err == nil && configured != "" {
		candidates = append([]string{configured}, candidates...)
	}
	for _, name := range candidates {
		exists, err := branchExists(ctx, runner, dir, name)
		if err != nil {
			return "", err
		}
		if exists {
			logging.Logger.Debug("Default branch from local candidates", "branch", name)
			return name, nil
		}
	}

	return "", nil
}

// listBranches lists local branches with their head commit
func listBranches(ctx context.Context, runner ports.GitRunner, dir string) ([]domain.Branch, error) {
	output, err := runner.Run(ctx, dir, "for-each-ref", "--format=%(objectname) %(refname:short)", "refs/heads")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return parseBranchList(output), nil
}

func parseBranchList(output string) []domain.Branch {
	var branches []domain.Branch
	for _, line := range strings.Split(output, "\n") {
		head, name, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok || name == "" {
			continue
		}
		branches = append(branches, domain.Branch{Head: head, Name: name})
	}
	return branches
}

// resolveCommit resolves ref to a commit sha
func resolveCommit(ctx context.Context, runner ports.GitRunner, dir, ref string) (string, error) {
	return runner.Run(ctx, dir, "rev-parse", "--verify", ref+"^{commit}")
}

// resolveTree resolves ref to the sha of its root tree
func resolveTree(ctx context.Context, runner ports.GitRunner, dir, ref string) (string, error) {
	return runner.Run(ctx, dir, "rev-parse", "--verify", ref+"^{tree}")
}

// upstream returns the upstream ref of branch (e.g. "origin/main") or an
// empty string when none is configured
func upstream(ctx context.Context, runner ports.GitRunner, dir, branch string) (string, error) {
	ref, err := runner.Run(ctx, dir, "rev-parse", "--abbrev-ref", "--symbolic-full-name", branch+"@{upstream}")
	if err != nil {
		if domain.HasExitCode(err, 128) {
			return "", nil
		}
		return "", err
	}
	return ref, nil
}

// isAncestor reports whether ancestor is reachable from descendant.
// Exit status 1 means "no"; anything else non-zero is an error.
func isAncestor(ctx context.Context, runner ports.GitRunner, dir, ancestor, descendant string) (bool, error) {
	_, err := runner.Run(ctx, dir, "merge-base", "--is-ancestor", ancestor, descendant)
	if err == nil {
		return true, nil
	}
	if domain.HasExitCode(err, 1) {
		return false, nil
	}
	return false, err
}

// deleteBranch deletes a local branch. Without force git refuses branches
// not merged into HEAD or their upstream; callers that decided
// integration by other means pass force.
func deleteBranch(ctx context.Context, runner ports.GitRunner, dir, branch string, force bool) error {
	logging.Logger.Info("Deleting branch", "dir", dir, "branch", branch, "force", force)

	if err := validateRefArg(branch); err != nil {
		return fmt.Errorf("refusing to delete branch %q: %w", branch, err)
	}
	flag := "-d"
	if force {
		flag = "-D"
	}
	if _, err := runner.Run(ctx, dir, "branch", flag, "--", branch); err != nil {
		logging.Logger.Error("Git branch delete failed", "error", err, "branch", branch)
		return fmt.Errorf("failed to delete branch: %w", err)
	}

	logging.Logger.Info("Branch deleted", "branch", branch)
	return nil
}

package git

import (
	"context"
	"sync"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/ports"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct {
	runner ports.GitRunner

	mergeTreeOnce sync.Once
	mergeTree     bool
}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository(runner ports.GitRunner) *CLIRepository {
	return &CLIRepository{runner: runner}
}

// RefInspector methods

// BranchExists implements RefInspector.BranchExists
func (r *CLIRepository) BranchExists(ctx context.Context, dir, branch string) (bool, error) {
	return branchExists(ctx, r.runner, dir, branch)
}

// DefaultBranch implements RefInspector.DefaultBranch
func (r *CLIRepository) DefaultBranch(ctx context.Context, dir string) (string, error) {
	return defaultBranch(ctx, r.runner, dir)
}

// IsAncestor implements RefInspector.IsAncestor
func (r *CLIRepository) IsAncestor(ctx context.Context, dir, ancestor, descendant string) (bool, error) {
	return isAncestor(ctx, r.runner, dir, ancestor, descendant)
}

// ListBranches implements RefInspector.ListBranches
func (r *CLIRepository) ListBranches(ctx context.Context, dir string) ([]domain.Branch, error) {
	return listBranches(ctx, r.runner, dir)
}

// ResolveCommit implements RefInspector.ResolveCommit
func (r *CLIRepository) ResolveCommit(ctx context.Context, dir, ref string) (string, error) {
	return resolveCommit(ctx, r.runner, dir, ref)
}

// ResolveTree implements RefInspector.ResolveTree
func (r *CLIRepository) ResolveTree(ctx context.Context, dir, ref string) (string, error) {
	return resolveTree(ctx, r.runner, dir, ref)
}

// TopLevel implements RefInspector.TopLevel
func (r *CLIRepository) TopLevel(ctx context.Context, dir string) (string, error) {
	return topLevel(ctx, r.runner, dir)
}

// Upstream implements RefInspector.Upstream
func (r *CLIRepository) Upstream(ctx context.Context, dir, branch string) (string, error) {
	return upstream(ctx, r.runner, dir, branch)
}

// StatsProvider methods

// AheadBehind implements StatsProvider.AheadBehind
func (r *CLIRepository) AheadBehind(ctx context.Context, dir, base, head string) (domain.AheadBehind, error) {
	return aheadBehind(ctx, r.runner, dir, base, head)
}

// CommitDetails implements StatsProvider.CommitDetails
func (r *CLIRepository) CommitDetails(ctx context.Context, dir, ref string) (domain.CommitDetails, error) {
	return commitDetails(ctx, r.runner, dir, ref)
}

// DiffTotals implements StatsProvider.DiffTotals
func (r *CLIRepository) DiffTotals(ctx context.Context, dir, base, head string) (domain.DiffTotals, error) {
	return diffTotals(ctx, r.runner, dir, base, head)
}

// WorkingTreeDiff implements StatsProvider.WorkingTreeDiff
func (r *CLIRepository) WorkingTreeDiff(ctx context.Context, dir string) (domain.DiffTotals, error) {
	return workingTreeDiff(ctx, r.runner, dir)
}

// MergeSimulator methods

// MergeTree implements MergeSimulator.MergeTree
func (r *CLIRepository) MergeTree(ctx context.Context, dir, target, branch string) (string, bool, error) {
	return mergeTree(ctx, r.runner, dir, target, branch)
}

// SupportsMergeTree implements MergeSimulator.SupportsMergeTree.
// The git version is probed once per repository instance.
func (r *CLIRepository) SupportsMergeTree(ctx context.Context) bool {
	r.mergeTreeOnce.Do(func() {
		r.mergeTree = supportsMergeTree(ctx, r.runner)
	})
	return r.mergeTree
}

// WorktreeInspector methods

// HasUncommittedChanges implements WorktreeInspector.HasUncommittedChanges
func (r *CLIRepository) HasUncommittedChanges(ctx context.Context, dir string) (bool, error) {
	return hasUncommittedChanges(ctx, r.runner, dir)
}

// ListWorktrees implements WorktreeInspector.ListWorktrees
func (r *CLIRepository) ListWorktrees(ctx context.Context, dir string) ([]domain.Worktree, error) {
	return listWorktrees(ctx, r.runner, dir)
}

// WorktreeState implements WorktreeInspector.WorktreeState
func (r *CLIRepository) WorktreeState(ctx context.Context, dir string) (domain.WorktreeState, error) {
	return worktreeState(ctx, r.runner, dir)
}

// WorktreeMutator methods

// DeleteBranch implements WorktreeMutator.DeleteBranch
func (r *CLIRepository) DeleteBranch(ctx context.Context, dir, branch string, force bool) error {
	return deleteBranch(ctx, r.runner, dir, branch, force)
}

// RemoveWorktree implements WorktreeMutator.RemoveWorktree
func (r *CLIRepository) RemoveWorktree(ctx context.Context, repoPath, worktreePath string, force bool) error {
	return removeWorktree(ctx, r.runner, repoPath, worktreePath, force)
}

package ports

import (
	"context"

	"github.com/renato0307/galho/internal/domain"
)

// GitRunner executes a git query in a directory and returns its trimmed
// stdout. Failures are *domain.QueryError carrying stderr and exit code.
type GitRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// RefInspector resolves refs, commits and trees
type RefInspector interface {
	BranchExists(ctx context.Context, dir, branch string) (bool, error)
	DefaultBranch(ctx context.Context, dir string) (string, error)
	IsAncestor(ctx context.Context, dir, ancestor, descendant string) (bool, error)
	ListBranches(ctx context.Context, dir string) ([]domain.Branch, error)
	ResolveCommit(ctx context.Context, dir, ref string) (string, error)
	ResolveTree(ctx context.Context, dir, ref string) (string, error)
	TopLevel(ctx context.Context, dir string) (string, error)
	Upstream(ctx context.Context, dir, branch string) (string, error)
}

// StatsProvider computes commit and line statistics
type StatsProvider interface {
	AheadBehind(ctx context.Context, dir, base, head string) (domain.AheadBehind, error)
	CommitDetails(ctx context.Context, dir, ref string) (domain.CommitDetails, error)
	DiffTotals(ctx context.Context, dir, base, head string) (domain.DiffTotals, error)
	WorkingTreeDiff(ctx context.Context, dir string) (domain.DiffTotals, error)
}

// MergeSimulator performs in-memory merges without touching any worktree
type MergeSimulator interface {
	// MergeTree merges branch into target and returns the resulting tree.
	// clean is false when the merge has conflicts.
	MergeTree(ctx context.Context, dir, target, branch string) (tree string, clean bool, err error)
	SupportsMergeTree(ctx context.Context) bool
}

// WorktreeInspector reads worktree state
type WorktreeInspector interface {
	HasUncommittedChanges(ctx context.Context, dir string) (bool, error)
	ListWorktrees(ctx context.Context, dir string) ([]domain.Worktree, error)
	WorktreeState(ctx context.Context, dir string) (domain.WorktreeState, error)
}

// WorktreeMutator performs the only two repository mutations
type WorktreeMutator interface {
	DeleteBranch(ctx context.Context, dir, branch string, force bool) error
	RemoveWorktree(ctx context.Context, repoPath, worktreePath string, force bool) error
}

// GitRepository is the composite interface
type GitRepository interface {
	MergeSimulator
	RefInspector
	StatsProvider
	WorktreeInspector
	WorktreeMutator
}

package ports

import "context"

// RemovalJob describes the mutations handed to a background process
type RemovalJob struct {
	Branch        string // Empty when the branch is kept
	ForceWorktree bool
	RepoPath      string
	WorktreePath  string
}

// BackgroundRemover runs removal jobs detached from the current process
type BackgroundRemover interface {
	Schedule(ctx context.Context, job RemovalJob) error
}

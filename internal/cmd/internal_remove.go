package cmd

import (
	"context"
	"time"

	"github.com/google/uuid"

	adapterprocess "github.com/renato0307/galho/internal/adapters/process"
	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// InternalRemoveCmd executes a removal job handed over by `galho remove`.
// It runs detached from any terminal; results go to the log and journal.
type InternalRemoveCmd struct {
	Branch string `help:"Branch to delete after the worktree is removed"`
	Force  bool   `help:"Remove the worktree even with local changes"`
	Path   string `help:"Worktree to remove" required:""`
	Repo   string `help:"Primary worktree of the repository" required:""`
}

// Run executes the internal-remove command
func (i *InternalRemoveCmd) Run(cli *CLI) error {
	logging.Logger.Info("Background removal started",
		"repo", i.Repo, "path", i.Path, "branch", i.Branch)

	lock, err := adapterprocess.AcquireRepoLock(cli.Container.LockDir(), i.Repo)
	if err != nil {
		logging.Logger.Error("Failed to lock repository", "repo", i.Repo, "error", err)
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logging.Logger.Warn("Failed to release repository lock", "error", err)
		}
	}()

	ctx := context.Background()
	job := ports.RemovalJob{
		Branch:        i.Branch,
		ForceWorktree: i.Force,
		RepoPath:      i.Repo,
		WorktreePath:  i.Path,
	}
	if err := cli.Container.RemovalService.ExecuteJob(ctx, job); err != nil {
		logging.Logger.Error("Background removal failed", "error", err)
		i.recordFailure(ctx, cli.Container.Journal())
		return err
	}

	logging.Logger.Info("Background removal finished", "path", i.Path, "branch", i.Branch)
	return nil
}

// recordFailure adds a failed entry next to the scheduled one written by
// the foreground process
func (i *InternalRemoveCmd) recordFailure(ctx context.Context, journal ports.RemovalJournal) {
	if journal == nil {
		return
	}
	entry := domain.JournalEntry{
		Branch:       i.Branch,
		ID:           uuid.New().String(),
		RecordedAt:   time.Now().UTC(),
		RepoPath:     i.Repo,
		Status:       domain.StepFailed,
		WorktreePath: i.Path,
	}
	if err := journal.Record(ctx, entry); err != nil {
		logging.Logger.Warn("Failed to record background failure", "error", err)
	}
}

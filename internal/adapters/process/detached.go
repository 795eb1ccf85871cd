package process

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// InternalCommand is the hidden subcommand that executes a RemovalJob
const InternalCommand = "internal-remove"

// DetachedRemover implements ports.BackgroundRemover by re-executing the
// galho binary as a detached child process
type DetachedRemover struct {
	executable string
}

// Compile-time interface verification
var _ ports.BackgroundRemover = (*DetachedRemover)(nil)

// NewDetachedRemover creates a remover that runs executable; empty means
// the currently running binary
func NewDetachedRemover(executable string) *DetachedRemover {
	return &DetachedRemover{executable: executable}
}

// JobArgs encodes a job as command line arguments for InternalCommand
func JobArgs(job ports.RemovalJob) []string {
	args := []string{InternalCommand, "--repo", job.RepoPath, "--path", job.WorktreePath}
	if job.Branch != "" {
		args = append(args, "--branch", job.Branch)
	}
	if job.ForceWorktree {
		args = append(args, "--force")
	}
	return args
}

// Schedule starts the child and returns once it is running. The child is
// not waited for; its outcome is only visible in the log and journal.
func (r *DetachedRemover) Schedule(ctx context.Context, job ports.RemovalJob) error {
	executable := r.executable
	if executable == "" {
		var err error
		executable, err = os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate executable: %w", err)
		}
	}

	// Not CommandContext: the child must outlive this process
	cmd := exec.Command(executable, JobArgs(job)...)
	cmd.Dir = job.RepoPath
	cmd.Env = os.Environ()
	detach(cmd)

	if err := cmd.Start(); err != nil {
		logging.Logger.Error("Failed to start background removal", "error", err, "executable", executable)
		return fmt.Errorf("failed to start background removal: %w", err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		logging.Logger.Warn("Failed to release background process", "pid", pid, "error", err)
	}

	logging.Logger.Info("Background removal scheduled",
		"pid", pid,
		"repo", job.RepoPath,
		"path", job.WorktreePath,
		"branch", job.Branch)
	return nil
}

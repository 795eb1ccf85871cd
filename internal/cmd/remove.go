package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/render"
	"github.com/renato0307/galho/internal/services"
)

// RemoveCmd removes worktrees and deletes their branches when integrated
type RemoveCmd struct {
	Base           string   `help:"Branch to check integration against (default: the primary worktree's branch)"`
	Force          bool     `help:"Remove worktrees with uncommitted or untracked changes" short:"f"`
	ForceDelete    bool     `help:"Delete branches even when they are not integrated" short:"D"`
	Foreground     bool     `help:"Wait for removals instead of finishing them in the background"`
	Format         string   `help:"Output format: table, json or yaml (default from config)" short:"o"`
	NoDeleteBranch bool     `help:"Keep branches, only remove worktrees" short:"k"`
	Targets        []string `arg:"" optional:"" help:"Branch names, worktree paths or @ (default: the current worktree)"`
}

// Run executes the remove command
func (r *RemoveCmd) Run(cli *CLI) error {
	dir, err := workingDir()
	if err != nil {
		return err
	}

	renderer, err := render.New(os.Stdout, cli.outputFormat(r.Format))
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing remove command",
		"dir", dir,
		"targets", r.Targets,
		"force", r.Force,
		"force_delete", r.ForceDelete,
		"keep_branch", r.NoDeleteBranch,
		"foreground", r.Foreground)

	report, err := cli.Container.RemovalService.Remove(context.Background(), services.RemoveOptions{
		Base:        r.Base,
		Dir:         dir,
		Force:       r.Force,
		ForceDelete: r.ForceDelete,
		Foreground:  r.Foreground,
		KeepBranch:  r.NoDeleteBranch,
		Targets:     r.Targets,
	})
	if err != nil {
		logging.Logger.Error("Removal failed", "error", err)
		return fmt.Errorf("failed to remove: %w", err)
	}

	if err := renderer.Removal(report); err != nil {
		return err
	}

	code := report.ExitCode()
	logging.Logger.Info("Remove command finished", "exit_code", code, "targets", len(report.Results))
	if code != domain.ExitSuccess {
		return &domain.ExitError{Code: code, Err: ErrReported}
	}
	return nil
}

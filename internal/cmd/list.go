package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/galho/internal/config"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/render"
	"github.com/renato0307/galho/internal/services"
)

// ListCmd lists worktrees with their commit, diff and upstream state
type ListCmd struct {
	Branches bool   `help:"Also list local branches without a worktree" short:"b"`
	Format   string `help:"Output format: table, json or yaml (default from config)" short:"o"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	dir, err := workingDir()
	if err != nil {
		return err
	}

	renderer, err := render.New(os.Stdout, cli.outputFormat(l.Format))
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing list command", "dir", dir, "branches", l.Branches, "format", renderer.Format())

	stop := render.StartSpinner("Inspecting worktrees...")
	result, err := cli.Container.ListingService.List(context.Background(), services.ListOptions{
		Dir:             dir,
		IncludeBranches: l.Branches,
	})
	stop()
	if err != nil {
		logging.Logger.Error("Failed to list worktrees", "error", err)
		return fmt.Errorf("failed to list worktrees: %w", err)
	}

	// Structured output carries warnings in the document
	if renderer.Format() == config.FormatTable {
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}

	return renderer.List(result)
}

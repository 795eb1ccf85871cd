package cmd

import (
	"context"
	"os"

	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/render"
	"github.com/renato0307/galho/internal/services"
)

// HistoryCmd lists past removals of the current repository
type HistoryCmd struct {
	Format string `help:"Output format: table, json or yaml (default from config)" short:"o"`
	Limit  int    `help:"Maximum number of entries to show" short:"n" default:"20"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	if cli.Container.HistoryService == nil {
		return errJournalDisabled
	}

	dir, err := workingDir()
	if err != nil {
		return err
	}

	renderer, err := render.New(os.Stdout, cli.outputFormat(h.Format))
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing history command", "dir", dir, "limit", h.Limit)

	limit := h.Limit
	if limit <= 0 {
		limit = services.DefaultHistoryLimit
	}
	entries, err := cli.Container.HistoryService.List(context.Background(), dir, limit)
	if err != nil {
		return err
	}
	return renderer.History(entries)
}

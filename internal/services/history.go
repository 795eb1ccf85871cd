package services

import (
	"context"
	"fmt"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// DefaultHistoryLimit is the number of journal entries shown by default
const DefaultHistoryLimit = 20

// HistoryService reads past removals of a repository from the journal
type HistoryService struct {
	git     ports.WorktreeInspector
	journal ports.RemovalJournal
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(git ports.WorktreeInspector, journal ports.RemovalJournal) *HistoryService {
	return &HistoryService{
		git:     git,
		journal: journal,
	}
}

// List returns the most recent removals recorded for the repository
// containing dir, newest first
func (s *HistoryService) List(ctx context.Context, dir string, limit int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	worktrees, err := s.git.ListWorktrees(ctx, dir)
	if err != nil {
		return nil, err
	}
	repoPath := dir
	if primary, ok := domain.FindPrimary(worktrees); ok {
		repoPath = primary.Path
	}

	entries, err := s.journal.List(ctx, repoPath, limit)
	if err != nil {
		logging.Logger.Error("Failed to read removal journal", "repo", repoPath, "error", err)
		return nil, fmt.Errorf("failed to read removal journal: %w", err)
	}

	logging.Logger.Debug("Journal entries loaded", "repo", repoPath, "count", len(entries))
	return entries, nil
}

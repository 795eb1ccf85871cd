package ports

import (
	"context"

	"github.com/renato0307/galho/internal/domain"
)

// RemovalJournal persists a record of every removal
type RemovalJournal interface {
	Close() error
	List(ctx context.Context, repoPath string, limit int) ([]domain.JournalEntry, error)
	Record(ctx context.Context, entry domain.JournalEntry) error
}

package storage

import (
	"github.com/renato0307/galho/internal/domain"
)

// removalModelToDomain converts a RemovalModel (GORM) to domain.JournalEntry
func removalModelToDomain(m RemovalModel) domain.JournalEntry {
	return domain.JournalEntry{
		Branch:       m.Branch,
		Head:         m.Head,
		ID:           m.ID,
		Integration:  domain.IntegrationStatus(m.Integration),
		RecordedAt:   m.RecordedAt.UTC(),
		RepoPath:     m.RepoPath,
		Status:       domain.StepStatus(m.Status),
		WorktreePath: m.WorktreePath,
	}
}

// domainToRemovalModel converts a domain.JournalEntry to RemovalModel (GORM)
func domainToRemovalModel(e domain.JournalEntry) RemovalModel {
	return RemovalModel{
		Branch:       e.Branch,
		Head:         e.Head,
		ID:           e.ID,
		Integration:  string(e.Integration),
		RecordedAt:   e.RecordedAt.UTC(),
		RepoPath:     e.RepoPath,
		Status:       string(e.Status),
		WorktreePath: e.WorktreePath,
	}
}

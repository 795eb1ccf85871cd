package storage

import "time"

// RemovalModel is the GORM model for the removals table
type RemovalModel struct {
	Branch       string    `gorm:"not null;default:''"`
	CreatedAt    time.Time
	Head         string    `gorm:"not null;default:''"`
	ID           string    `gorm:"primaryKey"`
	Integration  string    `gorm:"not null;default:''"`
	RecordedAt   time.Time `gorm:"not null;index:idx_repo_recorded,priority:2"`
	RepoPath     string    `gorm:"not null;index:idx_repo_recorded,priority:1"`
	Status       string    `gorm:"not null;check:status IN ('done','failed','scheduled','skipped')"`
	WorktreePath string    `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (RemovalModel) TableName() string { return "removals" }

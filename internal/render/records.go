package render

import (
	"fmt"
	"time"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/services"
)

// ItemRecord is the serialized form of a worktree or branch. Table, JSON
// and YAML output are all built from it.
type ItemRecord struct {
	Ahead           int                `json:"ahead" yaml:"ahead"`
	Behind          int                `json:"behind" yaml:"behind"`
	Branch          string             `json:"branch" yaml:"branch"`
	BranchDiff      domain.DiffTotals  `json:"branch_diff" yaml:"branch_diff"`
	CommitMessage   string             `json:"commit_message" yaml:"commit_message"`
	Detached        bool               `json:"detached" yaml:"detached"`
	Head            string             `json:"head" yaml:"head"`
	IsCurrent       bool               `json:"is_current" yaml:"is_current"`
	IsPrimary       bool               `json:"is_primary" yaml:"is_primary"`
	Locked          bool               `json:"locked,omitempty" yaml:"locked,omitempty"`
	Path            string             `json:"path,omitempty" yaml:"path,omitempty"`
	Prunable        bool               `json:"prunable,omitempty" yaml:"prunable,omitempty"`
	Timestamp       int64              `json:"timestamp" yaml:"timestamp"`
	Type            domain.ItemKind    `json:"type" yaml:"type"`
	UpstreamAhead   int                `json:"upstream_ahead" yaml:"upstream_ahead"`
	UpstreamBehind  int                `json:"upstream_behind" yaml:"upstream_behind"`
	UpstreamRemote  string             `json:"upstream_remote" yaml:"upstream_remote"`
	Warning         string             `json:"warning,omitempty" yaml:"warning,omitempty"`
	WorkingTreeDiff *domain.DiffTotals `json:"working_tree_diff,omitempty" yaml:"working_tree_diff,omitempty"`
	WorktreeState   string             `json:"worktree_state,omitempty" yaml:"worktree_state,omitempty"`
}

// NewItemRecord flattens a list item
func NewItemRecord(item domain.ListItem) ItemRecord {
	rec := ItemRecord{
		Ahead:          item.Counts().Ahead,
		Behind:         item.Counts().Behind,
		Branch:         item.BranchName(),
		CommitMessage:  item.Commit().Message,
		Timestamp:      item.Commit().Timestamp,
		Type:           item.Kind(),
		UpstreamAhead:  item.Upstream().Ahead,
		UpstreamBehind: item.Upstream().Behind,
		UpstreamRemote: item.Upstream().Remote,
	}

	switch it := item.(type) {
	case *domain.WorktreeInfo:
		diff := it.WorkingTreeDiff
		rec.BranchDiff = it.BranchDiff
		rec.Detached = it.Worktree.Detached()
		rec.Head = it.Worktree.Head
		rec.IsCurrent = it.IsCurrent
		rec.IsPrimary = it.Worktree.IsPrimary
		rec.Locked = it.Worktree.Locked
		rec.Path = it.Worktree.Path
		rec.Prunable = it.Worktree.Prunable
		rec.WorkingTreeDiff = &diff
		rec.WorktreeState = string(it.State)
	case *domain.BranchInfo:
		rec.BranchDiff = it.BranchDiff
		rec.Head = it.Branch.Head
		rec.Warning = it.Warning
	}
	return rec
}

// SummaryRecord is the serialized form of services.ListSummary
type SummaryRecord struct {
	Ahead     int `json:"ahead" yaml:"ahead"`
	Behind    int `json:"behind" yaml:"behind"`
	Branches  int `json:"branches" yaml:"branches"`
	Dirty     int `json:"dirty" yaml:"dirty"`
	Worktrees int `json:"worktrees" yaml:"worktrees"`
}

// ListDocument is the top-level JSON/YAML document of `galho list`
type ListDocument struct {
	Base     string        `json:"base" yaml:"base"`
	Items    []ItemRecord  `json:"items" yaml:"items"`
	Summary  SummaryRecord `json:"summary" yaml:"summary"`
	Warnings []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewListDocument converts a listing for serialization
func NewListDocument(result *services.ListResult) ListDocument {
	items := make([]ItemRecord, len(result.Items))
	for i, item := range result.Items {
		items[i] = NewItemRecord(item)
	}
	s := result.Summary()
	return ListDocument{
		Base:     result.Base,
		Items:    items,
		Summary:  SummaryRecord(s),
		Warnings: result.Warnings,
	}
}

// StepRecord is the serialized form of a mutation step
type StepRecord struct {
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Status string `json:"status" yaml:"status"`
}

// RemovalRecord is the serialized form of one target's removal result
type RemovalRecord struct {
	Branch            string      `json:"branch,omitempty" yaml:"branch,omitempty"`
	BranchStep        *StepRecord `json:"branch_step,omitempty" yaml:"branch_step,omitempty"`
	Decision          string      `json:"decision,omitempty" yaml:"decision,omitempty"`
	Error             string      `json:"error,omitempty" yaml:"error,omitempty"`
	ExitCode          int         `json:"exit_code" yaml:"exit_code"`
	Head              string      `json:"head,omitempty" yaml:"head,omitempty"`
	Integration       string      `json:"integration,omitempty" yaml:"integration,omitempty"`
	IntegrationDetail string      `json:"integration_detail,omitempty" yaml:"integration_detail,omitempty"`
	Outcome           string      `json:"outcome" yaml:"outcome"`
	Path              string      `json:"path,omitempty" yaml:"path,omitempty"`
	Target            string      `json:"target" yaml:"target"`
	WorktreeStep      *StepRecord `json:"worktree_step,omitempty" yaml:"worktree_step,omitempty"`
}

// NewRemovalRecord flattens a removal result
func NewRemovalRecord(r domain.RemovalResult) RemovalRecord {
	rec := RemovalRecord{
		Branch:       r.Target.Branch,
		BranchStep:   stepRecord(r.BranchStep),
		Decision:     string(r.Decision),
		ExitCode:     int(r.ExitCode()),
		Head:         r.Target.Head,
		Outcome:      string(r.Outcome()),
		Target:       r.Target.Input,
		WorktreeStep: stepRecord(r.WorktreeStep),
	}
	if r.Err != nil {
		rec.Error = r.Err.Error()
	}
	if r.Integration != nil {
		rec.Integration = string(r.Integration.Status)
		rec.IntegrationDetail = r.Integration.Detail
	}
	if r.Target.Worktree != nil {
		rec.Path = r.Target.Worktree.Path
	}
	return rec
}

func stepRecord(s domain.Step) *StepRecord {
	if s.Status == "" {
		return nil
	}
	return &StepRecord{Detail: s.Detail, Status: string(s.Status)}
}

// RemovalDocument is the top-level JSON/YAML document of `galho remove`
type RemovalDocument struct {
	CurrentRemoved bool            `json:"current_removed" yaml:"current_removed"`
	ExitCode       int             `json:"exit_code" yaml:"exit_code"`
	PrimaryPath    string          `json:"primary_path,omitempty" yaml:"primary_path,omitempty"`
	Results        []RemovalRecord `json:"results" yaml:"results"`
}

// NewRemovalDocument converts a removal report for serialization
func NewRemovalDocument(report *services.RemovalReport) RemovalDocument {
	results := make([]RemovalRecord, len(report.Results))
	for i, r := range report.Results {
		results[i] = NewRemovalRecord(r)
	}
	return RemovalDocument{
		CurrentRemoved: report.CurrentRemoved,
		ExitCode:       int(report.ExitCode()),
		PrimaryPath:    report.PrimaryPath,
		Results:        results,
	}
}

// HistoryRecord is the serialized form of a journal entry
type HistoryRecord struct {
	Branch       string `json:"branch,omitempty" yaml:"branch,omitempty"`
	Head         string `json:"head,omitempty" yaml:"head,omitempty"`
	ID           string `json:"id" yaml:"id"`
	Integration  string `json:"integration,omitempty" yaml:"integration,omitempty"`
	RecordedAt   string `json:"recorded_at" yaml:"recorded_at"`
	RepoPath     string `json:"repo_path" yaml:"repo_path"`
	Restore      string `json:"restore,omitempty" yaml:"restore,omitempty"`
	Status       string `json:"status" yaml:"status"`
	WorktreePath string `json:"worktree_path,omitempty" yaml:"worktree_path,omitempty"`
}

// NewHistoryRecord converts a journal entry, including the command that
// recreates a deleted branch
func NewHistoryRecord(e domain.JournalEntry) HistoryRecord {
	rec := HistoryRecord{
		Branch:       e.Branch,
		Head:         e.Head,
		ID:           e.ID,
		Integration:  string(e.Integration),
		RecordedAt:   e.RecordedAt.UTC().Format(time.RFC3339),
		RepoPath:     e.RepoPath,
		Status:       string(e.Status),
		WorktreePath: e.WorktreePath,
	}
	if e.Branch != "" && e.Head != "" {
		rec.Restore = fmt.Sprintf("git branch %s %s", e.Branch, e.Head)
	}
	return rec
}

package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/services"
	"github.com/renato0307/galho/internal/theme"
)

const (
	maxMessageWidth = 50
	shortHeadLength = 8
)

func (r *Renderer) newTable(headers ...string) *table.Table {
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell
	border := lipgloss.NewStyle()
	if r.color {
		cell = theme.CellStyle
		header = theme.HeaderStyle
		border = theme.MutedStyle
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderRow(false).
		BorderHeader(true).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

func (r *Renderer) listTable(result *services.ListResult) error {
	if len(result.Items) == 0 {
		_, err := fmt.Fprintln(r.out, "No worktrees found")
		return err
	}

	t := r.newTable("", "BRANCH", "STATE", "CHANGES", "BASE", "DIFF", "UPSTREAM", "AGE", "PATH", "MESSAGE")
	for _, item := range result.Items {
		t.Row(r.listRow(NewItemRecord(item))...)
	}
	if _, err := fmt.Fprintln(r.out, t.String()); err != nil {
		return err
	}

	_, err := fmt.Fprintln(r.out, r.paint(theme.SummaryStyle, summaryLine(result)))
	return err
}

func (r *Renderer) listRow(rec ItemRecord) []string {
	marker := ""
	switch {
	case rec.IsCurrent:
		marker = r.paint(theme.CurrentStyle, "@")
	case rec.IsPrimary:
		marker = r.paint(theme.MutedStyle, "^")
	}

	branch := r.paint(theme.BranchStyle, rec.Branch)
	if rec.Detached {
		branch = r.paint(theme.MutedStyle, "(detached "+shortHead(rec.Head)+")")
	}

	var changes string
	if rec.WorkingTreeDiff != nil {
		changes = r.diff(*rec.WorkingTreeDiff)
	}

	return []string{
		marker,
		branch,
		r.itemState(rec),
		changes,
		r.counts(rec.Ahead, rec.Behind),
		r.diff(rec.BranchDiff),
		r.upstream(rec),
		r.age(rec.Timestamp),
		r.paint(theme.MutedStyle, rec.Path),
		runewidth.Truncate(rec.CommitMessage, maxMessageWidth, "…"),
	}
}

func (r *Renderer) itemState(rec ItemRecord) string {
	switch {
	case rec.Warning != "":
		return r.paint(theme.WarningStyle, "partial")
	case rec.WorktreeState != "":
		return r.paint(theme.StateStyle, rec.WorktreeState)
	case rec.Prunable:
		return r.paint(theme.WarningStyle, "prunable")
	case rec.Locked:
		return r.paint(theme.MutedStyle, "locked")
	case rec.Type == domain.ItemKindBranch:
		return r.paint(theme.MutedStyle, "no worktree")
	}
	return ""
}

func (r *Renderer) counts(ahead, behind int) string {
	var parts []string
	if ahead > 0 {
		parts = append(parts, r.paint(theme.AheadStyle, fmt.Sprintf("↑%d", ahead)))
	}
	if behind > 0 {
		parts = append(parts, r.paint(theme.BehindStyle, fmt.Sprintf("↓%d", behind)))
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) diff(d domain.DiffTotals) string {
	if d.IsZero() {
		return ""
	}
	return r.paint(theme.AdditionsStyle, fmt.Sprintf("+%d", d.Added)) + " " +
		r.paint(theme.DeletionsStyle, fmt.Sprintf("-%d", d.Deleted))
}

func (r *Renderer) upstream(rec ItemRecord) string {
	if rec.UpstreamRemote == "" {
		return ""
	}
	if counts := r.counts(rec.UpstreamAhead, rec.UpstreamBehind); counts != "" {
		return rec.UpstreamRemote + " " + counts
	}
	return rec.UpstreamRemote
}

func (r *Renderer) age(timestamp int64) string {
	if timestamp <= 0 {
		return ""
	}
	return r.paint(theme.MutedStyle, humanize.RelTime(time.Unix(timestamp, 0), r.now(), "ago", "from now"))
}

func summaryLine(result *services.ListResult) string {
	s := result.Summary()
	parts := []string{pluralize(s.Worktrees, "worktree")}
	if s.Branches > 0 {
		parts = append(parts, pluralize(s.Branches, "branch"))
	}
	if s.Dirty > 0 {
		parts = append(parts, fmt.Sprintf("%d dirty", s.Dirty))
	}
	if result.Base != "" {
		parts = append(parts, fmt.Sprintf("%d ahead, %d behind %s", s.Ahead, s.Behind, result.Base))
	}
	return strings.Join(parts, " · ")
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	if strings.HasSuffix(noun, "ch") {
		return fmt.Sprintf("%d %ses", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func (r *Renderer) removalTable(report *services.RemovalReport) error {
	t := r.newTable("TARGET", "WORKTREE", "BRANCH", "INTEGRATION", "OUTCOME", "DETAIL")
	for _, result := range report.Results {
		rec := NewRemovalRecord(result)
		t.Row(
			result.Target.Label(),
			r.step(rec.WorktreeStep),
			r.branchStep(rec),
			rec.Integration,
			r.outcome(result.Outcome()),
			removalDetail(rec),
		)
	}
	if _, err := fmt.Fprintln(r.out, t.String()); err != nil {
		return err
	}

	if report.CurrentRemoved && report.PrimaryPath != "" {
		hint := fmt.Sprintf("The current worktree was removed. Continue in: cd %s", report.PrimaryPath)
		if _, err := fmt.Fprintln(r.out, r.paint(theme.SummaryStyle, hint)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) step(s *StepRecord) string {
	if s == nil {
		return r.paint(theme.MutedStyle, "-")
	}
	switch domain.StepStatus(s.Status) {
	case domain.StepDone:
		return r.paint(theme.RemovedStyle, "removed")
	case domain.StepFailed:
		return r.paint(theme.FailedStyle, "failed")
	case domain.StepScheduled:
		return r.paint(theme.PendingStyle, "scheduled")
	}
	return r.paint(theme.MutedStyle, s.Status)
}

func (r *Renderer) branchStep(rec RemovalRecord) string {
	if rec.Branch == "" {
		return r.paint(theme.MutedStyle, "-")
	}
	if rec.BranchStep == nil {
		return rec.Branch
	}
	switch domain.StepStatus(rec.BranchStep.Status) {
	case domain.StepDone:
		return rec.Branch + " " + r.paint(theme.RemovedStyle, "deleted")
	case domain.StepFailed:
		return rec.Branch + " " + r.paint(theme.FailedStyle, "failed")
	case domain.StepScheduled:
		return rec.Branch + " " + r.paint(theme.PendingStyle, "scheduled")
	}
	return rec.Branch + " " + r.paint(theme.KeptStyle, "kept")
}

func (r *Renderer) outcome(o domain.Outcome) string {
	switch o {
	case domain.OutcomeBlocked:
		return r.paint(theme.BlockedStyle, string(o))
	case domain.OutcomeError, domain.OutcomePartialFailure:
		return r.paint(theme.FailedStyle, string(o))
	case domain.OutcomeRemovedKept:
		return r.paint(theme.KeptStyle, string(o))
	}
	return r.paint(theme.RemovedStyle, string(o))
}

func removalDetail(rec RemovalRecord) string {
	switch {
	case rec.Error != "":
		return firstLine(rec.Error)
	case rec.IntegrationDetail != "":
		return firstLine(rec.IntegrationDetail)
	case rec.Integration == string(domain.IntegrationNotIntegrated):
		return "branch has work not in the target; use --force-delete to delete anyway"
	}
	return ""
}

func (r *Renderer) historyTable(entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(r.out, "No removals recorded")
		return err
	}

	t := r.newTable("WHEN", "BRANCH", "HEAD", "INTEGRATION", "STATUS", "WORKTREE", "RESTORE")
	for _, e := range entries {
		rec := NewHistoryRecord(e)
		t.Row(
			r.paint(theme.MutedStyle, humanize.RelTime(e.RecordedAt, r.now(), "ago", "from now")),
			rec.Branch,
			shortHead(rec.Head),
			rec.Integration,
			rec.Status,
			r.paint(theme.MutedStyle, rec.WorktreePath),
			rec.Restore,
		)
	}
	_, err := fmt.Fprintln(r.out, t.String())
	return err
}

func shortHead(head string) string {
	if len(head) > shortHeadLength {
		return head[:shortHeadLength]
	}
	return head
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

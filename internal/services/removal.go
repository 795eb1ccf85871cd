package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// RemoveOptions configures a removal run
type RemoveOptions struct {
	Base        string   // Integration target; empty means the primary worktree's branch
	Dir         string   // Any directory inside the repository
	Force       bool     // Remove worktrees with uncommitted or untracked changes
	ForceDelete bool     // Delete branches without classifying them
	Foreground  bool     // Run mutations in this process instead of a background job
	KeepBranch  bool     // Never delete branches
	Targets     []string // Branch names, paths or "@"; empty means the current worktree
}

// RemovalReport holds one result per requested target
type RemovalReport struct {
	CurrentRemoved bool   // The worktree containing Dir was removed or scheduled
	PrimaryPath    string // Where to go when CurrentRemoved
	Results        []domain.RemovalResult
}

// ExitCode returns the most severe exit code across all results
func (r *RemovalReport) ExitCode() domain.ExitCode {
	return domain.WorstExitCode(r.Results)
}

// RemovalService removes worktrees and deletes their branches only when
// the branch's work is already integrated
type RemovalService struct {
	background    ports.BackgroundRemover // nil disables background mode
	classifier    *IntegrationService
	defaultBranch string
	git           ports.GitRepository
	journal       ports.RemovalJournal // nil disables the journal
}

// NewRemovalService creates a new RemovalService
func NewRemovalService(
	git ports.GitRepository,
	classifier *IntegrationService,
	background ports.BackgroundRemover,
	journal ports.RemovalJournal,
	defaultBranch string,
) *RemovalService {
	return &RemovalService{
		background:    background,
		classifier:    classifier,
		defaultBranch: defaultBranch,
		git:           git,
		journal:       journal,
	}
}

// removalContext is the repository snapshot shared by all targets of a run
type removalContext struct {
	base        string
	currentRoot string
	primary     domain.Worktree
	repoDir     string
	worktrees   []domain.Worktree
}

// Remove processes targets sequentially in the order given. Every target
// yields a result; a failure on one target never stops the others. The
// returned error is reserved for failures that prevent any processing.
func (s *RemovalService) Remove(ctx context.Context, opts RemoveOptions) (*RemovalReport, error) {
	logging.Logger.Info("Removing targets",
		"targets", opts.Targets,
		"force", opts.Force,
		"force_delete", opts.ForceDelete,
		"keep_branch", opts.KeepBranch,
		"foreground", opts.Foreground)

	rc, err := s.snapshot(ctx, opts)
	if err != nil {
		return nil, err
	}

	targets := opts.Targets
	if len(targets) == 0 {
		targets = []string{CurrentTarget}
	}

	report := &RemovalReport{PrimaryPath: rc.primary.Path}
	seen := make(map[string]bool)

	for _, input := range targets {
		target, err := resolveTarget(ctx, s.git, rc.repoDir, rc.worktrees, rc.currentRoot, input)
		if err != nil {
			logging.Logger.Warn("Target not resolved", "input", input, "error", err)
			report.Results = append(report.Results, domain.RemovalResult{Target: target, Err: err})
			continue
		}

		key := targetKey(target)
		if seen[key] {
			logging.Logger.Info("Skipping duplicate target", "input", input, "key", key)
			continue
		}
		seen[key] = true

		result := s.removeTarget(ctx, rc, target, opts)
		report.Results = append(report.Results, result)

		if target.Worktree != nil && rc.currentRoot != "" && samePath(target.Worktree.Path, rc.currentRoot) &&
			(result.WorktreeStep.Status == domain.StepDone || result.WorktreeStep.Status == domain.StepScheduled) {
			report.CurrentRemoved = true
		}
	}

	logging.Logger.Info("Removal finished", "results", len(report.Results), "exit_code", report.ExitCode())
	return report, nil
}

func (s *RemovalService) snapshot(ctx context.Context, opts RemoveOptions) (*removalContext, error) {
	worktrees, err := s.git.ListWorktrees(ctx, opts.Dir)
	if err != nil {
		return nil, err
	}

	currentRoot, err := s.git.TopLevel(ctx, opts.Dir)
	if err != nil {
		logging.Logger.Debug("No current worktree", "dir", opts.Dir, "error", err)
		currentRoot = ""
	}

	rc := &removalContext{currentRoot: currentRoot, repoDir: opts.Dir, worktrees: worktrees}
	if primary, ok := domain.FindPrimary(worktrees); ok {
		rc.primary = primary
		rc.repoDir = primary.Path
	}

	rc.base = opts.Base
	if rc.base == "" {
		rc.base, err = resolveBase(ctx, s.git, rc.repoDir, rc.primary, s.defaultBranch)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

func targetKey(t domain.RemovalTarget) string {
	if t.Worktree != nil {
		return "worktree:" + canonicalPath(t.Worktree.Path)
	}
	return "branch:" + t.Branch
}

// removeTarget runs guards, classification and execution for one target
func (s *RemovalService) removeTarget(ctx context.Context, rc *removalContext, target domain.RemovalTarget, opts RemoveOptions) domain.RemovalResult {
	result := domain.RemovalResult{Target: target}

	if err := s.checkGuards(ctx, target, opts); err != nil {
		logging.Logger.Warn("Target blocked", "target", target.Label(), "error", err)
		result.Decision = domain.DecisionBlocked
		result.Err = err
		return result
	}

	result.Decision, result.Integration = s.decide(ctx, rc, target, opts)

	if target.Worktree == nil {
		result.WorktreeStep = domain.Step{Status: domain.StepSkipped, Detail: "no worktree"}
		result.BranchStep, result.Err = s.deleteBranch(ctx, rc.repoDir, target.Branch, result.Decision)
		s.record(ctx, rc, result)
		return result
	}

	if !opts.Foreground && s.background != nil {
		job := ports.RemovalJob{
			ForceWorktree: opts.Force,
			RepoPath:      rc.repoDir,
			WorktreePath:  target.Worktree.Path,
		}
		if result.Decision == domain.DecisionDeleteBranch {
			job.Branch = target.Branch
		}
		err := s.background.Schedule(ctx, job)
		if err == nil {
			result.WorktreeStep = domain.Step{Status: domain.StepScheduled}
			result.BranchStep = domain.Step{Status: domain.StepSkipped, Detail: skipReason(result)}
			if job.Branch != "" {
				result.BranchStep = domain.Step{Status: domain.StepScheduled}
			}
			s.record(ctx, rc, result)
			return result
		}
		logging.Logger.Warn("Background removal unavailable, running in foreground", "error", err)
	}

	if err := s.git.RemoveWorktree(ctx, rc.repoDir, target.Worktree.Path, opts.Force); err != nil {
		result.WorktreeStep = domain.Step{Status: domain.StepFailed, Detail: err.Error()}
		result.BranchStep = domain.Step{Status: domain.StepSkipped, Detail: "worktree removal failed"}
		result.Err = err
		return result
	}
	result.WorktreeStep = domain.Step{Status: domain.StepDone}

	result.BranchStep, result.Err = s.deleteBranch(ctx, rc.repoDir, target.Branch, result.Decision)
	s.record(ctx, rc, result)
	return result
}

// checkGuards enforces the primary-worktree and dirty-worktree protections
func (s *RemovalService) checkGuards(ctx context.Context, target domain.RemovalTarget, opts RemoveOptions) error {
	if target.Worktree == nil {
		return nil
	}
	if target.Worktree.IsPrimary || target.Worktree.Bare {
		return domain.ErrPrimaryWorktree
	}
	if opts.Force || target.Worktree.Prunable {
		return nil
	}

	dirty, err := s.git.HasUncommittedChanges(ctx, target.Worktree.Path)
	if err != nil {
		return fmt.Errorf("checking %s for changes: %w", target.Worktree.Path, err)
	}
	if dirty {
		return fmt.Errorf("%w: %s (use --force to remove anyway)", domain.ErrDirtyWorktree, target.Worktree.Path)
	}
	return nil
}

// decide classifies the target's branch when its deletion is requested
func (s *RemovalService) decide(ctx context.Context, rc *removalContext, target domain.RemovalTarget, opts RemoveOptions) (domain.RemovalDecision, *domain.Integration) {
	switch {
	case target.Branch == "":
		return domain.DecisionKeepBranch, nil
	case opts.KeepBranch:
		return domain.DecisionKeepBranch, nil
	case target.Branch == rc.base:
		// Never delete the branch everything is compared against
		logging.Logger.Info("Keeping integration target branch", "branch", target.Branch)
		return domain.DecisionKeepBranch, nil
	case opts.ForceDelete:
		return domain.DecisionDeleteBranch, nil
	case rc.base == "":
		return domain.DecisionKeepBranch, &domain.Integration{
			Branch: target.Branch,
			Detail: "no target branch to compare against",
			Status: domain.IntegrationUnknown,
		}
	}

	integration := s.classifier.Classify(ctx, rc.repoDir, target.Branch, rc.base)
	if integration.Status.Integrated() {
		return domain.DecisionDeleteBranch, &integration
	}
	return domain.DecisionKeepBranch, &integration
}

// deleteBranch always forces: git's own -d check compares against the
// branch's upstream, which disagrees with the classifier once it approved
func (s *RemovalService) deleteBranch(ctx context.Context, repoDir, branch string, decision domain.RemovalDecision) (domain.Step, error) {
	if decision != domain.DecisionDeleteBranch {
		return domain.Step{Status: domain.StepSkipped}, nil
	}
	if err := s.git.DeleteBranch(ctx, repoDir, branch, true); err != nil {
		return domain.Step{Status: domain.StepFailed, Detail: err.Error()}, err
	}
	return domain.Step{Status: domain.StepDone}, nil
}

func skipReason(r domain.RemovalResult) string {
	if r.Integration != nil {
		return string(r.Integration.Status)
	}
	return ""
}

// record appends completed or scheduled mutations to the journal.
// Journal failures are logged and never change the result.
func (s *RemovalService) record(ctx context.Context, rc *removalContext, result domain.RemovalResult) {
	if s.journal == nil {
		return
	}
	if !mutated(result.WorktreeStep) && !mutated(result.BranchStep) {
		return
	}

	entry := domain.JournalEntry{
		Head:       result.Target.Head,
		ID:         uuid.New().String(),
		RecordedAt: time.Now().UTC(),
		RepoPath:   rc.repoDir,
		Status:     result.WorktreeStep.Status,
	}
	if mutated(result.BranchStep) {
		entry.Branch = result.Target.Branch
		entry.Status = result.BranchStep.Status
	}
	if result.Target.Worktree != nil {
		entry.WorktreePath = result.Target.Worktree.Path
	}
	if result.Integration != nil {
		entry.Integration = result.Integration.Status
	}

	if err := s.journal.Record(ctx, entry); err != nil {
		logging.Logger.Warn("Failed to record removal", "error", err, "branch", entry.Branch)
	}
}

func mutated(step domain.Step) bool {
	return step.Status == domain.StepDone || step.Status == domain.StepScheduled
}

// ExecuteJob performs a background removal job: remove the worktree, then
// delete the branch if one was approved. Runs in the detached process.
func (s *RemovalService) ExecuteJob(ctx context.Context, job ports.RemovalJob) error {
	logging.Logger.Info("Executing removal job",
		"repo", job.RepoPath, "path", job.WorktreePath, "branch", job.Branch)

	if err := s.git.RemoveWorktree(ctx, job.RepoPath, job.WorktreePath, job.ForceWorktree); err != nil {
		return err
	}
	if job.Branch == "" {
		return nil
	}
	return s.git.DeleteBranch(ctx, job.RepoPath, job.Branch, true)
}

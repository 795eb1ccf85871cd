package domain

import "time"

// RemovalTarget is a user-supplied target resolved against the repository.
// Worktree is nil for a branch with no checkout.
type RemovalTarget struct {
	Branch   string
	Head     string
	Input    string
	Worktree *Worktree
}

// Label returns a human readable name for the target
func (t RemovalTarget) Label() string {
	if t.Branch != "" {
		return t.Branch
	}
	if t.Worktree != nil {
		return t.Worktree.Name()
	}
	return t.Input
}

// RemovalDecision is the verdict reached for a target before any mutation
type RemovalDecision string

const (
	DecisionBlocked      RemovalDecision = "blocked"
	DecisionDeleteBranch RemovalDecision = "delete-branch"
	DecisionKeepBranch   RemovalDecision = "keep-branch"
)

// StepStatus is the outcome of one mutation step
type StepStatus string

const (
	StepDone      StepStatus = "done"
	StepFailed    StepStatus = "failed"
	StepScheduled StepStatus = "scheduled"
	StepSkipped   StepStatus = "skipped"
)

// Step records what happened to one mutation
type Step struct {
	Detail string
	Status StepStatus
}

// Outcome summarises a RemovalResult for exit-code purposes
type Outcome string

const (
	OutcomeBlocked        Outcome = "blocked"
	OutcomeError          Outcome = "error"
	OutcomePartialFailure Outcome = "partial-failure"
	OutcomeRemoved        Outcome = "removed"
	OutcomeRemovedKept    Outcome = "removed-branch-kept"
)

// RemovalResult is the record produced for every requested target
type RemovalResult struct {
	BranchStep   Step
	Decision     RemovalDecision
	Err          error
	Integration  *Integration
	Target       RemovalTarget
	WorktreeStep Step
}

// Outcome derives the overall outcome of the result
func (r RemovalResult) Outcome() Outcome {
	switch {
	case r.Decision == DecisionBlocked:
		return OutcomeBlocked
	case r.Err != nil && r.WorktreeStep.Status == "" && r.BranchStep.Status == "":
		// Failed before any mutation was attempted
		return OutcomeError
	case r.WorktreeStep.Status == StepFailed:
		if r.BranchStep.Status == StepSkipped {
			return OutcomeError
		}
		return OutcomePartialFailure
	case r.BranchStep.Status == StepFailed:
		return OutcomePartialFailure
	case r.Integration != nil && r.Integration.Status == IntegrationUnknown:
		return OutcomePartialFailure
	case r.Decision == DecisionKeepBranch:
		return OutcomeRemovedKept
	}
	return OutcomeRemoved
}

// ExitCode maps the outcome to a process exit code
func (r RemovalResult) ExitCode() ExitCode {
	switch r.Outcome() {
	case OutcomeBlocked:
		return ExitBlocked
	case OutcomeError:
		if r.Err != nil {
			return ExitCodeFor(r.Err)
		}
		return ExitGeneralError
	case OutcomePartialFailure:
		return ExitPartialFailure
	}
	return ExitSuccess
}

// WorstExitCode returns the most severe exit code across results
func WorstExitCode(results []RemovalResult) ExitCode {
	worst := ExitSuccess
	for _, r := range results {
		if code := r.ExitCode(); severity(code) > severity(worst) {
			worst = code
		}
	}
	return worst
}

func severity(code ExitCode) int {
	switch code {
	case ExitSuccess:
		return 0
	case ExitPartialFailure:
		return 1
	case ExitBlocked:
		return 2
	case ExitTargetError:
		return 3
	}
	return 4
}

// JournalEntry records a removal so a deleted branch can be restored
type JournalEntry struct {
	Branch       string
	Head         string
	ID           string
	Integration  IntegrationStatus
	RecordedAt   time.Time
	RepoPath     string
	Status       StepStatus
	WorktreePath string
}

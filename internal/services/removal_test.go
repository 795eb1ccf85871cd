package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/ports"
	portsmocks "github.com/renato0307/galho/internal/ports/mocks"
)

func newRemovalService(git *portsmocks.MockGitRepository, background ports.BackgroundRemover, journal ports.RemovalJournal) *RemovalService {
	return NewRemovalService(git, NewIntegrationService(git), background, journal, "")
}

// expectSnapshot sets up the repository layout seen from the feature worktree
func expectSnapshot(git *portsmocks.MockGitRepository) {
	git.EXPECT().ListWorktrees(mock.Anything, "/repo-feature").
		Return([]domain.Worktree{primaryWorktree, featureWorktree}, nil)
	git.EXPECT().TopLevel(mock.Anything, "/repo-feature").Return("/repo-feature", nil)
}

func expectFeatureAncestor(git *portsmocks.MockGitRepository) {
	git.EXPECT().ResolveCommit(mock.Anything, repo, "feature").Return("f1", nil)
	git.EXPECT().ResolveCommit(mock.Anything, repo, "main").Return("p1", nil)
	git.EXPECT().IsAncestor(mock.Anything, repo, "feature", "main").Return(true, nil)
}

func TestRemove_PrimaryIsBlocked(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)

	report, err := newRemovalService(git, nil, nil).Remove(context.Background(), RemoveOptions{
		Dir:     "/repo-feature",
		Force:   true,
		Targets: []string{"main"},
	})

	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	result := report.Results[0]
	assert.Equal(t, domain.DecisionBlocked, result.Decision)
	assert.ErrorIs(t, result.Err, domain.ErrPrimaryWorktree)
	assert.Equal(t, domain.OutcomeBlocked, result.Outcome())
	assert.Equal(t, domain.ExitBlocked, report.ExitCode())
	assert.False(t, report.CurrentRemoved)
}

func TestRemove_DirtyIsBlocked(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	git.EXPECT().HasUncommittedChanges(mock.Anything, "/repo-feature").Return(true, nil)

	report, err := newRemovalService(git, nil, nil).Remove(context.Background(), RemoveOptions{Dir: "/repo-feature"})

	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.ErrorIs(t, report.Results[0].Err, domain.ErrDirtyWorktree)
	assert.Equal(t, domain.ExitBlocked, report.ExitCode())
}

func TestRemove_IntegratedBranchIsDeleted(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	expectFeatureAncestor(git)
	git.EXPECT().RemoveWorktree(mock.Anything, repo, "/repo-feature", true).Return(nil)
	git.EXPECT().DeleteBranch(mock.Anything, repo, "feature", true).Return(nil)

	journal := portsmocks.NewMockRemovalJournal(t)
	journal.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.Branch == "feature" &&
			e.Head == "f1" &&
			e.Integration == domain.IntegrationAncestor &&
			e.RepoPath == repo &&
			e.Status == domain.StepDone &&
			e.WorktreePath == "/repo-feature" &&
			e.ID != ""
	})).Return(nil)

	report, err := newRemovalService(git, nil, journal).Remove(context.Background(), RemoveOptions{
		Dir:   "/repo-feature",
		Force: true,
	})

	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	result := report.Results[0]
	assert.Equal(t, domain.DecisionDeleteBranch, result.Decision)
	assert.Equal(t, domain.StepDone, result.WorktreeStep.Status)
	assert.Equal(t, domain.StepDone, result.BranchStep.Status)
	assert.Equal(t, domain.OutcomeRemoved, result.Outcome())
	assert.Equal(t, domain.ExitSuccess, report.ExitCode())
	assert.True(t, report.CurrentRemoved)
	assert.Equal(t, repo, report.PrimaryPath)
}

func TestRemove_NotIntegratedBranchIsKept(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	git.EXPECT().HasUncommittedChanges(mock.Anything, "/repo-feature").Return(false, nil)
	git.EXPECT().ResolveCommit(mock.Anything, repo, "feature").Return("f1", nil)
	git.EXPECT().ResolveCommit(mock.Anything, repo, "main").Return("p1", nil)
	git.EXPECT().IsAncestor(mock.Anything, repo, "feature", "main").Return(false, nil)
	git.EXPECT().ResolveTree(mock.Anything, repo, "feature").Return("t-feature", nil)
	git.EXPECT().ResolveTree(mock.Anything, repo, "main").Return("t-main", nil)
	git.EXPECT().SupportsMergeTree(mock.Anything).Return(true)
	git.EXPECT().MergeTree(mock.Anything, repo, "main", "feature").Return("t-merged", true, nil)
	git.EXPECT().RemoveWorktree(mock.Anything, repo, "/repo-feature", false).Return(nil)

	report, err := newRemovalService(git, nil, nil).Remove(context.Background(), RemoveOptions{
		Dir:     "/repo-feature",
		Targets: []string{"feature"},
	})

	require.NoError(t, err)
	result := report.Results[0]
	assert.Equal(t, domain.DecisionKeepBranch, result.Decision)
	assert.Equal(t, domain.IntegrationNotIntegrated, result.Integration.Status)
	assert.Equal(t, domain.StepSkipped, result.BranchStep.Status)
	assert.Equal(t, domain.OutcomeRemovedKept, result.Outcome())
	assert.Equal(t, domain.ExitSuccess, report.ExitCode())
}

func TestRemove_UnknownIntegrationIsPartialFailure(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	git.EXPECT().ResolveCommit(mock.Anything, repo, "feature").Return("f1", nil)
	git.EXPECT().ResolveCommit(mock.Anything, repo, "main").Return("p1", nil)
	git.EXPECT().IsAncestor(mock.Anything, repo, "feature", "main").Return(false, errors.New("merge-base failed"))
	git.EXPECT().RemoveWorktree(mock.Anything, repo, "/repo-feature", true).Return(nil)

	report, err := newRemovalService(git, nil, nil).Remove(context.Background(), RemoveOptions{
		Dir:   "/repo-feature",
		Force: true,
	})

	require.NoError(t, err)
	result := report.Results[0]
	assert.Equal(t, domain.DecisionKeepBranch, result.Decision)
	assert.Equal(t, domain.IntegrationUnknown, result.Integration.Status)
	assert.Equal(t, domain.StepDone, result.WorktreeStep.Status)
	assert.Equal(t, domain.OutcomePartialFailure, result.Outcome())
	assert.Equal(t, domain.ExitPartialFailure, report.ExitCode())
}

func TestRemove_WorktreeFailureSkipsBranch(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	expectFeatureAncestor(git)
	git.EXPECT().RemoveWorktree(mock.Anything, repo, "/repo-feature", true).
		Return(&domain.QueryError{Args: []string{"worktree", "remove"}, ExitCode: 128, Stderr: "fatal: locked"})

	report, err := newRemovalService(git, nil, nil).Remove(context.Background(), RemoveOptions{
		Dir:   "/repo-feature",
		Force: true,
	})

	require.NoError(t, err)
	result := report.Results[0]
	assert.Equal(t, domain.StepFailed, result.WorktreeStep.Status)
	assert.Contains(t, result.WorktreeStep.Detail, "locked")
	assert.Equal(t, domain.StepSkipped, result.BranchStep.Status)
	assert.Equal(t, domain.OutcomeError, result.Outcome())
	assert.Equal(t, domain.ExitGeneralError, report.ExitCode())
	assert.False(t, report.CurrentRemoved)
}

func TestRemove_BranchDeletionFailureIsPartial(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	expectFeatureAncestor(git)
	git.EXPECT().RemoveWorktree(mock.Anything, repo, "/repo-feature", true).Return(nil)
	git.EXPECT().DeleteBranch(mock.Anything, repo, "feature", true).Return(errors.New("ref locked"))

	report, err := newRemovalService(git, nil, nil).Remove(context.Background(), RemoveOptions{
		Dir:   "/repo-feature",
		Force: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePartialFailure, report.Results[0].Outcome())
	assert.Equal(t, domain.ExitPartialFailure, report.ExitCode())
}

func TestRemove_KeepBranchSkipsClassification(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	git.EXPECT().RemoveWorktree(mock.Anything, repo, "/repo-feature", true).Return(nil)

	report, err := newRemovalService(git, nil, nil).Remove(context.Background(), RemoveOptions{
		Dir:        "/repo-feature",
		Force:      true,
		KeepBranch: true,
	})

	require.NoError(t, err)
	result := report.Results[0]
	assert.Nil(t, result.Integration)
	assert.Equal(t, domain.OutcomeRemovedKept, result.Outcome())
}

func TestRemove_ForceDeleteSkipsClassification(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	git.EXPECT().RemoveWorktree(mock.Anything, repo, "/repo-feature", true).Return(nil)
	git.EXPECT().DeleteBranch(mock.Anything, repo, "feature", true).Return(nil)

	report, err := newRemovalService(git, nil, nil).Remove(context.Background(), RemoveOptions{
		Dir:         "/repo-feature",
		Force:       true,
		ForceDelete: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRemoved, report.Results[0].Outcome())
}

func TestRemove_BackgroundSchedulesMutations(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	expectFeatureAncestor(git)

	background := portsmocks.NewMockBackgroundRemover(t)
	background.EXPECT().Schedule(mock.Anything, ports.RemovalJob{
		Branch:        "feature",
		ForceWorktree: true,
		RepoPath:      repo,
		WorktreePath:  "/repo-feature",
	}).Return(nil)

	report, err := newRemovalService(git, background, nil).Remove(context.Background(), RemoveOptions{
		Dir:   "/repo-feature",
		Force: true,
	})

	require.NoError(t, err)
	result := report.Results[0]
	assert.Equal(t, domain.StepScheduled, result.WorktreeStep.Status)
	assert.Equal(t, domain.StepScheduled, result.BranchStep.Status)
	assert.Equal(t, domain.OutcomeRemoved, result.Outcome())
	assert.True(t, report.CurrentRemoved)
}

func TestRemove_BackgroundFailureFallsBackToForeground(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	expectFeatureAncestor(git)
	git.EXPECT().RemoveWorktree(mock.Anything, repo, "/repo-feature", true).Return(nil)
	git.EXPECT().DeleteBranch(mock.Anything, repo, "feature", true).Return(nil)

	background := portsmocks.NewMockBackgroundRemover(t)
	background.EXPECT().Schedule(mock.Anything, mock.Anything).Return(errors.New("exec failed"))

	report, err := newRemovalService(git, background, nil).Remove(context.Background(), RemoveOptions{
		Dir:   "/repo-feature",
		Force: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StepDone, report.Results[0].WorktreeStep.Status)
	assert.Equal(t, domain.StepDone, report.Results[0].BranchStep.Status)
}

func TestRemove_BranchWithoutWorktreeRunsInForeground(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	git.EXPECT().BranchExists(mock.Anything, repo, "old").Return(true, nil)
	git.EXPECT().ResolveCommit(mock.Anything, repo, "old").Return("o1", nil)
	git.EXPECT().ResolveCommit(mock.Anything, repo, "main").Return("p1", nil)
	git.EXPECT().IsAncestor(mock.Anything, repo, "old", "main").Return(true, nil)
	git.EXPECT().DeleteBranch(mock.Anything, repo, "old", true).Return(nil)

	background := portsmocks.NewMockBackgroundRemover(t)

	report, err := newRemovalService(git, background, nil).Remove(context.Background(), RemoveOptions{
		Dir:     "/repo-feature",
		Targets: []string{"old"},
	})

	require.NoError(t, err)
	result := report.Results[0]
	assert.Equal(t, domain.StepSkipped, result.WorktreeStep.Status)
	assert.Equal(t, domain.StepDone, result.BranchStep.Status)
	assert.Equal(t, domain.OutcomeRemoved, result.Outcome())
	assert.False(t, report.CurrentRemoved)
}

func TestRemove_TargetBranchIsNeverDeleted(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	git.EXPECT().RemoveWorktree(mock.Anything, repo, "/repo-feature", true).Return(nil)

	report, err := newRemovalService(git, nil, nil).Remove(context.Background(), RemoveOptions{
		Base:        "feature",
		Dir:         "/repo-feature",
		Force:       true,
		ForceDelete: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DecisionKeepBranch, report.Results[0].Decision)
}

func TestRemove_MultipleTargetsReportWorstExitCode(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	git.EXPECT().HasUncommittedChanges(mock.Anything, "/repo-feature").Return(true, nil)
	git.EXPECT().BranchExists(mock.Anything, repo, "nope").Return(false, nil)

	report, err := newRemovalService(git, nil, nil).Remove(context.Background(), RemoveOptions{
		Dir:     "/repo-feature",
		Targets: []string{"feature", "/repo-feature", "nope"},
	})

	require.NoError(t, err)
	require.Len(t, report.Results, 2, "duplicate target skipped")
	assert.Equal(t, domain.OutcomeBlocked, report.Results[0].Outcome())
	assert.Equal(t, domain.OutcomeError, report.Results[1].Outcome())
	assert.Equal(t, domain.ExitTargetError, report.ExitCode())
}

func TestRemove_JournalFailureDoesNotChangeResult(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	expectSnapshot(git)
	git.EXPECT().RemoveWorktree(mock.Anything, repo, "/repo-feature", true).Return(nil)

	journal := portsmocks.NewMockRemovalJournal(t)
	journal.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	report, err := newRemovalService(git, nil, journal).Remove(context.Background(), RemoveOptions{
		Dir:        "/repo-feature",
		Force:      true,
		KeepBranch: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ExitSuccess, report.ExitCode())
}

func TestExecuteJob(t *testing.T) {
	t.Run("removes worktree then branch", func(t *testing.T) {
		git := portsmocks.NewMockGitRepository(t)
		git.EXPECT().RemoveWorktree(mock.Anything, repo, "/repo-feature", false).Return(nil)
		git.EXPECT().DeleteBranch(mock.Anything, repo, "feature", true).Return(nil)

		err := newRemovalService(git, nil, nil).ExecuteJob(context.Background(), ports.RemovalJob{
			Branch:       "feature",
			RepoPath:     repo,
			WorktreePath: "/repo-feature",
		})
		require.NoError(t, err)
	})

	t.Run("keeps branch when worktree removal fails", func(t *testing.T) {
		git := portsmocks.NewMockGitRepository(t)
		git.EXPECT().RemoveWorktree(mock.Anything, repo, "/repo-feature", false).Return(errors.New("locked"))

		err := newRemovalService(git, nil, nil).ExecuteJob(context.Background(), ports.RemovalJob{
			Branch:       "feature",
			RepoPath:     repo,
			WorktreePath: "/repo-feature",
		})
		require.Error(t, err)
	})
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/galho/internal/domain"
	portsmocks "github.com/renato0307/galho/internal/ports/mocks"
)

var (
	primaryWorktree = domain.Worktree{Branch: "main", Head: "p1", IsPrimary: true, Path: repo}
	featureWorktree = domain.Worktree{Branch: "feature", Head: "f1", Path: "/repo-feature"}
)

func newListingService(git *portsmocks.MockGitRepository, defaultBranch string) *ListingService {
	return NewListingService(git, NewStatsService(git), NewUpstreamService(git), 4, defaultBranch)
}

func expectPrimary(git *portsmocks.MockGitRepository, timestamp int64) {
	git.EXPECT().CommitDetails(mock.Anything, repo, "p1").
		Return(domain.CommitDetails{Message: "initial", Timestamp: timestamp}, nil)
	git.EXPECT().WorkingTreeDiff(mock.Anything, repo).Return(domain.DiffTotals{}, nil)
	git.EXPECT().WorktreeState(mock.Anything, repo).Return(domain.WorktreeStateClean, nil)
	git.EXPECT().Upstream(mock.Anything, repo, "main").Return("", nil)
}

func TestList_Worktrees(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	git.EXPECT().ListWorktrees(mock.Anything, "/repo-feature").
		Return([]domain.Worktree{primaryWorktree, featureWorktree}, nil)
	git.EXPECT().TopLevel(mock.Anything, "/repo-feature").Return("/repo-feature", nil)

	expectPrimary(git, 100)

	git.EXPECT().CommitDetails(mock.Anything, repo, "f1").
		Return(domain.CommitDetails{Message: "add feature", Timestamp: 200}, nil)
	git.EXPECT().AheadBehind(mock.Anything, repo, "main", "f1").
		Return(domain.AheadBehind{Ahead: 2, Behind: 1}, nil)
	git.EXPECT().DiffTotals(mock.Anything, repo, "main", "f1").
		Return(domain.DiffTotals{Added: 30, Deleted: 5}, nil)
	git.EXPECT().WorkingTreeDiff(mock.Anything, "/repo-feature").
		Return(domain.DiffTotals{Added: 1}, nil)
	git.EXPECT().WorktreeState(mock.Anything, "/repo-feature").Return(domain.WorktreeStateRebase, nil)
	git.EXPECT().Upstream(mock.Anything, repo, "feature").Return("origin/feature", nil)
	git.EXPECT().AheadBehind(mock.Anything, repo, "origin/feature", "f1").
		Return(domain.AheadBehind{Ahead: 1}, nil)

	result, err := newListingService(git, "").List(context.Background(), ListOptions{Dir: "/repo-feature"})

	require.NoError(t, err)
	assert.Equal(t, "main", result.Base)
	assert.Empty(t, result.Warnings)
	require.Len(t, result.Items, 2)

	feature, ok := result.Items[0].(*domain.WorktreeInfo)
	require.True(t, ok, "newest commit first")
	assert.Equal(t, "feature", feature.BranchName())
	assert.True(t, feature.IsCurrent)
	assert.True(t, feature.Dirty())
	assert.Equal(t, domain.WorktreeStateRebase, feature.State)
	assert.Equal(t, domain.AheadBehind{Ahead: 2, Behind: 1}, feature.AheadBehind)
	assert.Equal(t, domain.DiffTotals{Added: 30, Deleted: 5}, feature.BranchDiff)
	assert.Equal(t, "origin", feature.UpstreamStatus.Remote)
	assert.Equal(t, 1, feature.UpstreamStatus.Ahead)

	primary, ok := result.Items[1].(*domain.WorktreeInfo)
	require.True(t, ok)
	assert.False(t, primary.IsCurrent)
	assert.Equal(t, domain.AheadBehind{}, primary.AheadBehind, "primary is never compared with itself")
	assert.Equal(t, domain.DiffTotals{}, primary.BranchDiff)
	assert.False(t, primary.UpstreamStatus.HasUpstream())

	summary := result.Summary()
	assert.Equal(t, ListSummary{Ahead: 1, Behind: 1, Dirty: 1, Worktrees: 2}, summary)
}

func TestList_WorktreeFailureIsFatal(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	git.EXPECT().ListWorktrees(mock.Anything, repo).Return([]domain.Worktree{primaryWorktree}, nil)
	git.EXPECT().TopLevel(mock.Anything, repo).Return(repo, nil)
	git.EXPECT().CommitDetails(mock.Anything, repo, "p1").
		Return(domain.CommitDetails{}, errors.New("bad object p1"))

	result, err := newListingService(git, "").List(context.Background(), ListOptions{Dir: repo})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "worktree /repo")
}

func TestList_ListWorktreesFailure(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	git.EXPECT().ListWorktrees(mock.Anything, "/tmp").Return(nil, domain.ErrNotARepository)

	_, err := newListingService(git, "").List(context.Background(), ListOptions{Dir: "/tmp"})

	assert.ErrorIs(t, err, domain.ErrNotARepository)
}

func TestList_BranchesArePartialOnFailure(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	git.EXPECT().ListWorktrees(mock.Anything, repo).Return([]domain.Worktree{primaryWorktree}, nil)
	git.EXPECT().TopLevel(mock.Anything, repo).Return(repo, nil)
	expectPrimary(git, 100)

	git.EXPECT().ListBranches(mock.Anything, repo).Return([]domain.Branch{
		{Name: "main", Head: "p1"},
		{Name: "old", Head: "o1"},
		{Name: "broken", Head: "b1"},
	}, nil)

	git.EXPECT().CommitDetails(mock.Anything, repo, "old").
		Return(domain.CommitDetails{Message: "old work", Timestamp: 50}, nil)
	git.EXPECT().AheadBehind(mock.Anything, repo, "main", "old").
		Return(domain.AheadBehind{Behind: 4}, nil)
	git.EXPECT().DiffTotals(mock.Anything, repo, "main", "old").
		Return(domain.DiffTotals{Deleted: 2}, nil)
	git.EXPECT().Upstream(mock.Anything, repo, "old").Return("", nil)

	git.EXPECT().CommitDetails(mock.Anything, repo, "broken").
		Return(domain.CommitDetails{}, errors.New("bad object\nsecond line"))
	git.EXPECT().AheadBehind(mock.Anything, repo, "main", "broken").
		Return(domain.AheadBehind{Ahead: 1}, nil)
	git.EXPECT().DiffTotals(mock.Anything, repo, "main", "broken").
		Return(domain.DiffTotals{Added: 3}, nil)
	git.EXPECT().Upstream(mock.Anything, repo, "broken").Return("", errors.New("no upstream"))

	result, err := newListingService(git, "").List(context.Background(), ListOptions{Dir: repo, IncludeBranches: true})

	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "main", result.Items[0].BranchName())
	assert.Equal(t, "old", result.Items[1].BranchName())
	assert.Equal(t, "broken", result.Items[2].BranchName())

	broken, ok := result.Items[2].(*domain.BranchInfo)
	require.True(t, ok)
	assert.Equal(t, "bad object", broken.Warning)
	assert.Equal(t, domain.AheadBehind{Ahead: 1}, broken.AheadBehind)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "branch broken")
	assert.Equal(t, 2, result.Summary().Branches)
}

func TestList_BranchListingFailureIsWarning(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	git.EXPECT().ListWorktrees(mock.Anything, repo).Return([]domain.Worktree{primaryWorktree}, nil)
	git.EXPECT().TopLevel(mock.Anything, repo).Return(repo, nil)
	expectPrimary(git, 100)
	git.EXPECT().ListBranches(mock.Anything, repo).Return(nil, errors.New("for-each-ref failed"))

	result, err := newListingService(git, "").List(context.Background(), ListOptions{Dir: repo, IncludeBranches: true})

	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "for-each-ref failed")
}

func TestList_NoBaseAvailable(t *testing.T) {
	detached := domain.Worktree{Head: "d1", IsPrimary: true, Path: repo}
	linked := domain.Worktree{Branch: "feature", Head: "f1", Path: "/repo-feature"}

	git := portsmocks.NewMockGitRepository(t)
	git.EXPECT().ListWorktrees(mock.Anything, repo).Return([]domain.Worktree{detached, linked}, nil)
	git.EXPECT().TopLevel(mock.Anything, repo).Return(repo, nil)
	git.EXPECT().DefaultBranch(mock.Anything, repo).Return("", nil)

	git.EXPECT().CommitDetails(mock.Anything, repo, "d1").Return(domain.CommitDetails{Timestamp: 10}, nil)
	git.EXPECT().WorkingTreeDiff(mock.Anything, repo).Return(domain.DiffTotals{}, nil)
	git.EXPECT().WorktreeState(mock.Anything, repo).Return(domain.WorktreeStateClean, nil)

	git.EXPECT().CommitDetails(mock.Anything, repo, "f1").Return(domain.CommitDetails{Timestamp: 20}, nil)
	git.EXPECT().WorkingTreeDiff(mock.Anything, "/repo-feature").Return(domain.DiffTotals{}, nil)
	git.EXPECT().WorktreeState(mock.Anything, "/repo-feature").Return(domain.WorktreeStateClean, nil)
	git.EXPECT().Upstream(mock.Anything, repo, "feature").Return("", nil)

	result, err := newListingService(git, "").List(context.Background(), ListOptions{Dir: repo})

	require.NoError(t, err)
	assert.Empty(t, result.Base)
	for _, item := range result.Items {
		assert.Equal(t, domain.AheadBehind{}, item.Counts())
	}
}

func TestList_PrunableWorktreeSkipsWorkingTree(t *testing.T) {
	prunable := domain.Worktree{Branch: "gone", Head: "g1", Path: "/repo-gone", Prunable: true}

	git := portsmocks.NewMockGitRepository(t)
	git.EXPECT().ListWorktrees(mock.Anything, repo).Return([]domain.Worktree{primaryWorktree, prunable}, nil)
	git.EXPECT().TopLevel(mock.Anything, repo).Return(repo, nil)
	expectPrimary(git, 100)

	git.EXPECT().CommitDetails(mock.Anything, repo, "g1").Return(domain.CommitDetails{Timestamp: 5}, nil)
	git.EXPECT().AheadBehind(mock.Anything, repo, "main", "g1").Return(domain.AheadBehind{}, nil)
	git.EXPECT().DiffTotals(mock.Anything, repo, "main", "g1").Return(domain.DiffTotals{}, nil)
	git.EXPECT().Upstream(mock.Anything, repo, "gone").Return("", nil)

	result, err := newListingService(git, "").List(context.Background(), ListOptions{Dir: repo})

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	info := result.Items[1].(*domain.WorktreeInfo)
	assert.True(t, info.Worktree.Prunable)
	assert.False(t, info.Dirty())
}

func TestSortByRecency_Stable(t *testing.T) {
	items := []domain.ListItem{
		&domain.BranchInfo{Branch: domain.Branch{Name: "a"}, CommitDetails: domain.CommitDetails{Timestamp: 10}},
		&domain.BranchInfo{Branch: domain.Branch{Name: "b"}, CommitDetails: domain.CommitDetails{Timestamp: 30}},
		&domain.BranchInfo{Branch: domain.Branch{Name: "c"}, CommitDetails: domain.CommitDetails{Timestamp: 10}},
		&domain.BranchInfo{Branch: domain.Branch{Name: "d"}, CommitDetails: domain.CommitDetails{Timestamp: 30}},
	}

	SortByRecency(items)

	var names []string
	for _, item := range items {
		names = append(names, item.BranchName())
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, names)
}

func TestResolveBase(t *testing.T) {
	t.Run("primary branch wins", func(t *testing.T) {
		git := portsmocks.NewMockGitRepository(t)
		base, err := resolveBase(context.Background(), git, repo, primaryWorktree, "develop")
		require.NoError(t, err)
		assert.Equal(t, "main", base)
	})

	t.Run("configured default", func(t *testing.T) {
		git := portsmocks.NewMockGitRepository(t)
		git.EXPECT().BranchExists(mock.Anything, repo, "develop").Return(true, nil)
		base, err := resolveBase(context.Background(), git, repo, domain.Worktree{}, "develop")
		require.NoError(t, err)
		assert.Equal(t, "develop", base)
	})

	t.Run("missing configured default falls back to detection", func(t *testing.T) {
		git := portsmocks.NewMockGitRepository(t)
		git.EXPECT().BranchExists(mock.Anything, repo, "develop").Return(false, nil)
		git.EXPECT().DefaultBranch(mock.Anything, repo).Return("trunk", nil)
		base, err := resolveBase(context.Background(), git, repo, domain.Worktree{}, "develop")
		require.NoError(t, err)
		assert.Equal(t, "trunk", base)
	})
}

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

func TestStatsCompute_NoBase(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	service := NewStatsService(git)

	empty := ""
	for _, base := range []*string{nil, &empty} {
		counts, totals, err := service.Compute(context.Background(), repo, base, "feature")

		require.NoError(t, err)
		assert.Equal(t, domain.AheadBehind{}, counts)
		assert.Equal(t, domain.DiffTotals{}, totals)
	}
}

func TestStatsCompute(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	git.EXPECT().AheadBehind(mock.Anything, repo, "main", "feature").
		Return(domain.AheadBehind{Ahead: 3, Behind: 1}, nil)
	git.EXPECT().DiffTotals(mock.Anything, repo, "main", "feature").
		Return(domain.DiffTotals{Added: 10, Deleted: 4}, nil)

	base := "main"
	counts, totals, err := NewStatsService(git).Compute(context.Background(), repo, &base, "feature")

	require.NoError(t, err)
	assert.Equal(t, domain.AheadBehind{Ahead: 3, Behind: 1}, counts)
	assert.Equal(t, domain.DiffTotals{Added: 10, Deleted: 4}, totals)
}

func TestStatsCompute_Error(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	git.EXPECT().AheadBehind(mock.Anything, repo, "main", "feature").
		Return(domain.AheadBehind{}, errors.New("boom"))

	base := "main"
	_, _, err := NewStatsService(git).Compute(context.Background(), repo, &base, "feature")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "counting commits of feature against main")
}

func TestUpstreamTrack(t *testing.T) {
	git := portsmocks.NewMockGitRepository(t)
	git.EXPECT().Upstream(mock.Anything, repo, "feature").Return("fork/feature", nil)
	git.EXPECT().AheadBehind(mock.Anything, repo, "fork/feature", "abc").
		Return(domain.AheadBehind{Ahead: 2, Behind: 5}, nil)

	status := NewUpstreamService(git).Track(context.Background(), repo, "feature", "abc")

	assert.True(t, status.HasUpstream())
	assert.Equal(t, "fork", status.Remote)
	assert.Equal(t, 2, status.Ahead)
	assert.Equal(t, 5, status.Behind)
}

func TestUpstreamTrack_Degrades(t *testing.T) {
	t.Run("detached", func(t *testing.T) {
		git := portsmocks.NewMockGitRepository(t)
		status := NewUpstreamService(git).Track(context.Background(), repo, "", "abc")
		assert.False(t, status.HasUpstream())
	})

	t.Run("no upstream configured", func(t *testing.T) {
		git := portsmocks.NewMockGitRepository(t)
		git.EXPECT().Upstream(mock.Anything, repo, "feature").Return("", nil)
		status := NewUpstreamService(git).Track(context.Background(), repo, "feature", "abc")
		assert.Equal(t, domain.UpstreamStatus{}, status)
	})

	t.Run("upstream ref gone", func(t *testing.T) {
		git := portsmocks.NewMockGitRepository(t)
		git.EXPECT().Upstream(mock.Anything, repo, "feature").Return("origin/feature", nil)
		git.EXPECT().AheadBehind(mock.Anything, repo, "origin/feature", "feature").
			Return(domain.AheadBehind{}, errors.New("unknown revision"))
		status := NewUpstreamService(git).Track(context.Background(), repo, "feature", "")
		assert.Equal(t, domain.UpstreamStatus{}, status)
	})
}

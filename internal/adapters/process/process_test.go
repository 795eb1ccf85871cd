//go:build unix

package process

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/galho/internal/ports"
)

func TestJobArgs(t *testing.T) {
	tests := []struct {
		name     string
		job      ports.RemovalJob
		expected []string
	}{
		{
			name:     "worktree only",
			job:      ports.RemovalJob{RepoPath: "/repo", WorktreePath: "/repo-wt"},
			expected: []string{"internal-remove", "--repo", "/repo", "--path", "/repo-wt"},
		},
		{
			name:     "branch and force",
			job:      ports.RemovalJob{Branch: "feature", ForceWorktree: true, RepoPath: "/repo", WorktreePath: "/repo-wt"},
			expected: []string{"internal-remove", "--repo", "/repo", "--path", "/repo-wt", "--branch", "feature", "--force"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JobArgs(tt.job))
		})
	}
}

func TestSchedule_StartsExecutable(t *testing.T) {
	remover := NewDetachedRemover("/bin/true")

	err := remover.Schedule(context.Background(), ports.RemovalJob{RepoPath: t.TempDir(), WorktreePath: "/nowhere"})

	assert.NoError(t, err)
}

func TestSchedule_MissingExecutable(t *testing.T) {
	remover := NewDetachedRemover(filepath.Join(t.TempDir(), "missing"))

	err := remover.Schedule(context.Background(), ports.RemovalJob{RepoPath: t.TempDir()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start background removal")
}

func TestLockPath_StablePerRepository(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, LockPath(dir, "/repo"), LockPath(dir, "/repo/"))
	assert.NotEqual(t, LockPath(dir, "/repo"), LockPath(dir, "/other"))
}

func TestRepoLock_Exclusive(t *testing.T) {
	dir := t.TempDir()

	first, err := AcquireRepoLock(dir, "/repo")
	require.NoError(t, err)

	var mu sync.Mutex
	acquired := false
	done := make(chan struct{})
	go func() {
		defer close(done)
		second, err := AcquireRepoLock(dir, "/repo")
		if err != nil {
			return
		}
		mu.Lock()
		acquired = true
		mu.Unlock()
		_ = second.Release()
	}()

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	assert.False(t, acquired, "second lock must wait")
	mu.Unlock()

	require.NoError(t, first.Release())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("second lock never acquired")
	}
	mu.Lock()
	assert.True(t, acquired)
	mu.Unlock()
}

func TestRepoLock_IndependentRepositories(t *testing.T) {
	dir := t.TempDir()

	a, err := AcquireRepoLock(dir, "/repo-a")
	require.NoError(t, err)
	defer a.Release()

	b, err := AcquireRepoLock(dir, "/repo-b")
	require.NoError(t, err)
	require.NoError(t, b.Release())
}

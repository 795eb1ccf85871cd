package process

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/renato0307/galho/internal/logging"
)

// RepoLock serializes removals against one repository across processes
type RepoLock struct {
	file *os.File
	path string
}

// LockPath returns the lock file used for repoPath inside lockDir
func LockPath(lockDir, repoPath string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+filepath.Clean(repoPath)))
	return filepath.Join(lockDir, id.String()+".lock")
}

// AcquireRepoLock blocks until the exclusive lock for repoPath is held
func AcquireRepoLock(lockDir, repoPath string) (*RepoLock, error) {
	if err := os.MkdirAll(lockDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	path := LockPath(lockDir, repoPath)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := lockFile(file); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}

	logging.Logger.Debug("Repository lock acquired", "repo", repoPath, "lock", path)
	return &RepoLock{file: file, path: path}, nil
}

// Release unlocks and closes the lock file. The file stays on disk since a
// waiter may already hold it open.
func (l *RepoLock) Release() error {
	unlockErr := unlockFile(l.file)
	closeErr := l.file.Close()
	logging.Logger.Debug("Repository lock released", "lock", l.path)
	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}

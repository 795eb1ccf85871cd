package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// CLIRunner implements ports.GitRunner by executing the git binary
type CLIRunner struct {
	binary string
	env    []string
}

// Verify interface compliance at compile time
var _ ports.GitRunner = (*CLIRunner)(nil)

// NewCLIRunner creates a runner for the git binary found on PATH
func NewCLIRunner() *CLIRunner {
	return &CLIRunner{
		binary: "git",
		// Queries run concurrently; keep read-only commands from
		// refreshing the index behind our back.
		env: append(os.Environ(), "GIT_OPTIONAL_LOCKS=0", "LC_ALL=C"),
	}
}

// Run executes git with args in dir and returns trimmed stdout
func (r *CLIRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = dir
	cmd.Env = r.env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		qe := &domain.QueryError{
			Args:     args,
			Dir:      dir,
			Err:      err,
			ExitCode: -1,
			Stderr:   stderr.String(),
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			qe.ExitCode = exitErr.ExitCode()
		}
		logging.Logger.Debug("git command failed",
			"args", args,
			"dir", dir,
			"duration", elapsed,
			"exit_code", qe.ExitCode,
			"stderr", strings.TrimSpace(qe.Stderr))
		return "", qe
	}

	logging.Logger.Debug("git command", "args", args, "dir", dir, "duration", elapsed)
	return strings.TrimSpace(stdout.String()), nil
}

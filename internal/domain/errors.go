package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAmbiguousTarget      = errors.New("target matches more than one worktree or branch")
	ErrDirtyWorktree        = errors.New("worktree has uncommitted or untracked changes")
	ErrMergeTreeUnsupported = errors.New("git merge-tree --write-tree is not supported by this git version")
	ErrNotARepository       = errors.New("not inside a git repository")
	ErrPrimaryWorktree      = errors.New("the primary worktree cannot be removed")
	ErrTargetNotFound       = errors.New("no worktree or branch matches target")
)

// QueryError is a failed git invocation. Stderr and ExitCode are kept
// verbatim so callers can report the diagnostic.
type QueryError struct {
	Args     []string
	Dir      string
	Err      error
	ExitCode int // -1 when the process did not run to completion
	Stderr   string
}

func (e *QueryError) Error() string {
	msg := fmt.Sprintf("git %s failed (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// HasExitCode reports whether err is a QueryError that exited with code
func HasExitCode(err error, code int) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.ExitCode == code
}

// TargetError reports a removal target that could not be resolved to
// exactly one worktree or branch
type TargetError struct {
	Candidates []string
	Err        error
	Target     string
}

func (e *TargetError) Error() string {
	if len(e.Candidates) > 0 {
		return fmt.Sprintf("%s: %q (candidates: %s)", e.Err, e.Target, strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Target)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

// ExitCode is the process exit status of a command
type ExitCode int

const (
	ExitSuccess        ExitCode = 0
	ExitGeneralError   ExitCode = 1
	ExitTargetError    ExitCode = 2
	ExitBlocked        ExitCode = 3
	ExitPartialFailure ExitCode = 4
)

// ExitError carries an exit code to the top-level command runner
type ExitError struct {
	Code ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an error to the exit code the CLI should return
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, ErrTargetNotFound), errors.Is(err, ErrAmbiguousTarget):
		return ExitTargetError
	case errors.Is(err, ErrPrimaryWorktree), errors.Is(err, ErrDirtyWorktree):
		return ExitBlocked
	}
	return ExitGeneralError
}

// Package errors provides sentinel errors and custom error types for the loki CLI.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrDetachedHead indicates that HEAD is not on a named branch
	ErrDetachedHead = errors.New("not on a branch (detached HEAD)")

	// ErrEmptyBranchName indicates that no usable words were given to build a branch name
	ErrEmptyBranchName = errors.New("branch name cannot be empty")

	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrInvalidPrefix indicates that the configured branch name prefix is malformed
	ErrInvalidPrefix = errors.New("branch name prefix must not contain whitespace")
)

// CommandError represents a failed git invocation. For interactive
// invocations the child's stderr goes straight to the terminal, so Stderr
// is only populated for captured-output invocations.
type CommandError struct {
	Args     []string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += "\n" + strings.TrimSpace(e.Stderr)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(args []string, stderr string, exitCode int, err error) *CommandError {
	return &CommandError{
		Args:     args,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}

// ExitStatus returns the exit code the process should terminate with for err:
// the child's own status when a git invocation failed, 1 for everything else.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}
	return 1
}

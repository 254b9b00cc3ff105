package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	lokierrors "loki.dev/loki/internal/errors"
	"loki.dev/loki/internal/tui"
)

// DefaultCommandTimeout bounds captured-output git queries. Interactive
// invocations never time out: they may legitimately block on credential or
// editor prompts.
const DefaultCommandTimeout = 1 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// defaultRunner is the global runner used by the package-level functions
var defaultRunner = &CommandRunner{}

// SetWorkingDir sets the working directory for the default git runner.
func SetWorkingDir(dir string) {
	defaultRunner.workingDir = dir
}

// Run executes a git command with the given context and returns the
// trimmed output.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = ctx.Err()
		}
		return "", lokierrors.NewCommandError(args, stderr.String(), exitCode(err), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// RunInteractive executes a git command with stdin/stdout/stderr connected
// to the terminal. The command is echoed dimmed to stderr first.
func (r *CommandRunner) RunInteractive(args ...string) error {
	tui.EchoCommand("git", args)

	cmd := exec.Command("git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return lokierrors.NewCommandError(args, "", exitCode(err), err)
	}
	return nil
}

// exitCode extracts the child's exit status, or -1 when the process did not
// run to completion.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// RunGitCommand executes a git command using the default runner and returns
// the trimmed output.
func RunGitCommand(args ...string) (string, error) {
	return defaultRunner.Run(context.Background(), args...)
}

// RunGitCommandWithContext executes a git command with the given context
// using the default runner.
func RunGitCommandWithContext(ctx context.Context, args ...string) (string, error) {
	return defaultRunner.Run(ctx, args...)
}

// RunGitCommandLines executes a git command using the default runner and
// returns its output as lines.
func RunGitCommandLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := defaultRunner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// RunGitCommandInteractive executes a git command using the default runner
// with inherited standard streams.
func RunGitCommandInteractive(args ...string) error {
	return defaultRunner.RunInteractive(args...)
}

// Runner defines the git operations the command actions depend on.
// It allows actions to be tested against a recording fake.
type Runner interface {
	// Queries (captured output)
	CurrentBranch(ctx context.Context) (string, error)
	LocalBranchUpstreams(ctx context.Context) (map[string]string, error)
	RemoteTrackingRefs(remote string) (map[string]bool, error)
	DeleteBranch(ctx context.Context, branchName string) error

	// Mutations (inherited standard streams)
	CreateAndCheckoutBranch(branchName string) error
	Push(opts PushOptions) error
	Fetch() error
	FetchPrune() error
	PullPrune() error
	Stage(all bool) error
	Commit(opts CommitOptions) error
	Rebase(remote, target string) error
	Passthrough(args ...string) error
}

// NewRealRunner returns a Runner that calls the package-level git functions.
func NewRealRunner() Runner {
	return &realRunner{}
}

// realRunner implements Runner by calling the actual git package functions
type realRunner struct{}

func (r *realRunner) CurrentBranch(ctx context.Context) (string, error) {
	return CurrentBranch(ctx)
}

func (r *realRunner) LocalBranchUpstreams(ctx context.Context) (map[string]string, error) {
	return LocalBranchUpstreams(ctx)
}

func (r *realRunner) RemoteTrackingRefs(remote string) (map[string]bool, error) {
	return RemoteTrackingRefs(remote)
}

func (r *realRunner) DeleteBranch(ctx context.Context, branchName string) error {
	return DeleteBranch(ctx, branchName)
}

func (r *realRunner) CreateAndCheckoutBranch(branchName string) error {
	return CreateAndCheckoutBranch(branchName)
}

func (r *realRunner) Push(opts PushOptions) error {
	return Push(opts)
}

func (r *realRunner) Fetch() error {
	return Fetch()
}

func (r *realRunner) FetchPrune() error {
	return FetchPrune()
}

func (r *realRunner) PullPrune() error {
	return PullPrune()
}

func (r *realRunner) Stage(all bool) error {
	return Stage(all)
}

func (r *realRunner) Commit(opts CommitOptions) error {
	return Commit(opts)
}

func (r *realRunner) Rebase(remote, target string) error {
	return Rebase(remote, target)
}

func (r *realRunner) Passthrough(args ...string) error {
	return RunGitCommandInteractive(args...)
}

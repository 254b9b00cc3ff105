package actions

import (
	"context"

	"loki.dev/loki/internal/git"
	"loki.dev/loki/internal/runtime"
)

// PushOptions contains options for pushing the current branch
type PushOptions struct {
	// Force pushes with --force-with-lease (never a plain --force).
	Force bool
	// NoVerify bypasses the pre-push hook (set via no-hooks).
	NoVerify bool
}

// PushAction pushes the current branch to the default remote with upstream
// tracking. A detached HEAD fails before any invocation is issued.
func PushAction(opts PushOptions, ctx *runtime.Context) error {
	branch, err := ctx.Runner.CurrentBranch(context.Background())
	if err != nil {
		return err
	}

	return ctx.Runner.Push(git.PushOptions{
		Remote:         ctx.Config.Remote,
		Branch:         branch,
		ForceWithLease: opts.Force,
		NoVerify:       opts.NoVerify,
	})
}

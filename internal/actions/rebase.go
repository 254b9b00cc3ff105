package actions

import (
	"loki.dev/loki/internal/runtime"
)

// RebaseOptions contains options for rebasing the current branch
type RebaseOptions struct {
	// Target is the branch to rebase onto; empty means the default branch.
	Target string
}

// RebaseAction fetches, then rebases the current branch onto
// <remote>/<target>.
func RebaseAction(opts RebaseOptions, ctx *runtime.Context) error {
	target := opts.Target
	if target == "" {
		target = ctx.Config.Branch
	}

	if err := ctx.Runner.Fetch(); err != nil {
		return err
	}
	return ctx.Runner.Rebase(ctx.Config.Remote, target)
}

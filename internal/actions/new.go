package actions

import (
	"loki.dev/loki/internal/branchname"
	"loki.dev/loki/internal/git"
	"loki.dev/loki/internal/runtime"
	"loki.dev/loki/internal/tui"
)

// NewOptions contains options for creating a branch
type NewOptions struct {
	// Words are joined with "-" (after the LOKI_NEW_PREFIX prefix, if set)
	// to form the branch name.
	Words []string
	// Force pushes the new branch with --force-with-lease.
	Force bool
	// NoVerify bypasses the pre-push hook (set via no-hooks).
	NoVerify bool
}

// NewAction creates a branch named from the given words and pushes it
// upstream.
func NewAction(opts NewOptions, ctx *runtime.Context) error {
	name, err := branchname.Join(ctx.Config.NewPrefix, opts.Words)
	if err != nil {
		return err
	}

	ctx.Splog.Debug("creating branch %s", name)
	if err := ctx.Runner.CreateAndCheckoutBranch(name); err != nil {
		return err
	}

	if err := ctx.Runner.Push(git.PushOptions{
		Remote:         ctx.Config.Remote,
		Branch:         name,
		ForceWithLease: opts.Force,
		NoVerify:       opts.NoVerify,
	}); err != nil {
		return err
	}

	ctx.Splog.Info("Created %s and pushed it to %s.", tui.ColorBranch(name), ctx.Config.Remote)
	return nil
}

package actions

import (
	"loki.dev/loki/internal/runtime"
)

// SaveOptions contains options for the commit-then-push chain
type SaveOptions struct {
	All     bool
	Message string
	// NoVerify applies to the commit, the first hook-running invocation
	// of the chain (set via no-hooks).
	NoVerify bool
}

// SaveAction commits and then pushes. A failing commit aborts the chain;
// the push is never attempted.
func SaveAction(opts SaveOptions, ctx *runtime.Context) error {
	err := CommitAction(CommitOptions{
		All:      opts.All,
		Message:  opts.Message,
		NoVerify: opts.NoVerify,
	}, ctx)
	if err != nil {
		return err
	}

	return PushAction(PushOptions{}, ctx)
}

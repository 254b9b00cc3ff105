package actions

import (
	"loki.dev/loki/internal/runtime"
)

// PullAction pulls the current branch with pruning, then deletes local
// branches whose upstream disappeared.
func PullAction(ctx *runtime.Context) error {
	if err := ctx.Runner.PullPrune(); err != nil {
		return err
	}
	return sweepPrunedBranches(ctx)
}

// FetchAction fetches with pruning, then deletes local branches whose
// upstream disappeared.
func FetchAction(ctx *runtime.Context) error {
	if err := ctx.Runner.FetchPrune(); err != nil {
		return err
	}
	return sweepPrunedBranches(ctx)
}

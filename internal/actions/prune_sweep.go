package actions

import (
	"context"
	"sort"
	"strings"

	"loki.dev/loki/internal/runtime"
	"loki.dev/loki/internal/tui"
)

// sweepPrunedBranches deletes every local branch whose upstream tracking
// ref disappeared. Runs after a prune so the decision is based on
// post-prune remote-tracking state: branch list and surviving tracking refs
// are each snapshotted once, no per-branch subprocess. Local-only commits
// do not protect a branch; a gone upstream means the remote branch was
// deleted deliberately.
func sweepPrunedBranches(ctx *runtime.Context) error {
	qctx := context.Background()

	upstreams, err := ctx.Runner.LocalBranchUpstreams(qctx)
	if err != nil {
		return err
	}

	remote := ctx.Config.Remote
	tracking, err := ctx.Runner.RemoteTrackingRefs(remote)
	if err != nil {
		return err
	}

	current, err := ctx.Runner.CurrentBranch(qctx)
	if err != nil {
		// Detached HEAD cannot hold any branch in the sweep.
		current = ""
	}

	branches := make([]string, 0, len(upstreams))
	for branch := range upstreams {
		branches = append(branches, branch)
	}
	sort.Strings(branches)

	for _, branch := range branches {
		upstream := upstreams[branch]
		// Only branches tracking the configured remote are swept;
		// tracking refs of other remotes were not part of the prune.
		if upstream == "" || !strings.HasPrefix(upstream, remote+"/") {
			continue
		}
		if tracking[upstream] {
			continue
		}
		if branch == current {
			ctx.Splog.Warn("Upstream %s is gone but %s is checked out, not deleting it.", upstream, tui.ColorBranch(branch))
			continue
		}
		if err := ctx.Runner.DeleteBranch(qctx, branch); err != nil {
			return err
		}
		ctx.Splog.Info("Deleted %s (upstream %s is gone).", tui.ColorBranch(branch), upstream)
	}
	return nil
}

package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	lokierrors "loki.dev/loki/internal/errors"
)

func TestPullPrunesThenSweeps(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	runner.upstreams = map[string]string{
		"gone-branch": "origin/gone-branch",
		"main":        "origin/main",
	}
	runner.tracking = map[string]bool{"origin/main": true}

	err := PullAction(newTestContext(runner))

	require.NoError(t, err)
	require.Equal(t, "pull-prune", runner.calls[0], "prune must run before the sweep")
	require.Equal(t, []string{"gone-branch"}, runner.deleted)
}

func TestFetchPrunesThenSweeps(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	runner.upstreams = map[string]string{"stale": "origin/stale"}
	runner.tracking = map[string]bool{}

	err := FetchAction(newTestContext(runner))

	require.NoError(t, err)
	require.Equal(t, "fetch-prune", runner.calls[0])
	require.Equal(t, []string{"stale"}, runner.deleted)
}

func TestSweepKeepsBranchesWithLiveUpstream(t *testing.T) {
	t.Parallel()

	// A live tracking ref protects the branch even if it only has local
	// commits; a gone tracking ref does not.
	runner := newFakeRunner()
	runner.upstreams = map[string]string{
		"ahead-of-remote": "origin/ahead-of-remote",
		"gone":            "origin/gone",
	}
	runner.tracking = map[string]bool{"origin/ahead-of-remote": true}

	err := FetchAction(newTestContext(runner))

	require.NoError(t, err)
	require.Equal(t, []string{"gone"}, runner.deleted)
}

func TestSweepSkipsBranchesWithoutUpstream(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	runner.upstreams = map[string]string{"local-only": ""}
	runner.tracking = map[string]bool{}

	err := FetchAction(newTestContext(runner))

	require.NoError(t, err)
	require.Empty(t, runner.deleted)
}

func TestSweepSkipsBranchesTrackingOtherRemotes(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	runner.upstreams = map[string]string{"forked": "upstream/forked"}
	runner.tracking = map[string]bool{}

	err := FetchAction(newTestContext(runner))

	require.NoError(t, err)
	require.Empty(t, runner.deleted)
}

func TestSweepNeverDeletesCurrentBranch(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	runner.currentBranch = "gone"
	runner.upstreams = map[string]string{"gone": "origin/gone"}
	runner.tracking = map[string]bool{}

	err := FetchAction(newTestContext(runner))

	require.NoError(t, err)
	require.Empty(t, runner.deleted)
}

func TestSweepDeletesInStableOrder(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	runner.upstreams = map[string]string{
		"zeta":  "origin/zeta",
		"alpha": "origin/alpha",
		"mid":   "origin/mid",
	}
	runner.tracking = map[string]bool{}

	err := FetchAction(newTestContext(runner))

	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "mid", "zeta"}, runner.deleted)
}

func TestSweepStopsOnDeleteFailure(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	runner.upstreams = map[string]string{"gone": "origin/gone"}
	runner.tracking = map[string]bool{}
	runner.failOn["delete"] = lokierrors.NewCommandError([]string{"branch", "-D", "gone"}, "", 1, nil)

	err := FetchAction(newTestContext(runner))

	require.Error(t, err)
	require.Equal(t, 1, lokierrors.ExitStatus(err))
}

func TestPullFailureSkipsSweep(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	runner.failOn["pull-prune"] = lokierrors.NewCommandError([]string{"pull", "--prune"}, "", 1, nil)

	err := PullAction(newTestContext(runner))

	require.Error(t, err)
	require.Equal(t, []string{"pull-prune"}, runner.calls)
}

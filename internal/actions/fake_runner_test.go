package actions

import (
	"context"

	"loki.dev/loki/internal/config"
	"loki.dev/loki/internal/git"
	"loki.dev/loki/internal/runtime"
	"loki.dev/loki/internal/tui"
)

// fakeRunner is a recording git.Runner. Tests inspect the ordered call list
// and the typed records of each mutation.
type fakeRunner struct {
	calls []string // method invocation order

	currentBranch    string
	currentBranchErr error
	upstreams        map[string]string
	tracking         map[string]bool

	created      []string
	deleted      []string
	pushes       []git.PushOptions
	stages       []bool
	commits      []git.CommitOptions
	rebases      []string
	passthroughs [][]string

	failOn map[string]error // method name -> injected failure
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		currentBranch: "main",
		failOn:        map[string]error{},
	}
}

func (f *fakeRunner) record(name string) error {
	f.calls = append(f.calls, name)
	return f.failOn[name]
}

// mutations returns the recorded calls that issue mutating git invocations,
// ignoring queries.
func (f *fakeRunner) mutations() []string {
	queries := map[string]bool{
		"current-branch": true,
		"upstreams":      true,
		"tracking":       true,
	}
	var out []string
	for _, c := range f.calls {
		if !queries[c] {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeRunner) CurrentBranch(context.Context) (string, error) {
	f.calls = append(f.calls, "current-branch")
	if f.currentBranchErr != nil {
		return "", f.currentBranchErr
	}
	return f.currentBranch, nil
}

func (f *fakeRunner) LocalBranchUpstreams(context.Context) (map[string]string, error) {
	f.calls = append(f.calls, "upstreams")
	if err := f.failOn["upstreams"]; err != nil {
		return nil, err
	}
	return f.upstreams, nil
}

func (f *fakeRunner) RemoteTrackingRefs(string) (map[string]bool, error) {
	f.calls = append(f.calls, "tracking")
	if err := f.failOn["tracking"]; err != nil {
		return nil, err
	}
	return f.tracking, nil
}

func (f *fakeRunner) DeleteBranch(_ context.Context, branchName string) error {
	f.deleted = append(f.deleted, branchName)
	return f.record("delete")
}

func (f *fakeRunner) CreateAndCheckoutBranch(branchName string) error {
	f.created = append(f.created, branchName)
	return f.record("create")
}

func (f *fakeRunner) Push(opts git.PushOptions) error {
	f.pushes = append(f.pushes, opts)
	return f.record("push")
}

func (f *fakeRunner) Fetch() error {
	return f.record("fetch")
}

func (f *fakeRunner) FetchPrune() error {
	return f.record("fetch-prune")
}

func (f *fakeRunner) PullPrune() error {
	return f.record("pull-prune")
}

func (f *fakeRunner) Stage(all bool) error {
	f.stages = append(f.stages, all)
	return f.record("stage")
}

func (f *fakeRunner) Commit(opts git.CommitOptions) error {
	f.commits = append(f.commits, opts)
	return f.record("commit")
}

func (f *fakeRunner) Rebase(remote, target string) error {
	f.rebases = append(f.rebases, remote+"/"+target)
	return f.record("rebase")
}

func (f *fakeRunner) Passthrough(args ...string) error {
	f.passthroughs = append(f.passthroughs, args)
	return f.record("passthrough")
}

// newTestContext builds a runtime context around a fake runner with the
// stock origin/main configuration.
func newTestContext(runner git.Runner) *runtime.Context {
	return &runtime.Context{
		Runner: runner,
		Splog:  tui.NewSplog(),
		Config: &config.Config{
			Remote: config.DefaultRemote,
			Branch: config.DefaultBranch,
		},
	}
}

package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lokierrors "loki.dev/loki/internal/errors"
)

// CurrentBranch returns the name of the branch HEAD is on.
// Returns ErrDetachedHead when HEAD is not on a named branch.
func CurrentBranch(ctx context.Context) (string, error) {
	branch, err := RunGitCommandWithContext(ctx, "symbolic-ref", "--short", "-q", "HEAD")
	if err != nil {
		// with -q, exit code 1 specifically means HEAD is not symbolic;
		// anything else is a real failure and must not be masked
		var cmdErr *lokierrors.CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode == 1 {
			return "", lokierrors.ErrDetachedHead
		}
		return "", err
	}
	return branch, nil
}

// LocalBranchUpstreams returns every local branch mapped to its configured
// upstream tracking ref in "<remote>/<branch>" form. Branches without an
// upstream map to the empty string.
func LocalBranchUpstreams(ctx context.Context) (map[string]string, error) {
	lines, err := RunGitCommandLines(ctx,
		"for-each-ref", "refs/heads",
		"--format=%(refname:short)%09%(upstream:short)")
	if err != nil {
		return nil, fmt.Errorf("failed to list local branches: %w", err)
	}

	upstreams := make(map[string]string, len(lines))
	for _, line := range lines {
		branch, upstream, _ := strings.Cut(line, "\t")
		if branch == "" {
			continue
		}
		upstreams[branch] = upstream
	}
	return upstreams, nil
}

package git

import (
	"fmt"
	"os"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	lokierrors "loki.dev/loki/internal/errors"
)

// openRepository opens the repository containing the default runner's
// working directory (or the process working directory).
func openRepository() (*gogit.Repository, error) {
	dir := defaultRunner.workingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lokierrors.ErrNotARepository, err)
	}
	return repo, nil
}

// EnsureRepository verifies that the working directory is inside a git
// repository. Run before any command so usage errors surface without
// spawning git.
func EnsureRepository() error {
	_, err := openRepository()
	return err
}

// RemoteTrackingRefs returns the set of remote-tracking branch refs that
// currently exist for remote, keyed "<remote>/<branch>". Read in-process so
// the prune sweep costs no extra subprocess.
func RemoteTrackingRefs(remote string) (map[string]bool, error) {
	repo, err := openRepository()
	if err != nil {
		return nil, err
	}

	refs, err := repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}

	prefix := "refs/remotes/" + remote + "/"
	tracking := make(map[string]bool)
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		short := strings.TrimPrefix(name, "refs/remotes/")
		if !strings.HasSuffix(short, "/HEAD") {
			tracking[short] = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk references: %w", err)
	}
	return tracking, nil
}

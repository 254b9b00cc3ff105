// Package testhelpers provides a real-git repository fixture for tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a git repository created for a test.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new repository in dir with a main branch and a
// test-local user configured.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	cmd := exec.Command("git",
		"-c", "init.defaultBranch=main",
		"-c", "core.autocrlf=false",
		"init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	if err := repo.RunGit("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGit("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// RunGit executes a git command in the repository directory.
func (r *GitRepo) RunGit(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	var out strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s failed: %w\n%s", strings.Join(args, " "), err, out.String())
	}
	return nil
}

// RunGitOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CommitFile writes a file and commits it.
func (r *GitRepo) CommitFile(name, content, message string) error {
	path := filepath.Join(r.Dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := r.RunGit("add", name); err != nil {
		return err
	}
	return r.RunGit("commit", "-m", message)
}

// CheckoutNew creates and checks out a branch.
func (r *GitRepo) CheckoutNew(branch string) error {
	return r.RunGit("switch", "--create", branch)
}

// Checkout switches to an existing branch.
func (r *GitRepo) Checkout(branch string) error {
	return r.RunGit("switch", branch)
}

// AddBareRemote creates a bare repository at remoteDir, adds it as origin
// and pushes main with upstream tracking.
func (r *GitRepo) AddBareRemote(remoteDir string) error {
	cmd := exec.Command("git", "init", "--bare", remoteDir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to init bare remote: %w", err)
	}
	if err := r.RunGit("remote", "add", "origin", remoteDir); err != nil {
		return err
	}
	return r.RunGit("push", "--set-upstream", "origin", "main")
}

package git

import (
	"context"
	"fmt"
)

// CreateAndCheckoutBranch creates a new branch at HEAD and switches to it.
func CreateAndCheckoutBranch(branchName string) error {
	if err := RunGitCommandInteractive("switch", "--create", branchName); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branchName, err)
	}
	return nil
}

// DeleteBranch force-deletes a local branch. Output is captured; the prune
// sweep reports deletions itself.
func DeleteBranch(ctx context.Context, branchName string) error {
	if _, err := RunGitCommandWithContext(ctx, "branch", "-D", branchName); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

package cli

import (
	"github.com/spf13/cobra"

	"loki.dev/loki/internal/actions"
	"loki.dev/loki/internal/runtime"
)

// newPullCmd creates the pull command
func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull with pruning, then delete local branches whose upstream is gone",
		Long: `Pull the current branch with --prune, then delete every local branch
whose upstream tracking ref disappeared. Branches still tracking a live
remote branch are never touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := runtime.NewContext()
			defer func() { _ = ctx.Close() }()
			return actions.PullAction(ctx)
		},
	}
}

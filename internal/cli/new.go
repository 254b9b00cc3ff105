package cli

import (
	"github.com/spf13/cobra"

	"loki.dev/loki/internal/actions"
	"loki.dev/loki/internal/runtime"
)

// newNewCmd creates the new command
func newNewCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "new <word>...",
		Aliases: []string{"n"},
		Short:   "Create a branch from the given words and push it upstream",
		Long: `Create a new branch and push it to the remote with upstream tracking.

All words are joined with "-" to form the branch name, so "lk new cool
branch" creates "cool-branch". When LOKI_NEW_PREFIX is set it is prepended:
with LOKI_NEW_PREFIX=feat the same invocation creates "feat-cool-branch".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := runtime.NewContext()
			defer func() { _ = ctx.Close() }()
			return actions.NewAction(actions.NewOptions{
				Words: args,
				Force: force,
			}, ctx)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Push the new branch with --force-with-lease")

	return cmd
}

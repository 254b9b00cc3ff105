package cli

import (
	"github.com/spf13/cobra"

	"loki.dev/loki/internal/actions"
	"loki.dev/loki/internal/runtime"
)

// newRebaseCmd creates the rebase command
func newRebaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebase [target]",
		Short: "Fetch, then rebase the current branch onto the target branch",
		Long: `Fetch the remote, then rebase the current branch onto
<remote>/<target>. The target defaults to main (or LOKI_DEFAULT_BRANCH).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) > 0 {
				target = args[0]
			}
			ctx := runtime.NewContext()
			defer func() { _ = ctx.Close() }()
			return actions.RebaseAction(actions.RebaseOptions{
				Target: target,
			}, ctx)
		},
	}
}

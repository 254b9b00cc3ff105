package cli

import (
	"github.com/spf13/cobra"

	"loki.dev/loki/internal/actions"
	"loki.dev/loki/internal/runtime"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "push",
		Aliases: []string{"p"},
		Short:   "Push the current branch with upstream tracking",
		Long: `Push the current branch to the remote with upstream tracking.

With --force the push uses --force-with-lease, which aborts if the remote
ref moved since it was last observed; a plain --force is never issued.
Fails before invoking git when HEAD is detached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := runtime.NewContext()
			defer func() { _ = ctx.Close() }()
			return actions.PushAction(actions.PushOptions{
				Force: force,
			}, ctx)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Force push with --force-with-lease")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"loki.dev/loki/internal/actions"
	"loki.dev/loki/internal/runtime"
)

// newFetchCmd creates the fetch command
func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch with pruning, then delete local branches whose upstream is gone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := runtime.NewContext()
			defer func() { _ = ctx.Close() }()
			return actions.FetchAction(ctx)
		},
	}
}

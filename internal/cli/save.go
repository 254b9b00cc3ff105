package cli

import (
	"github.com/spf13/cobra"

	"loki.dev/loki/internal/actions"
	"loki.dev/loki/internal/runtime"
)

// newSaveCmd creates the save command
func newSaveCmd() *cobra.Command {
	var (
		all     bool
		message string
	)

	cmd := &cobra.Command{
		Use:     "save",
		Aliases: []string{"s"},
		Short:   "Commit and push in one step",
		Long: `Commit staged-up changes, then push the current branch with upstream
tracking. The push is skipped when the commit fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := runtime.NewContext()
			defer func() { _ = ctx.Close() }()
			return actions.SaveAction(actions.SaveOptions{
				All:     all,
				Message: message,
			}, ctx)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Stage all changes, including untracked files")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")

	return cmd
}

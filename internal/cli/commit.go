package cli

import (
	"github.com/spf13/cobra"

	"loki.dev/loki/internal/actions"
	"loki.dev/loki/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var (
		all     bool
		message string
	)

	cmd := &cobra.Command{
		Use:     "commit",
		Aliases: []string{"c"},
		Short:   "Stage changes and commit them",
		Long: `Stage updates to tracked files (everything with --all) and commit.

Without --message you are prompted for one; leave the prompt empty to fall
through to git's editor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := runtime.NewContext()
			defer func() { _ = ctx.Close() }()
			return actions.CommitAction(actions.CommitOptions{
				All:     all,
				Message: message,
			}, ctx)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Stage all changes, including untracked files")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"loki.dev/loki/internal/actions"
	"loki.dev/loki/internal/runtime"
)

// newNoHooksCmd creates the no-hooks command
func newNoHooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "no-hooks <command> [args...]",
		Aliases: []string{"x"},
		Short:   "Run a command with git hooks bypassed",
		Long: `Run a command with --no-verify so git hooks are bypassed.

Wrapping one of loki's own verbs (new, push, commit, save) runs its usual
invocation chain with hooks bypassed on the first hook-running step; any
other command is handed to git verbatim with --no-verify inserted after
the subcommand.`,
		// Everything after the verb belongs to the wrapped command.
		DisableFlagParsing: true,
		Args:               cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := runtime.NewContext()
			defer func() { _ = ctx.Close() }()
			return actions.NoHooksAction(actions.NoHooksOptions{
				Args: args,
			}, ctx)
		},
	}
}

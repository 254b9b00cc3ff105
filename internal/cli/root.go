// Package cli wires the cobra command surface to the command actions.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"loki.dev/loki/internal/git"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lk",
		Short: "Loki is a command line tool for speeding up common git workflows",
		Long: `Loki is a command line tool for speeding up common git workflows.

Every subcommand maps to one or more plain git invocations with opinionated
defaults: pushes always set upstream tracking, forced pushes always use
--force-with-lease, and pull/fetch prune both remote-tracking refs and the
local branches whose upstream disappeared.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:    cobra.NoArgs,
		// A failed git invocation already streamed its own stderr; the
		// wrapper must not add diagnosis of its own. main prints the
		// remaining error kinds.
		SilenceErrors: true,
		// Usage is silenced only once flags and args have parsed, so
		// unknown subcommands and flags still print help to stderr while
		// runtime failures stay quiet.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !cmd.HasParent() {
				// bare "lk" only prints help, no repository needed
				return nil
			}
			return git.EnsureRepository()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(
		newNewCmd(),
		newPushCmd(),
		newPullCmd(),
		newFetchCmd(),
		newSaveCmd(),
		newCommitCmd(),
		newRebaseCmd(),
		newNoHooksCmd(),
	)

	return rootCmd
}

package actions

import (
	"loki.dev/loki/internal/git"
	"loki.dev/loki/internal/runtime"
	"loki.dev/loki/internal/tui"
)

// CommitOptions contains options for committing
type CommitOptions struct {
	// All stages every change including untracked files; otherwise only
	// updates to tracked files are staged.
	All bool
	// Message is the commit message. When empty, a terminal prompt asks
	// for one; an empty answer falls through to git's editor.
	Message string
	// NoVerify bypasses the pre-commit and commit-msg hooks (set via
	// no-hooks).
	NoVerify bool
}

// CommitAction stages changes and commits them.
func CommitAction(opts CommitOptions, ctx *runtime.Context) error {
	if err := ctx.Runner.Stage(opts.All); err != nil {
		return err
	}

	message := opts.Message
	if message == "" {
		prompted, err := tui.PromptCommitMessage()
		if err != nil {
			return err
		}
		message = prompted
	}

	return ctx.Runner.Commit(git.CommitOptions{
		Message:  message,
		NoVerify: opts.NoVerify,
	})
}

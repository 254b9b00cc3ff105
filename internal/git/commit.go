package git

// CommitOptions contains options for creating a commit.
type CommitOptions struct {
	// Message is the commit message. Empty opens git's editor.
	Message  string
	NoVerify bool
}

// Stage stages updates to tracked files, or all changes including untracked
// files when all is set.
func Stage(all bool) error {
	if all {
		return RunGitCommandInteractive("add", "--all")
	}
	return RunGitCommandInteractive("add", "--update")
}

// Commit creates a commit. Runs interactively so the editor and any commit
// hooks behave exactly as they do under plain git.
func Commit(opts CommitOptions) error {
	return RunGitCommandInteractive(commitArgs(opts)...)
}

func commitArgs(opts CommitOptions) []string {
	args := []string{"commit"}
	if opts.NoVerify {
		args = append(args, "--no-verify")
	}
	if opts.Message != "" {
		args = append(args, "--message", opts.Message)
	}
	return args
}

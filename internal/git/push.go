package git

// PushOptions contains options for pushing a branch.
type PushOptions struct {
	Remote         string
	Branch         string
	ForceWithLease bool
	NoVerify       bool
}

// Push pushes a branch to its remote with upstream tracking. Forced pushes
// always use --force-with-lease; a plain --force is never issued.
func Push(opts PushOptions) error {
	return RunGitCommandInteractive(pushArgs(opts)...)
}

func pushArgs(opts PushOptions) []string {
	args := []string{"push", "--set-upstream"}
	if opts.ForceWithLease {
		args = append(args, "--force-with-lease")
	}
	if opts.NoVerify {
		args = append(args, "--no-verify")
	}
	return append(args, opts.Remote, opts.Branch)
}

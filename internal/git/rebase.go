package git

// Fetch updates remote-tracking refs without pruning.
func Fetch() error {
	return RunGitCommandInteractive("fetch")
}

// Rebase rebases the current branch onto <remote>/<target>.
func Rebase(remote, target string) error {
	return RunGitCommandInteractive("rebase", remote+"/"+target)
}

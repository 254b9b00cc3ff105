package git

// PullPrune pulls the current branch and prunes remote-tracking refs whose
// remote branches are gone.
func PullPrune() error {
	return RunGitCommandInteractive("pull", "--prune")
}

// FetchPrune fetches and prunes remote-tracking refs whose remote branches
// are gone.
func FetchPrune() error {
	return RunGitCommandInteractive("fetch", "--prune")
}

// Package git wraps invocations of the git binary and uses go-git for
// in-process repository access. Queries capture output; mutating commands
// run with inherited standard streams so git's own output and prompts pass
// through unmodified.
package git

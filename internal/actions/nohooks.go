package actions

import (
	"fmt"

	"loki.dev/loki/internal/runtime"
)

// NoHooksOptions contains the wrapped command and its arguments, verbatim
type NoHooksOptions struct {
	Args []string
}

// NoHooksAction re-runs a command with git hooks bypassed. Wrapper verbs
// (new, push, commit, save) run their own invocation chains with
// --no-verify injected into the first hook-running invocation only; any
// other command goes to git verbatim with --no-verify inserted after the
// subcommand.
func NoHooksAction(opts NoHooksOptions, ctx *runtime.Context) error {
	if len(opts.Args) == 0 {
		return fmt.Errorf("no-hooks requires a command to wrap")
	}

	verb, rest := opts.Args[0], opts.Args[1:]
	switch verb {
	case "new", "n":
		newOpts, err := parseNewArgs(rest)
		if err != nil {
			return err
		}
		newOpts.NoVerify = true
		return NewAction(newOpts, ctx)
	case "push", "p":
		pushOpts, err := parsePushArgs(rest)
		if err != nil {
			return err
		}
		pushOpts.NoVerify = true
		return PushAction(pushOpts, ctx)
	case "commit", "c":
		commitOpts, err := parseCommitArgs(rest)
		if err != nil {
			return err
		}
		commitOpts.NoVerify = true
		return CommitAction(commitOpts, ctx)
	case "save", "s":
		commitOpts, err := parseCommitArgs(rest)
		if err != nil {
			return err
		}
		return SaveAction(SaveOptions{
			All:      commitOpts.All,
			Message:  commitOpts.Message,
			NoVerify: true,
		}, ctx)
	default:
		gitArgs := make([]string, 0, len(opts.Args)+1)
		gitArgs = append(gitArgs, verb, "--no-verify")
		gitArgs = append(gitArgs, rest...)
		return ctx.Runner.Passthrough(gitArgs...)
	}
}

func parseNewArgs(args []string) (NewOptions, error) {
	var opts NewOptions
	for _, arg := range args {
		switch arg {
		case "-f", "--force":
			opts.Force = true
		default:
			opts.Words = append(opts.Words, arg)
		}
	}
	return opts, nil
}

func parsePushArgs(args []string) (PushOptions, error) {
	var opts PushOptions
	for _, arg := range args {
		switch arg {
		case "-f", "--force":
			opts.Force = true
		default:
			return opts, fmt.Errorf("unknown argument for wrapped push: %s", arg)
		}
	}
	return opts, nil
}

func parseCommitArgs(args []string) (CommitOptions, error) {
	var opts CommitOptions
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-a", "--all":
			opts.All = true
		case "-m", "--message":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("flag needs an argument: %s", arg)
			}
			i++
			opts.Message = args[i]
		default:
			return opts, fmt.Errorf("unknown argument for wrapped commit: %s", arg)
		}
	}
	return opts, nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	"loki.dev/loki/internal/cli"
	lokierrors "loki.dev/loki/internal/errors"
	"loki.dev/loki/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// A failed git invocation already wrote its own stderr; only the
		// wrapper's own errors (usage, preconditions) need printing.
		var cmdErr *lokierrors.CommandError
		if !errors.As(err, &cmdErr) {
			fmt.Fprintln(os.Stderr, tui.ColorError("error: ")+err.Error())
		}
		os.Exit(lokierrors.ExitStatus(err))
	}
}

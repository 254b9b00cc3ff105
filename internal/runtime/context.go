// Package runtime provides the context type threaded through command
// actions, bundling the git runner, logger and configuration.
package runtime

import (
	"loki.dev/loki/internal/config"
	"loki.dev/loki/internal/git"
	"loki.dev/loki/internal/tui"
)

// Context provides access to the git runner and output for commands
type Context struct {
	Runner git.Runner
	Splog  *tui.Splog
	Config *config.Config
}

// NewContext creates a context from the environment configuration
func NewContext() *Context {
	cfg := config.Load()

	splog := tui.NewSplog()
	if cfg.LogFile != "" {
		fileSplog, err := tui.NewSplogWithConfig(cfg.LogFile)
		if err != nil {
			splog.Warn("file logging disabled: %v", err)
		} else {
			splog = fileSplog
		}
	}

	return &Context{
		Runner: git.NewRealRunner(),
		Splog:  splog,
		Config: cfg,
	}
}

// Close releases the file log writer when one was configured.
func (c *Context) Close() error {
	return c.Splog.Close()
}

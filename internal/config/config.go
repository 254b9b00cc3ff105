// Package config reads loki's environment-driven configuration.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultRemote is the remote branches are pushed to and fetched from
	// when LOKI_DEFAULT_REMOTE is not set.
	DefaultRemote = "origin"

	// DefaultBranch is the rebase target when none is given on the command
	// line and LOKI_DEFAULT_BRANCH is not set.
	DefaultBranch = "main"
)

// Config holds the settings read from LOKI_* environment variables.
type Config struct {
	// NewPrefix is prepended (with a "-") to every branch name built by
	// `lk new`. Empty means no prefix.
	NewPrefix string

	// Remote is the remote used for push, pull, fetch and rebase.
	Remote string

	// Branch is the default rebase target.
	Branch string

	// LogFile is the path of the rotating invocation log. Empty disables
	// file logging.
	LogFile string
}

// Load reads configuration from the environment.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("loki")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("default_remote", DefaultRemote)
	v.SetDefault("default_branch", DefaultBranch)

	return &Config{
		NewPrefix: strings.TrimSpace(v.GetString("new_prefix")),
		Remote:    v.GetString("default_remote"),
		Branch:    v.GetString("default_branch"),
		LogFile:   v.GetString("log_file"),
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOKI_NEW_PREFIX", "")
	t.Setenv("LOKI_DEFAULT_REMOTE", "")
	t.Setenv("LOKI_DEFAULT_BRANCH", "")
	t.Setenv("LOKI_LOG_FILE", "")

	cfg := Load()

	require.Empty(t, cfg.NewPrefix)
	require.Equal(t, "origin", cfg.Remote)
	require.Equal(t, "main", cfg.Branch)
	require.Empty(t, cfg.LogFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LOKI_NEW_PREFIX", "feat")
	t.Setenv("LOKI_DEFAULT_REMOTE", "upstream")
	t.Setenv("LOKI_DEFAULT_BRANCH", "develop")
	t.Setenv("LOKI_LOG_FILE", "/tmp/lk.log")

	cfg := Load()

	require.Equal(t, "feat", cfg.NewPrefix)
	require.Equal(t, "upstream", cfg.Remote)
	require.Equal(t, "develop", cfg.Branch)
	require.Equal(t, "/tmp/lk.log", cfg.LogFile)
}

func TestLoadTrimsPrefixWhitespace(t *testing.T) {
	t.Setenv("LOKI_NEW_PREFIX", "  feat  ")

	cfg := Load()

	require.Equal(t, "feat", cfg.NewPrefix)
}

package branchname

import (
	"testing"

	"github.com/stretchr/testify/require"

	lokierrors "loki.dev/loki/internal/errors"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefix   string
		words    []string
		expected string
	}{
		{
			name:     "single word passes through",
			words:    []string{"feature"},
			expected: "feature",
		},
		{
			name:     "words joined with hyphens",
			words:    []string{"cool", "branch"},
			expected: "cool-branch",
		},
		{
			name:     "case is preserved",
			words:    []string{"Fix", "LoginBug"},
			expected: "Fix-LoginBug",
		},
		{
			name:     "prefix prepended with hyphen",
			prefix:   "feat",
			words:    []string{"a", "b", "c"},
			expected: "feat-a-b-c",
		},
		{
			name:     "embedded whitespace split into words",
			words:    []string{"cool branch", "name"},
			expected: "cool-branch-name",
		},
		{
			name:     "blank words dropped",
			words:    []string{"cool", "  ", "branch"},
			expected: "cool-branch",
		},
		{
			name:     "prefix with single word",
			prefix:   "kyle",
			words:    []string{"fix"},
			expected: "kyle-fix",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			name, err := Join(tt.prefix, tt.words)
			require.NoError(t, err)
			require.Equal(t, tt.expected, name)
			require.NotContains(t, name, " ")
		})
	}
}

func TestJoinInvalidPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "embedded space", prefix: "my prefix"},
		{name: "tab", prefix: "feat\t"},
		{name: "only whitespace", prefix: " "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Join(tt.prefix, []string{"branch"})
			require.ErrorIs(t, err, lokierrors.ErrInvalidPrefix)
		})
	}
}

func TestJoinNoLeadingOrTrailingHyphen(t *testing.T) {
	t.Parallel()

	name, err := Join("", []string{"a", "b"})
	require.NoError(t, err)
	require.False(t, name[0] == '-')
	require.False(t, name[len(name)-1] == '-')
}

func TestJoinEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words []string
	}{
		{name: "no words", words: nil},
		{name: "only blank words", words: []string{"", "   "}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Join("feat", tt.words)
			require.ErrorIs(t, err, lokierrors.ErrEmptyBranchName)
		})
	}
}

// Package branchname builds git branch names from free-form command line words.
package branchname

import (
	"strings"
	"unicode"

	lokierrors "loki.dev/loki/internal/errors"
)

// Join joins words with "-" to form a branch name. When prefix is non-empty
// it is prepended followed by a "-". Words are split on any embedded
// whitespace first, so the result never contains whitespace.
func Join(prefix string, words []string) (string, error) {
	if strings.ContainsFunc(prefix, unicode.IsSpace) {
		return "", lokierrors.ErrInvalidPrefix
	}

	parts := make([]string, 0, len(words))
	for _, word := range words {
		parts = append(parts, strings.Fields(word)...)
	}
	if len(parts) == 0 {
		return "", lokierrors.ErrEmptyBranchName
	}

	name := strings.Join(parts, "-")
	if prefix != "" {
		name = prefix + "-" + name
	}
	return name, nil
}

package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// InteractionDisabled reports whether interactive prompts must be skipped:
// stdin is not a terminal, or LOKI_NO_INTERACTIVE is set (used by tests).
func InteractionDisabled() bool {
	if os.Getenv("LOKI_NO_INTERACTIVE") != "" {
		return true
	}
	return !isatty.IsTerminal(os.Stdin.Fd())
}

// PromptCommitMessage asks for a commit message. Returns the empty string
// when prompts are disabled or the user leaves the input empty; the caller
// then falls through to git's own editor flow.
func PromptCommitMessage() (string, error) {
	if InteractionDisabled() {
		return "", nil
	}

	var message string
	prompt := &survey.Input{
		Message: "Commit message (leave empty to open the editor):",
	}
	if err := survey.AskOne(prompt, &message); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return strings.TrimSpace(message), nil
}

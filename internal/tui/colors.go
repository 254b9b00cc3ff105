package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// colorEnabled is false when stderr is not a terminal, so piped output
// stays free of escape sequences.
var colorEnabled = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

// Dim renders text dimmed
func Dim(text string) string {
	if !colorEnabled {
		return text
	}
	return dimStyle.Render(text)
}

// ColorBranch renders a branch name highlighted
func ColorBranch(name string) string {
	if !colorEnabled {
		return name
	}
	return branchStyle.Render(name)
}

// ColorError renders text red
func ColorError(text string) string {
	if !colorEnabled {
		return text
	}
	return errorStyle.Render(text)
}

// EchoCommand announces a child invocation dimmed on stderr before it runs
func EchoCommand(program string, args []string) {
	fmt.Fprintln(os.Stderr, Dim(fmt.Sprintf("$ %s %s", program, strings.Join(args, " "))))
}

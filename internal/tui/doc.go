// Package tui provides terminal output: the Splog logger, lipgloss styles
// and interactive prompts.
package tui

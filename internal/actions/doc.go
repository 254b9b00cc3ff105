// Package actions implements the command verbs. Each verb has an options
// struct and an action function that issues its git invocations in order,
// stopping at the first failure.
package actions

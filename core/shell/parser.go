// Package shell holds the text transformations applied to every line the
// interpreter reads, before any command is looked up.
//
// There is deliberately no quoting, escaping, globbing or variable syntax: a
// line is split on whitespace and nothing else, so a single argument can
// never contain a space.
package shell

import (
	"os"
	"strings"
)

const (
	// EnvHome is the variable substituted for HomeShortcut.
	EnvHome = "HOME"

	// HomeShortcut is replaced by the value of $HOME wherever it appears.
	HomeShortcut = "~"
)

// Tokenize splits line into words separated by runs of whitespace.
//
// Leading, trailing and repeated separators never produce empty words, and
// the result is empty (but non-nil) for a blank line.
func Tokenize(line string) []string {
	words := strings.Fields(line)
	if words == nil {
		return []string{}
	}
	return words
}

// ExpandShortcuts replaces every HomeShortcut in line with the home
// directory reported by lookupEnv. If the home variable is unset the line is
// returned unchanged.
//
// The substitution is purely textual: a "~" in the middle of a word is
// replaced just like a leading one.
func ExpandShortcuts(line string, lookupEnv func(string) (string, bool)) string {
	home, ok := lookupEnv(EnvHome)
	if !ok {
		return line
	}
	return strings.ReplaceAll(line, HomeShortcut, home)
}

// ExpandHome is ExpandShortcuts against the live process environment.
func ExpandHome(line string) string {
	return ExpandShortcuts(line, os.LookupEnv)
}

package qdisc

import "github.com/kballard/go-shellquote"

// SplitTokens splits an option string into the token sequence consumed by
// Codec.ParseOptions, honoring shell quoting rules.
func SplitTokens(s string) ([]string, error) {
	return shellquote.Split(s)
}

// JoinTokens quotes tokens back into a single option string.
func JoinTokens(tokens ...string) string {
	return shellquote.Join(tokens...)
}

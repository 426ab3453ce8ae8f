// Package transcript normalizes and tokenizes recognized STT text.
package transcript

import "strings"

// Normalize trims, lowercases, and collapses whitespace runs to single spaces.
//
// The result is stable: normalizing already-normalized text yields the same
// text. The lowercase pass is Unicode-aware, so accented Latin characters
// fold as expected ("YUI, Dime" -> "yui, dime").
func Normalize(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	return strings.Join(fields, " ")
}

// Tokens returns the whitespace-delimited tokens of the normalized text.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}

package words

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Normalize trims surrounding whitespace and lowercases the literal.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Signature returns the canonical bucket key for a literal: its lowercase
// letters sorted ascending. Anagrams share a signature.
// Example: "Tea" -> "aet"
func Signature(literal string) string {
	runes := []rune(strings.ToLower(literal))
	slices.Sort(runes)
	return string(runes)
}

// Length returns the number of characters in the literal.
func Length(literal string) int {
	return utf8.RuneCountInString(literal)
}

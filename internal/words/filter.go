package words

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Filter decides which raw lines of a word list are admitted into the
// dictionary.
type Filter struct {
	MinLetters int
	MaxLetters int // 0 means unbounded
	// Strict rejects words that start with an uppercase letter (proper
	// nouns) or contain anything other than letters.
	Strict bool
}

// Accept reports whether raw passes the filter and returns its normalized
// form.
func (f Filter) Accept(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	if f.Strict {
		first, _ := utf8.DecodeRuneInString(trimmed)
		if unicode.IsUpper(first) {
			return "", false
		}
		if strings.IndexFunc(trimmed, func(r rune) bool { return !unicode.IsLetter(r) }) >= 0 {
			return "", false
		}
	}

	n := utf8.RuneCountInString(trimmed)
	if n < f.MinLetters {
		return "", false
	}
	if f.MaxLetters > 0 && n > f.MaxLetters {
		return "", false
	}

	return Normalize(trimmed), true
}

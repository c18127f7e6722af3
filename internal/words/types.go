// Package words defines the dictionary word entity and the helpers that
// normalize, filter and sign word literals.
package words

import "time"

// Word is a dictionary entry.
type Word struct {
	Literal string
	Hidden  bool // valid answer that puzzles list as a bonus word
	AddedAt time.Time
}

// New returns a visible word for the given literal.
func New(literal string) Word {
	return Word{Literal: literal}
}

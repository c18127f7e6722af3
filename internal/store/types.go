package store

import (
	"errors"
	"time"
)

var (
	// ErrNotInitialized is returned when the database has no schema yet.
	ErrNotInitialized = errors.New("database not initialized: run 'wpg load <file>' first")
	// ErrWordNotFound is returned when a word is not in the dictionary.
	ErrWordNotFound = errors.New("word not found")
)

// UsedKey records a bucket key that has already produced a puzzle.
type UsedKey struct {
	Key    string
	UsedAt time.Time
}

// PuzzleRecord is the database entry for a generated puzzle file.
type PuzzleRecord struct {
	ID        string
	Letters   string
	WordCount int
	Score     int
	Path      string
	CreatedAt time.Time
}

// LengthCount is one row of the dictionary's word length histogram.
type LengthCount struct {
	Length int
	Words  int
	Hidden int
}

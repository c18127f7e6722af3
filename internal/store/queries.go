package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blackwell-systems/wpg/internal/words"
)

// Word operations

// InsertWord inserts or replaces a word in the database.
func (s *Store) InsertWord(w *words.Word) error {
	addedAt := w.AddedAt
	if addedAt.IsZero() {
		addedAt = time.Now().UTC()
	}

	query := `
		INSERT OR REPLACE INTO words (literal, length, hidden, added_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		w.Literal,
		words.Length(w.Literal),
		w.Hidden,
		addedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert word %s: %w", w.Literal, classify(err))
	}

	return nil
}

// InsertWords adds literals as visible words in a single transaction.
// Literals already in the dictionary keep their current state. Returns the
// number of words that were new.
func (s *Store) InsertWords(literals []string) (int, error) {
	return s.writeWords(false, literals)
}

// ReplaceWords makes literals the whole dictionary. The old words are
// removed in the same transaction, so a failed insert leaves them intact.
// Returns the number of words inserted.
func (s *Store) ReplaceWords(literals []string) (int, error) {
	return s.writeWords(true, literals)
}

func (s *Store) writeWords(replace bool, literals []string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if replace {
		if _, err := tx.Exec(`DELETE FROM words`); err != nil {
			return 0, fmt.Errorf("failed to clear words: %w", classify(err))
		}
	}

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO words (literal, length, hidden, added_at)
		VALUES (?, ?, 0, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare word insert: %w", classify(err))
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	added := 0
	for _, literal := range literals {
		result, err := stmt.Exec(literal, words.Length(literal), now)
		if err != nil {
			return 0, fmt.Errorf("failed to insert word %s: %w", literal, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get rows affected: %w", err)
		}
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit words: %w", err)
	}

	return added, nil
}

// GetWord retrieves a word by literal.
func (s *Store) GetWord(literal string) (*words.Word, error) {
	query := `
		SELECT literal, hidden, added_at
		FROM words
		WHERE literal = ?
	`

	var w words.Word
	var addedAt string
	err := s.db.QueryRow(query, literal).Scan(&w.Literal, &w.Hidden, &addedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrWordNotFound, literal)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word %s: %w", literal, classify(err))
	}

	w.AddedAt, err = time.Parse(time.RFC3339, addedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse added_at for %s: %w", literal, err)
	}

	return &w, nil
}

// ListWords returns all words, shortest first and then alphabetically.
func (s *Store) ListWords() ([]words.Word, error) {
	query := `
		SELECT literal, hidden, added_at
		FROM words
		ORDER BY length, literal
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", classify(err))
	}
	defer rows.Close()

	var out []words.Word
	for rows.Next() {
		var w words.Word
		var addedAt string
		if err := rows.Scan(&w.Literal, &w.Hidden, &addedAt); err != nil {
			return nil, fmt.Errorf("failed to scan word row: %w", err)
		}

		w.AddedAt, err = time.Parse(time.RFC3339, addedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse added_at for %s: %w", w.Literal, err)
		}

		out = append(out, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating words: %w", err)
	}

	return out, nil
}

// DeleteWord removes a word from the database.
func (s *Store) DeleteWord(literal string) error {
	result, err := s.db.Exec(`DELETE FROM words WHERE literal = ?`, literal)
	if err != nil {
		return fmt.Errorf("failed to delete word %s: %w", literal, classify(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrWordNotFound, literal)
	}

	return nil
}

// SetHidden changes the hidden flag of an existing word.
func (s *Store) SetHidden(literal string, hidden bool) error {
	result, err := s.db.Exec(`UPDATE words SET hidden = ? WHERE literal = ?`, hidden, literal)
	if err != nil {
		return fmt.Errorf("failed to update word %s: %w", literal, classify(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrWordNotFound, literal)
	}

	return nil
}

// ClearWords removes every word from the dictionary.
func (s *Store) ClearWords() error {
	if _, err := s.db.Exec(`DELETE FROM words`); err != nil {
		return fmt.Errorf("failed to clear words: %w", classify(err))
	}
	return nil
}

// CountWords returns the number of words in the dictionary.
func (s *Store) CountWords() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", classify(err))
	}
	return n, nil
}

// LengthHistogram returns word counts grouped by length, shortest first.
func (s *Store) LengthHistogram() ([]LengthCount, error) {
	query := `
		SELECT length, COUNT(*), COALESCE(SUM(hidden), 0)
		FROM words
		GROUP BY length
		ORDER BY length
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to build length histogram: %w", classify(err))
	}
	defer rows.Close()

	var out []LengthCount
	for rows.Next() {
		var lc LengthCount
		if err := rows.Scan(&lc.Length, &lc.Words, &lc.Hidden); err != nil {
			return nil, fmt.Errorf("failed to scan histogram row: %w", err)
		}
		out = append(out, lc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating histogram: %w", err)
	}

	return out, nil
}

// Used key operations

// MarkKeyUsed records that key has produced a puzzle. Marking a key twice
// keeps the original timestamp.
func (s *Store) MarkKeyUsed(key string) error {
	query := `
		INSERT OR IGNORE INTO used_keys (key, used_at)
		VALUES (?, ?)
	`

	if _, err := s.db.Exec(query, key, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to mark key %s used: %w", key, classify(err))
	}
	return nil
}

// IsKeyUsed reports whether key has already produced a puzzle.
func (s *Store) IsKeyUsed(key string) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM used_keys WHERE key = ?`, key).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check key %s: %w", key, classify(err))
	}
	return n > 0, nil
}

// ListUsedKeys returns all used keys ordered by key.
func (s *Store) ListUsedKeys() ([]UsedKey, error) {
	rows, err := s.db.Query(`SELECT key, used_at FROM used_keys ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list used keys: %w", classify(err))
	}
	defer rows.Close()

	var out []UsedKey
	for rows.Next() {
		var uk UsedKey
		var usedAt string
		if err := rows.Scan(&uk.Key, &usedAt); err != nil {
			return nil, fmt.Errorf("failed to scan used key row: %w", err)
		}

		uk.UsedAt, err = time.Parse(time.RFC3339, usedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse used_at for %s: %w", uk.Key, err)
		}

		out = append(out, uk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating used keys: %w", err)
	}

	return out, nil
}

// ClearUsedKeys forgets every used key and returns how many were removed.
func (s *Store) ClearUsedKeys() (int, error) {
	result, err := s.db.Exec(`DELETE FROM used_keys`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear used keys: %w", classify(err))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(n), nil
}

// Puzzle operations

// sortableTime keeps a fixed number of fractional digits so that puzzle
// timestamps order correctly as text.
const sortableTime = "2006-01-02T15:04:05.000000000Z07:00"

// InsertPuzzle records a generated puzzle.
func (s *Store) InsertPuzzle(p *PuzzleRecord) error {
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
		INSERT INTO puzzles (id, letters, word_count, score, path, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		p.ID,
		p.Letters,
		p.WordCount,
		p.Score,
		p.Path,
		createdAt.Format(sortableTime),
	)
	if err != nil {
		return fmt.Errorf("failed to insert puzzle %s: %w", p.ID, classify(err))
	}

	return nil
}

// ListPuzzles returns all puzzle records, newest first.
func (s *Store) ListPuzzles() ([]*PuzzleRecord, error) {
	query := `
		SELECT id, letters, word_count, score, path, created_at
		FROM puzzles
		ORDER BY created_at DESC, id
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", classify(err))
	}
	defer rows.Close()

	var out []*PuzzleRecord
	for rows.Next() {
		var p PuzzleRecord
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Letters, &p.WordCount, &p.Score, &p.Path, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan puzzle row: %w", err)
		}

		p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for puzzle %s: %w", p.ID, err)
		}

		out = append(out, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating puzzles: %w", err)
	}

	return out, nil
}

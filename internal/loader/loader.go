// Package loader moves word lists between plain-text files and the
// dictionary database.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/blackwell-systems/wpg/internal/store"
	"github.com/blackwell-systems/wpg/internal/words"
)

// Loader imports and exports word lists for a store.
type Loader struct {
	store *store.Store
}

// New creates a new Loader instance with the given store.
func New(store *store.Store) *Loader {
	return &Loader{store: store}
}

// Result summarizes one import.
type Result struct {
	Read     int // non-empty lines read
	Accepted int // distinct words that passed the filter
	Added    int // words that were not already in the dictionary
}

// ReadWords reads one word per line from r and returns the distinct words
// accepted by filter, in first-seen order.
func ReadWords(r io.Reader, filter words.Filter) ([]string, int, error) {
	seen := make(map[string]struct{})
	var out []string
	read := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		read++

		w, ok := filter.Accept(line)
		if !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	if err := scanner.Err(); err != nil {
		return nil, read, fmt.Errorf("failed to read word list: %w", err)
	}

	return out, read, nil
}

func readFile(path string, filter words.Filter) ([]string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	return ReadWords(f, filter)
}

// Load replaces the dictionary with the words of the file at path.
func (l *Loader) Load(path string, filter words.Filter) (*Result, error) {
	list, read, err := readFile(path, filter)
	if err != nil {
		return nil, err
	}

	added, err := l.store.ReplaceWords(list)
	if err != nil {
		return nil, fmt.Errorf("failed to store words: %w", err)
	}

	return &Result{Read: read, Accepted: len(list), Added: added}, nil
}

// Merge adds the words of the file at path to the dictionary. Existing
// words keep their hidden flag.
func (l *Loader) Merge(path string, filter words.Filter) (*Result, error) {
	list, read, err := readFile(path, filter)
	if err != nil {
		return nil, err
	}

	added, err := l.store.InsertWords(list)
	if err != nil {
		return nil, fmt.Errorf("failed to store words: %w", err)
	}

	return &Result{Read: read, Accepted: len(list), Added: added}, nil
}

// Export writes every dictionary word to path, one per line, shortest
// first. Returns the number of words written.
func (l *Loader) Export(path string) (int, error) {
	list, err := l.store.ListWords()
	if err != nil {
		return 0, fmt.Errorf("failed to list words: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, word := range list {
		if _, err := fmt.Fprintln(w, word.Literal); err != nil {
			return 0, fmt.Errorf("failed to write export file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("failed to write export file: %w", err)
	}

	return len(list), nil
}

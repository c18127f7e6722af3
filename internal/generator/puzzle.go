package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/blackwell-systems/wpg/internal/bucket"
	"github.com/blackwell-systems/wpg/internal/words"
)

// Puzzle is a set of letters and the words that can be made from them.
type Puzzle struct {
	ID        string    `json:"id"`
	Letters   string    `json:"letters"`
	Score     int       `json:"score"`
	Words     []string  `json:"words"`
	Bonus     []string  `json:"bonus,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Path      string    `json:"-"`
}

// NewPuzzle builds a puzzle from b. Hidden literals become bonus words and
// repeated literals are listed once; ordering follows b.WordValues.
func NewPuzzle(b *bucket.Bucket, hidden map[string]bool) *Puzzle {
	p := &Puzzle{
		ID:        uuid.NewString(),
		Letters:   b.Key(),
		Score:     b.SortScore(),
		Words:     []string{},
		CreatedAt: time.Now().UTC(),
	}

	seen := make(map[string]struct{})
	for _, v := range b.WordValues() {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		if hidden[v] {
			p.Bonus = append(p.Bonus, v)
		} else {
			p.Words = append(p.Words, v)
		}
	}

	return p
}

// WritePuzzle writes p as JSON into dir and returns the file path.
// Example: act_1b4e28ba.json
func WritePuzzle(dir string, p *Puzzle) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	id := p.ID
	if len(id) > 8 {
		id = id[:8]
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", p.Letters, id))

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal puzzle: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write puzzle file: %w", err)
	}

	return path, nil
}

// Inspection describes the bucket a word belongs to.
type Inspection struct {
	Word         string
	Key          string
	Anagrams     []string // words sharing the exact signature
	Reachable    []string // every word value of the bucket
	SortScore    int
	SubWordCount int
	Active       bool
}

// Inspect looks up the bucket for word's signature.
func (g *Generator) Inspect(word string) (*Inspection, error) {
	if g.index == nil {
		return nil, ErrNotLoaded
	}

	literal := words.Normalize(word)
	key := words.Signature(literal)
	b, ok := g.index.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", bucket.ErrBucketNotFound, key)
	}

	anagrams := make([]string, 0, len(b.Words()))
	for _, w := range b.Words() {
		anagrams = append(anagrams, w.Literal)
	}

	return &Inspection{
		Word:         literal,
		Key:          key,
		Anagrams:     anagrams,
		Reachable:    b.WordValues(),
		SortScore:    b.SortScore(),
		SubWordCount: b.SubWordCount(),
		Active:       b.Active(),
	}, nil
}

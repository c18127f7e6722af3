// Package generator selects buckets from the dictionary index and turns
// them into puzzles.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/blackwell-systems/wpg/internal/bucket"
	"github.com/blackwell-systems/wpg/internal/store"
)

var (
	// ErrNoCandidates is returned when no active bucket satisfies the options.
	ErrNoCandidates = errors.New("no candidate buckets left")
	// ErrNotLoaded is returned when the index has not been built yet.
	ErrNotLoaded = errors.New("index not loaded")
)

// Options controls candidate selection and puzzle output.
type Options struct {
	MinWordLetters   int // shortest answer word
	MinLetters       int // smallest puzzle (letters in the key)
	MaxLetters       int // largest puzzle
	MinWords         int // fewest answers a puzzle may have
	MaxWords         int // most answers a puzzle may have, 0 means unbounded
	PuzzlesPerLength int
	OutputDir        string
}

// Generator ranks the buckets of a dictionary and produces puzzles.
type Generator struct {
	store  *store.Store
	opts   Options
	logger *slog.Logger
	index  *bucket.Index
	hidden map[string]bool

	// OnPuzzle, if set, is called after each puzzle is written.
	OnPuzzle func(*Puzzle)
}

// New creates a Generator. A nil logger uses slog.Default().
func New(st *store.Store, opts Options, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{store: st, opts: opts, logger: logger}
}

// Load builds the bucket index from the dictionary and deactivates every
// bucket whose key already produced a puzzle.
func (g *Generator) Load(ctx context.Context) error {
	list, err := g.store.ListWords()
	if err != nil {
		return fmt.Errorf("failed to list words: %w", err)
	}

	idx, err := bucket.Build(ctx, list, bucket.BuildOptions{MinLetters: g.opts.MinWordLetters})
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}

	hidden := make(map[string]bool)
	for _, w := range list {
		if w.Hidden {
			hidden[w.Literal] = true
		}
	}

	used, err := g.store.ListUsedKeys()
	if err != nil {
		return fmt.Errorf("failed to list used keys: %w", err)
	}
	for _, uk := range used {
		if b, ok := idx.Get(uk.Key); ok {
			b.Deactivate()
		}
	}

	g.index = idx
	g.hidden = hidden

	g.logger.Debug("index built",
		slog.Int("words", len(list)),
		slog.Int("buckets", idx.Len()),
		slog.Int("used_keys", len(used)))

	return nil
}

// Index returns the loaded bucket index, or nil before Load.
func (g *Generator) Index() *bucket.Index {
	return g.index
}

// Candidates returns the active buckets with n letters whose word count is
// within the configured bounds, best first.
func (g *Generator) Candidates(n int) []*bucket.Bucket {
	if g.index == nil {
		return nil
	}

	eligible := bucket.ActiveWithCount(n)
	return g.index.Ranked(func(b *bucket.Bucket) bool {
		if !eligible(b) {
			return false
		}
		count := b.SubWordCount()
		if count < g.opts.MinWords {
			return false
		}
		return g.opts.MaxWords == 0 || count <= g.opts.MaxWords
	})
}

// Rank returns up to limit buckets of any size, best first. A limit of
// zero or less returns every bucket.
func (g *Generator) Rank(limit int) []*bucket.Bucket {
	if g.index == nil {
		return nil
	}
	ranked := g.index.Ranked(nil)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Next takes the best candidate with n letters, marks its key as used and
// returns the puzzle built from it.
func (g *Generator) Next(ctx context.Context, n int) (*Puzzle, error) {
	b, err := g.take(ctx, n)
	if err != nil {
		return nil, err
	}
	if err := g.markUsed(b); err != nil {
		return nil, err
	}
	return NewPuzzle(b, g.hidden), nil
}

// take deactivates and returns the best candidate with n letters. The key
// is not recorded as used.
func (g *Generator) take(ctx context.Context, n int) (*bucket.Bucket, error) {
	if g.index == nil {
		return nil, ErrNotLoaded
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidates := g.Candidates(n)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w for %d letters", ErrNoCandidates, n)
	}

	b := candidates[0]
	b.Deactivate()
	return b, nil
}

// markUsed records b's key in the store, reactivating b if that fails.
func (g *Generator) markUsed(b *bucket.Bucket) error {
	if err := g.store.MarkKeyUsed(b.Key()); err != nil {
		b.Reset()
		return fmt.Errorf("failed to record used key: %w", err)
	}
	return nil
}

// Generate produces up to PuzzlesPerLength puzzles for every size between
// MinLetters and MaxLetters, writes them to OutputDir and records them in
// the store. Sizes that run out of candidates are skipped.
func (g *Generator) Generate(ctx context.Context) ([]*Puzzle, error) {
	if g.index == nil {
		return nil, ErrNotLoaded
	}

	var puzzles []*Puzzle
	for n := g.opts.MinLetters; n <= g.opts.MaxLetters; n++ {
		batch, err := g.GenerateLength(ctx, n, g.opts.PuzzlesPerLength)
		puzzles = append(puzzles, batch...)
		if err != nil {
			return puzzles, err
		}
	}

	return puzzles, nil
}

// GenerateLength produces up to count puzzles with n letters, writes them
// to OutputDir and records them in the store. Running out of candidates is
// logged and ends the batch without an error.
func (g *Generator) GenerateLength(ctx context.Context, n, count int) ([]*Puzzle, error) {
	if g.index == nil {
		return nil, ErrNotLoaded
	}

	var puzzles []*Puzzle
	for i := 0; i < count; i++ {
		b, err := g.take(ctx, n)
		if errors.Is(err, ErrNoCandidates) {
			g.logger.Warn("ran out of candidates",
				slog.Int("letters", n),
				slog.Int("generated", i))
			break
		}
		if err != nil {
			return puzzles, err
		}

		// The key only counts as used once the puzzle is on disk.
		p := NewPuzzle(b, g.hidden)
		if err := g.save(p); err != nil {
			b.Reset()
			return puzzles, err
		}
		if err := g.markUsed(b); err != nil {
			return puzzles, err
		}
		puzzles = append(puzzles, p)
		if g.OnPuzzle != nil {
			g.OnPuzzle(p)
		}
	}

	return puzzles, nil
}

// save writes p to OutputDir and records it.
func (g *Generator) save(p *Puzzle) error {
	path, err := WritePuzzle(g.opts.OutputDir, p)
	if err != nil {
		return err
	}
	p.Path = path

	record := &store.PuzzleRecord{
		ID:        p.ID,
		Letters:   p.Letters,
		WordCount: len(p.Words) + len(p.Bonus),
		Score:     p.Score,
		Path:      path,
		CreatedAt: p.CreatedAt,
	}
	if err := g.store.InsertPuzzle(record); err != nil {
		return fmt.Errorf("failed to record puzzle: %w", err)
	}

	g.logger.Debug("puzzle written",
		slog.String("letters", p.Letters),
		slog.Int("score", p.Score),
		slog.String("path", path))
	return nil
}

// Reset makes every bucket eligible again for another pass. Used keys stay
// recorded in the store.
func (g *Generator) Reset() {
	if g.index != nil {
		g.index.ResetAll()
	}
}

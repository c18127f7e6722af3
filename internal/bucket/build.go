package bucket

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/wpg/internal/words"
)

// BuildOptions controls how an Index is assembled from a word list.
type BuildOptions struct {
	// MinLetters is the shortest sub-bucket key linked under a parent.
	MinLetters int
}

// Build assembles an index from ws in two phases. Buckets are populated
// concurrently, one goroutine per key length so that every bucket has a
// single writer. Once all goroutines finish, the index is sealed and each
// bucket is linked to every existing bucket whose key is a proper
// sub-multiset of its own.
func Build(ctx context.Context, ws []words.Word, opts BuildOptions) (*Index, error) {
	type signed struct {
		key  string
		word words.Word
	}

	byLength := make(map[int][]signed)
	for _, w := range ws {
		key := words.Signature(w.Literal)
		n := utf8.RuneCountInString(key)
		byLength[n] = append(byLength[n], signed{key: key, word: w})
	}

	lengths := make([]int, 0, len(byLength))
	for n := range byLength {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)

	parts := make([]map[string]*Bucket, len(lengths))
	g, gctx := errgroup.WithContext(ctx)
	for i, n := range lengths {
		group := byLength[n]
		g.Go(func() error {
			part := make(map[string]*Bucket)
			for j, s := range group {
				if j%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				b, ok := part[s.key]
				if !ok {
					b = New(s.key)
					part[s.key] = b
				}
				b.AddWord(s.word)
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to populate buckets: %w", err)
	}

	idx := NewIndex()
	for _, part := range parts {
		for key, b := range part {
			idx.buckets[key] = b
		}
	}
	idx.Seal()

	for _, key := range idx.Keys() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("failed to link buckets: %w", err)
		}
		for _, sub := range SubSignatures(key, opts.MinLetters) {
			if _, ok := idx.buckets[sub]; !ok {
				continue
			}
			if err := idx.Link(key, sub); err != nil {
				return nil, fmt.Errorf("failed to link buckets: %w", err)
			}
		}
	}

	return idx, nil
}

// SubSignatures returns the distinct proper sub-multisets of key's letters
// having at least minLetters letters, shortest first and then
// alphabetically. Each result is itself a signature.
// Example: SubSignatures("act", 2) -> ["ac", "at", "ct"]
func SubSignatures(key string, minLetters int) []string {
	runes := []rune(key)
	slices.Sort(runes)
	if minLetters < 1 {
		minLetters = 1
	}

	var letters []rune
	var counts []int
	for _, r := range runes {
		if len(letters) > 0 && letters[len(letters)-1] == r {
			counts[len(counts)-1]++
			continue
		}
		letters = append(letters, r)
		counts = append(counts, 1)
	}

	var out []string
	buf := make([]rune, 0, len(runes))
	var walk func(i int)
	walk = func(i int) {
		if i == len(letters) {
			if len(buf) >= minLetters && len(buf) < len(runes) {
				out = append(out, string(buf))
			}
			return
		}
		for c := 0; c <= counts[i]; c++ {
			for k := 0; k < c; k++ {
				buf = append(buf, letters[i])
			}
			walk(i + 1)
			buf = buf[:len(buf)-c]
		}
	}
	walk(0)

	sort.Slice(out, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(out[i]), utf8.RuneCountInString(out[j])
		if li != lj {
			return li < lj
		}
		return out[i] < out[j]
	})
	return out
}

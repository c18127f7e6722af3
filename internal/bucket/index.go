package bucket

import (
	"errors"
	"fmt"
	"sort"

	"github.com/blackwell-systems/wpg/internal/words"
)

var (
	// ErrBucketNotFound is returned when no bucket exists for a key.
	ErrBucketNotFound = errors.New("bucket not found")
	// ErrSealed is returned when adding a word to a bucket that has
	// already been sealed for linking.
	ErrSealed = errors.New("bucket is sealed")
	// ErrNotSealed is returned when linking a sub-bucket that is still
	// being populated.
	ErrNotSealed = errors.New("sub-bucket is not sealed")
	// ErrSelfLink is returned when a bucket is linked under itself.
	ErrSelfLink = errors.New("bucket cannot be linked under itself")
)

// Index owns every bucket of a dictionary, keyed by signature. Links
// between buckets point into the same index.
type Index struct {
	buckets map[string]*Bucket
	sealed  bool
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{buckets: make(map[string]*Bucket)}
}

// Len returns the number of buckets.
func (idx *Index) Len() int {
	return len(idx.buckets)
}

// Get returns the bucket for key.
func (idx *Index) Get(key string) (*Bucket, bool) {
	b, ok := idx.buckets[key]
	return b, ok
}

// Keys returns every bucket key in ascending order.
func (idx *Index) Keys() []string {
	keys := make([]string, 0, len(idx.buckets))
	for k := range idx.buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add files w under its signature, creating the bucket if needed. Once the
// index is sealed no words or buckets can be added.
func (idx *Index) Add(w words.Word) (*Bucket, error) {
	key := words.Signature(w.Literal)
	if idx.sealed {
		return nil, fmt.Errorf("add %q to %q: %w", w.Literal, key, ErrSealed)
	}
	b, ok := idx.buckets[key]
	if !ok {
		b = New(key)
		idx.buckets[key] = b
	}
	b.AddWord(w)
	return b, nil
}

// Seal ends the population phase for every bucket in the index.
func (idx *Index) Seal() {
	idx.sealed = true
	for _, b := range idx.buckets {
		b.sealed = true
	}
}

// Link nests the bucket for subKey under the bucket for parentKey. The
// sub-bucket must be sealed so that its word tally is final.
func (idx *Index) Link(parentKey, subKey string) error {
	if parentKey == subKey {
		return fmt.Errorf("link %q: %w", parentKey, ErrSelfLink)
	}
	parent, ok := idx.buckets[parentKey]
	if !ok {
		return fmt.Errorf("link parent %q: %w", parentKey, ErrBucketNotFound)
	}
	sub, ok := idx.buckets[subKey]
	if !ok {
		return fmt.Errorf("link sub-bucket %q: %w", subKey, ErrBucketNotFound)
	}
	if !sub.sealed {
		return fmt.Errorf("link %q under %q: %w", subKey, parentKey, ErrNotSealed)
	}
	parent.AddSubBucket(sub)
	return nil
}

// ResetAll makes every bucket eligible for selection again.
func (idx *Index) ResetAll() {
	for _, b := range idx.buckets {
		b.Reset()
	}
}

// Filter selects buckets for ranking.
type Filter func(*Bucket) bool

// ActiveWithCount selects active buckets whose key has n letters.
func ActiveWithCount(n int) Filter {
	return func(b *Bucket) bool {
		return b.active && b.count == n
	}
}

// Ranked returns the buckets accepted by filter (all buckets if filter is
// nil), highest sort score first. Ties are broken by key.
func (idx *Index) Ranked(filter Filter) []*Bucket {
	type scored struct {
		b     *Bucket
		score int
	}

	candidates := make([]scored, 0, len(idx.buckets))
	for _, b := range idx.buckets {
		if filter != nil && !filter(b) {
			continue
		}
		candidates = append(candidates, scored{b: b, score: b.SortScore()})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].b.key < candidates[j].b.key
	})

	out := make([]*Bucket, len(candidates))
	for i, c := range candidates {
		out[i] = c.b
	}
	return out
}

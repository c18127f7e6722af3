package bucket

import (
	"slices"
	"sort"
	"unicode/utf8"

	"github.com/blackwell-systems/wpg/internal/words"
)

// keyWeight is the sort score of one key letter. It dominates the word
// count so that longer keys always outrank shorter ones.
const keyWeight = 10

// Bucket accumulates the words of one signature and the sub-buckets nested
// under it.
type Bucket struct {
	key          string
	count        int
	words        []words.Word
	subBuckets   []*Bucket
	linked       map[*Bucket]struct{}
	subWordCount int
	subWordScore int
	active       bool
	sealed       bool
}

// New creates an empty, active bucket for key.
func New(key string) *Bucket {
	return &Bucket{
		key:    key,
		count:  utf8.RuneCountInString(key),
		linked: make(map[*Bucket]struct{}),
		active: true,
	}
}

// Key returns the bucket's signature.
func (b *Bucket) Key() string { return b.key }

// Count returns the number of characters in the key.
func (b *Bucket) Count() int { return b.count }

// Words returns the words assigned directly to this bucket, in insertion order.
func (b *Bucket) Words() []words.Word { return slices.Clone(b.words) }

// SubBuckets returns the linked sub-buckets, in link order.
func (b *Bucket) SubBuckets() []*Bucket { return slices.Clone(b.subBuckets) }

// SubWordCount returns the number of words counted from this bucket and
// its sub-buckets.
func (b *Bucket) SubWordCount() int { return b.subWordCount }

// SubWordScore returns the summed literal length of every counted word.
func (b *Bucket) SubWordScore() int { return b.subWordScore }

// Active reports whether the bucket is eligible for selection.
func (b *Bucket) Active() bool { return b.active }

// Deactivate marks the bucket as used for the current generation pass.
func (b *Bucket) Deactivate() { b.active = false }

// Reset makes the bucket eligible again. Nothing else changes.
func (b *Bucket) Reset() { b.active = true }

// Sealed reports whether the bucket has finished its population phase.
func (b *Bucket) Sealed() bool { return b.sealed }

// AddWord appends w to the bucket's words. Duplicates are not detected.
func (b *Bucket) AddWord(w words.Word) {
	b.words = append(b.words, w)
	b.tally(w)
}

// AddSubBucket links sub under b and tallies the words sub holds right now.
// Words added to sub afterwards are not reflected in b's counters. Linking
// the same bucket twice is a no-op.
func (b *Bucket) AddSubBucket(sub *Bucket) {
	if _, ok := b.linked[sub]; ok {
		return
	}
	b.linked[sub] = struct{}{}
	b.subBuckets = append(b.subBuckets, sub)
	for _, w := range sub.words {
		b.tally(w)
	}
}

func (b *Bucket) tally(w words.Word) {
	b.subWordCount++
	b.subWordScore += utf8.RuneCountInString(w.Literal)
}

// SortScore ranks the bucket for puzzle selection: ten points per key
// letter plus one per aggregated word value.
func (b *Bucket) SortScore() int {
	return keyWeight*b.count + len(b.WordValues())
}

// WordValues returns the literals of every sub-bucket's direct words
// followed by this bucket's own words, ordered by length and then
// alphabetically. Sub-buckets are not traversed recursively and duplicate
// literals are kept.
func (b *Bucket) WordValues() []string {
	n := len(b.words)
	for _, sub := range b.subBuckets {
		n += len(sub.words)
	}

	out := make([]string, 0, n)
	for _, sub := range b.subBuckets {
		for _, w := range sub.words {
			out = append(out, w.Literal)
		}
	}
	for _, w := range b.words {
		out = append(out, w.Literal)
	}

	sort.Slice(out, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(out[i]), utf8.RuneCountInString(out[j])
		if li != lj {
			return li < lj
		}
		return out[i] < out[j]
	})
	return out
}

package bucket

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/wpg/internal/words"
)

func newBucketWith(key string, literals ...string) *Bucket {
	b := New(key)
	for _, l := range literals {
		b.AddWord(words.New(l))
	}
	return b
}

func TestNew(t *testing.T) {
	b := New("aet")

	assert.Equal(t, "aet", b.Key())
	assert.Equal(t, 3, b.Count())
	assert.Empty(t, b.Words())
	assert.Empty(t, b.SubBuckets())
	assert.Zero(t, b.SubWordCount())
	assert.Zero(t, b.SubWordScore())
	assert.True(t, b.Active())
}

func TestAddWord_CountersTrackEveryCall(t *testing.T) {
	tests := []struct {
		name      string
		literals  []string
		wantScore int
	}{
		{"none", nil, 0},
		{"single", []string{"eat"}, 3},
		{"several", []string{"eat", "tea", "ate", "eta"}, 12},
		{"duplicates are counted", []string{"tea", "tea"}, 6},
		{"mixed lengths", []string{"a", "at", "ate", "late"}, 10},
		{"multibyte", []string{"café", "thé"}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBucketWith("key", tt.literals...)

			assert.Equal(t, len(tt.literals), b.SubWordCount())
			assert.Equal(t, tt.wantScore, b.SubWordScore())
			assert.Len(t, b.Words(), len(tt.literals))
		})
	}
}

func TestAddWord_PreservesInsertionOrder(t *testing.T) {
	b := newBucketWith("aet", "tea", "eat", "ate")

	got := make([]string, 0, 3)
	for _, w := range b.Words() {
		got = append(got, w.Literal)
	}
	assert.Equal(t, []string{"tea", "eat", "ate"}, got)
}

func TestAddSubBucket_TalliesSubWords(t *testing.T) {
	sub := newBucketWith("act", "cat", "at")
	parent := New("acts")

	parent.AddSubBucket(sub)

	assert.Equal(t, 2, parent.SubWordCount())
	assert.Equal(t, 5, parent.SubWordScore())
	require.Len(t, parent.SubBuckets(), 1)
	assert.Same(t, sub, parent.SubBuckets()[0])
}

func TestAddSubBucket_Idempotent(t *testing.T) {
	sub := newBucketWith("at", "at")
	once := newBucketWith("act", "cat")
	twice := newBucketWith("act", "cat")

	once.AddSubBucket(sub)
	twice.AddSubBucket(sub)
	twice.AddSubBucket(sub)

	assert.Equal(t, once.SubWordCount(), twice.SubWordCount())
	assert.Equal(t, once.SubWordScore(), twice.SubWordScore())
	assert.Len(t, twice.SubBuckets(), 1)
}

func TestAddSubBucket_SnapshotAtLinkTime(t *testing.T) {
	sub := newBucketWith("act", "cat", "at")
	parent := New("acst")

	parent.AddSubBucket(sub)
	sub.AddWord(words.New("act"))
	sub.AddWord(words.New("tac"))

	assert.Equal(t, 2, parent.SubWordCount())
	assert.Equal(t, 5, parent.SubWordScore())
	assert.Equal(t, 4, sub.SubWordCount())
}

func TestAddSubBucket_DoesNotRecurse(t *testing.T) {
	grandchild := newBucketWith("at", "at")
	child := newBucketWith("act", "cat")
	child.AddSubBucket(grandchild)

	parent := New("acst")
	parent.AddSubBucket(child)

	assert.Equal(t, 1, parent.SubWordCount())
	assert.Equal(t, 3, parent.SubWordScore())
	assert.Equal(t, []string{"cat"}, parent.WordValues())
}

func TestCountersMatchContents(t *testing.T) {
	subs := []*Bucket{
		newBucketWith("at", "at", "ta"),
		newBucketWith("ac"),
		newBucketWith("act", "cat", "act", "tac"),
	}
	parent := newBucketWith("acst", "cats", "scat", "acts")
	for _, s := range subs {
		parent.AddSubBucket(s)
	}
	parent.AddSubBucket(subs[0])

	wantCount := len(parent.Words())
	wantScore := 0
	for _, w := range parent.Words() {
		wantScore += words.Length(w.Literal)
	}
	for _, s := range parent.SubBuckets() {
		wantCount += len(s.Words())
		for _, w := range s.Words() {
			wantScore += words.Length(w.Literal)
		}
	}

	assert.Equal(t, wantCount, parent.SubWordCount())
	assert.Equal(t, wantScore, parent.SubWordScore())
	assert.Len(t, parent.WordValues(), parent.SubWordCount())
}

func TestCounters_InterleavedOperations(t *testing.T) {
	literals := []string{"a", "at", "tea", "cats", "acts", "stare"}

	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed))
		parent := New("aceirst")
		subs := []*Bucket{New("at"), New("aet"), New("acst")}

		// Expected counters: own words plus each sub-bucket's words as they
		// were when it was first linked.
		wantCount, wantScore := 0, 0
		linked := make(map[*Bucket]bool)

		for step := 0; step < 50; step++ {
			w := words.New(literals[rng.IntN(len(literals))])
			sub := subs[rng.IntN(len(subs))]

			switch rng.IntN(3) {
			case 0:
				parent.AddWord(w)
				wantCount++
				wantScore += words.Length(w.Literal)
			case 1:
				sub.AddWord(w)
			case 2:
				if !linked[sub] {
					linked[sub] = true
					for _, sw := range sub.Words() {
						wantCount++
						wantScore += words.Length(sw.Literal)
					}
				}
				parent.AddSubBucket(sub)
			}

			require.Equal(t, wantCount, parent.SubWordCount(), "seed %d step %d", seed, step)
			require.Equal(t, wantScore, parent.SubWordScore(), "seed %d step %d", seed, step)
		}
		assert.Len(t, parent.SubBuckets(), len(linked), "seed %d", seed)
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	sub := newBucketWith("at", "at", "ta")
	parent := newBucketWith("act", "cat", "act")
	parent.AddSubBucket(sub)

	ws := parent.Words()
	ws[0] = words.New("zzzzzz")
	_ = append(ws[:1], words.New("qq"))

	subs := parent.SubBuckets()
	subs[0] = New("zz")

	assert.Equal(t, []string{"at", "ta", "act", "cat"}, parent.WordValues())
	assert.Equal(t, "cat", parent.Words()[0].Literal)
	assert.Same(t, sub, parent.SubBuckets()[0])
	assert.Equal(t, 4, parent.SubWordCount())
	assert.Equal(t, 10, parent.SubWordScore())
}

func TestWordValues_Ordering(t *testing.T) {
	b := newBucketWith("k", "bee", "at", "cat", "ax")

	assert.Equal(t, []string{"at", "ax", "bee", "cat"}, b.WordValues())
}

func TestWordValues_SubBucketsThenOwn(t *testing.T) {
	sub := newBucketWith("at", "ta", "at")
	parent := newBucketWith("act", "tac", "act", "cat")
	parent.AddSubBucket(sub)

	assert.Equal(t, []string{"at", "ta", "act", "cat", "tac"}, parent.WordValues())
}

func TestWordValues_KeepsDuplicates(t *testing.T) {
	sub := newBucketWith("at", "at")
	other := newBucketWith("at", "at")
	parent := newBucketWith("act", "cat", "at")
	parent.AddSubBucket(sub)
	parent.AddSubBucket(other)

	assert.Equal(t, []string{"at", "at", "at", "cat"}, parent.WordValues())
}

func TestWordValues_DoesNotMutateWords(t *testing.T) {
	b := newBucketWith("k", "zz", "a")
	_ = b.WordValues()

	assert.Equal(t, "zz", b.Words()[0].Literal)
}

func TestSortScore(t *testing.T) {
	b := newBucketWith("aet", "ate", "eat", "tea", "eta")

	assert.Equal(t, 34, b.SortScore())
}

func TestSortScore_CountsDuplicateValues(t *testing.T) {
	sub := newBucketWith("at", "at")
	parent := newBucketWith("act", "at")
	parent.AddSubBucket(sub)

	assert.Equal(t, 32, parent.SortScore())
}

func TestSortScore_EmptyBucket(t *testing.T) {
	assert.Equal(t, 50, New("abcde").SortScore())
}

func TestReset(t *testing.T) {
	sub := newBucketWith("at", "at")
	b := newBucketWith("act", "cat")
	b.AddSubBucket(sub)

	b.Deactivate()
	require.False(t, b.Active())

	count, score := b.SubWordCount(), b.SubWordScore()
	b.Reset()
	b.Reset()

	assert.True(t, b.Active())
	assert.Equal(t, count, b.SubWordCount())
	assert.Equal(t, score, b.SubWordScore())
	assert.Len(t, b.Words(), 1)
	assert.Len(t, b.SubBuckets(), 1)
}

func TestReset_AlreadyActive(t *testing.T) {
	b := New("at")
	b.Reset()
	assert.True(t, b.Active())
}

func TestScenario_CatOverAt(t *testing.T) {
	bucketAt := New("at")
	bucketAt.AddWord(words.New("at"))

	bucketCat := New("cat")
	bucketCat.AddWord(words.New("cat"))
	bucketCat.AddSubBucket(bucketAt)

	assert.Equal(t, 2, bucketCat.SubWordCount())
	assert.Equal(t, 5, bucketCat.SubWordScore())
	assert.Equal(t, 32, bucketCat.SortScore())
}

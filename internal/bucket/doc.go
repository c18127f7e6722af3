// Package bucket groups dictionary words by their sorted-letter signature
// and scores the resulting buckets for puzzle selection.
//
// A Bucket holds the words whose signature equals its key, plus links to
// sub-buckets: buckets whose key is a sub-multiset of its own letters. The
// words reachable from a bucket are the answers of a puzzle built from the
// bucket's letters.
//
// Scoring invariants, maintained on every mutation:
//   - SubWordCount == len(Words()) + sum of len(sub.Words()) over linked
//     sub-buckets, as they were at link time
//   - SubWordScore == sum of the literal lengths of those same words
//
// Linking tallies a sub-bucket's words once, at link time. A sub-bucket
// must therefore be fully populated before it is linked. The Index owns
// every bucket and enforces that ordering: buckets are sealed after
// population and Link only accepts sealed sub-buckets.
//
// Example usage:
//
//	idx, err := bucket.Build(ctx, dictionary, bucket.BuildOptions{MinLetters: 2})
//	if err != nil {
//		return err
//	}
//	for _, b := range idx.Ranked(bucket.ActiveWithCount(5)) {
//		fmt.Println(b.Key(), b.SortScore(), b.WordValues())
//	}
package bucket

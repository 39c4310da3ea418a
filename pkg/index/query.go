package index

import (
	"sort"

	roaring "github.com/RoaringBitmap/roaring/v2"
)

// Queries never fail: unknown lengths, unsatisfiable patterns and
// out-of-range thresholds all produce empty results. This keeps the
// generator's inner loop free of error branches.

// Candidates returns every word matching the pattern. The pattern's length
// is the target word length; result order is deterministic but unspecified.
func (ix *WordIndex) Candidates(pattern string) []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.collect(pattern, 1)
}

// CandidatesAboveThreshold returns matching words scoring at least minScore.
// Thresholds below 1 are treated as 1, so they filter nothing.
func (ix *WordIndex) CandidatesAboveThreshold(pattern string, minScore int) []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.collect(pattern, clampScore(minScore))
}

// CandidatesSorted returns matching words scoring at least minScore, ordered
// by score descending then word ascending. The ordering is total, so call
// sequences are exactly reproducible.
func (ix *WordIndex) CandidatesSorted(pattern string, minScore int) []ScoredWord {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	words := ix.collect(pattern, clampScore(minScore))
	out := make([]ScoredWord, len(words))
	for i, w := range words {
		out[i] = ScoredWord{Word: w, Score: ix.scores[ix.idOf[w]]}
	}
	sortByScore(out)
	return out
}

// CountCandidates reports how many words match the pattern at the threshold,
// without materializing the candidate list. Used by constraint propagation
// for cheap domain-size estimates.
func (ix *WordIndex) CountCandidates(pattern string, minScore int) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	minScore = clampScore(minScore)
	ids := ix.byLength[len(pattern)]
	if len(ids) == 0 {
		return 0
	}
	cs, ok := parsePattern(pattern)
	if !ok {
		return 0
	}
	if len(cs) == 0 {
		if minScore <= 1 {
			return len(ids)
		}
		n := 0
		for _, id := range ids {
			if ix.scores[id] >= minScore {
				n++
			}
		}
		return n
	}
	hits := ix.intersect(len(pattern), cs)
	if hits == nil {
		return 0
	}
	if minScore <= 1 {
		return int(hits.GetCardinality())
	}
	n := 0
	it := hits.Iterator()
	for it.HasNext() {
		if ix.scores[it.Next()] >= minScore {
			n++
		}
	}
	return n
}

// collect gathers matching words at or above minScore. Callers hold at least
// a read lock. An unconstrained pattern copies the length table in acceptance
// order; a constrained one yields word-ID order.
func (ix *WordIndex) collect(pattern string, minScore int) []string {
	ids := ix.byLength[len(pattern)]
	if len(ids) == 0 {
		return []string{}
	}
	cs, ok := parsePattern(pattern)
	if !ok {
		return []string{}
	}
	if len(cs) == 0 {
		out := make([]string, 0, len(ids))
		for _, id := range ids {
			if ix.scores[id] >= minScore {
				out = append(out, ix.words[id])
			}
		}
		return out
	}
	hits := ix.intersect(len(pattern), cs)
	if hits == nil {
		return []string{}
	}
	out := make([]string, 0, hits.GetCardinality())
	it := hits.Iterator()
	for it.HasNext() {
		id := it.Next()
		if ix.scores[id] >= minScore {
			out = append(out, ix.words[id])
		}
	}
	return out
}

// intersect ANDs the constraint bitmaps smallest-first so the running set
// collapses as early as possible. nil means no word satisfies every
// constraint.
func (ix *WordIndex) intersect(length int, cs []constraint) *roaring.Bitmap {
	sets := make([]*roaring.Bitmap, 0, len(cs))
	for _, c := range cs {
		bm := ix.posIndex[posKey(length, c.pos, c.ch)]
		if bm == nil || bm.IsEmpty() {
			return nil
		}
		sets = append(sets, bm)
	}
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].GetCardinality() < sets[j].GetCardinality()
	})
	acc := sets[0].Clone()
	for _, bm := range sets[1:] {
		acc.And(bm)
		if acc.IsEmpty() {
			return nil
		}
	}
	return acc
}

func clampScore(minScore int) int {
	if minScore < 1 {
		return 1
	}
	return minScore
}

func sortByScore(words []ScoredWord) {
	sort.Slice(words, func(i, j int) bool {
		if words[i].Score != words[j].Score {
			return words[i].Score > words[j].Score
		}
		return words[i].Word < words[j].Word
	})
}

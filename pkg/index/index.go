/*
Package index is the core word index for crossword construction.

A WordIndex holds scored dictionary words behind three cooperating views: an
insertion-ordered table of words per length, a word to score map, and an
inverted position-letter index mapping (length, position, letter) to the set
of word IDs carrying that letter at that position. Pattern queries like
".R..E" reduce to intersecting a handful of those sets, which keeps a single
lookup in the microsecond range on dictionaries of a few hundred thousand
words.

The index is loaded once and read-only afterwards. Queries may run
concurrently from any number of goroutines.
*/
package index

import (
	"sync"

	roaring "github.com/RoaringBitmap/roaring/v2"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/crossdex/xword-lib/pkg/dictionary"
)

// ScoredWord pairs a candidate word with its quality score.
type ScoredWord struct {
	Word  string
	Score int
}

// Stats describes a loaded index, for diagnostics and tests.
type Stats struct {
	TotalWords int
	Skipped    int
	ByLength   map[int]int
	PosKeys    int
	AvgScore   float64
	Loaded     bool
}

// WordIndex answers pattern queries against a scored dictionary. The zero
// value is not usable; call New.
type WordIndex struct {
	mu       sync.RWMutex
	words    []string          // dense word IDs, acceptance order
	scores   []int             // parallel to words
	idOf     map[string]uint32 // membership oracle
	byLength map[int][]uint32
	posIndex map[uint32]*roaring.Bitmap
	trie     *patricia.Trie // word -> id, for prefix completion
	skipped  int
	loaded   bool
}

// New returns an empty, unloaded index.
func New() *WordIndex {
	return &WordIndex{
		idOf:     make(map[string]uint32),
		byLength: make(map[int][]uint32),
		posIndex: make(map[uint32]*roaring.Bitmap),
		trie:     patricia.NewTrie(),
	}
}

// posKey packs (length, position, letter) into one map key. Positions fit in
// 5 bits because dictionary.MaxWordLen caps accepted words at 31 letters.
func posKey(length, pos int, c byte) uint32 {
	return uint32(length)<<13 | uint32(pos)<<8 | uint32(c)
}

// LoadFile merges the text dictionary at path into the index. Malformed
// lines are skipped and counted; a missing file is dictionary.ErrNotFound
// and a failed read dictionary.ErrIO, in which case the index is untouched.
func (ix *WordIndex) LoadFile(path string) error {
	entries, skipped, err := dictionary.ReadFile(path)
	if err != nil {
		return err
	}
	ix.merge(entries, skipped)
	return nil
}

// LoadEntries merges in-memory entries. Invalid entries are skipped and
// counted, same as the file loader. Never fails.
func (ix *WordIndex) LoadEntries(entries []dictionary.Entry) {
	ix.merge(entries, 0)
}

// LoadSnapshot merges a binary snapshot previously written by SaveSnapshot.
func (ix *WordIndex) LoadSnapshot(path string) error {
	entries, err := dictionary.ReadSnapshot(path)
	if err != nil {
		return err
	}
	ix.merge(entries, 0)
	return nil
}

// SaveSnapshot writes the loaded dictionary as a msgpack snapshot.
func (ix *WordIndex) SaveSnapshot(path string) error {
	ix.mu.RLock()
	entries := make([]dictionary.Entry, len(ix.words))
	for id, word := range ix.words {
		entries[id] = dictionary.Entry{Word: word, Score: ix.scores[id]}
	}
	ix.mu.RUnlock()
	return dictionary.WriteSnapshot(path, entries)
}

func (ix *WordIndex) merge(entries []dictionary.Entry, skipped int) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	added := 0
	for _, e := range entries {
		word, ok := dictionary.NormalizeWord(e.Word)
		if !ok || !dictionary.ValidScore(e.Score) {
			skipped++
			continue
		}
		if ix.add(word, e.Score) {
			added++
		}
	}
	ix.skipped += skipped
	ix.loaded = true

	log.Infof("Dictionary merged: %d new words, %d skipped, %d total", added, skipped, len(ix.words))
	for length, ids := range ix.byLength {
		log.Debugf("length %d: %d words", length, len(ids))
	}
}

// add indexes one normalized word. A word already present only has its score
// raised (highest score wins); its length-table and position-letter
// memberships never change, so duplicates cannot creep into either.
func (ix *WordIndex) add(word string, score int) bool {
	if id, ok := ix.idOf[word]; ok {
		if score > ix.scores[id] {
			ix.scores[id] = score
		}
		return false
	}

	id := uint32(len(ix.words))
	ix.words = append(ix.words, word)
	ix.scores = append(ix.scores, score)
	ix.idOf[word] = id
	ix.byLength[len(word)] = append(ix.byLength[len(word)], id)
	for pos := 0; pos < len(word); pos++ {
		key := posKey(len(word), pos, word[pos])
		bm := ix.posIndex[key]
		if bm == nil {
			bm = roaring.New()
			ix.posIndex[key] = bm
		}
		bm.Add(id)
	}
	ix.trie.Insert(patricia.Prefix(word), id)
	return true
}

// Score returns the word's score, or 0 when the word is unknown.
// Lookup is case-insensitive.
func (ix *WordIndex) Score(word string) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	norm, ok := dictionary.NormalizeWord(word)
	if !ok {
		return 0
	}
	id, ok := ix.idOf[norm]
	if !ok {
		return 0
	}
	return ix.scores[id]
}

// Has reports case-insensitive dictionary membership.
func (ix *WordIndex) Has(word string) bool {
	return ix.Score(word) > 0
}

// WordsByLength returns a copy of the words of the given length, in
// acceptance order. Empty when no such words were loaded.
func (ix *WordIndex) WordsByLength(length int) []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	ids := ix.byLength[length]
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = ix.words[id]
	}
	return out
}

// Stats reports totals, per-length counts and the average score.
func (ix *WordIndex) Stats() Stats {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	byLength := make(map[int]int, len(ix.byLength))
	for length, ids := range ix.byLength {
		byLength[length] = len(ids)
	}
	sum := 0
	for _, s := range ix.scores {
		sum += s
	}
	avg := 0.0
	if len(ix.scores) > 0 {
		avg = float64(sum) / float64(len(ix.scores))
	}
	return Stats{
		TotalWords: len(ix.words),
		Skipped:    ix.skipped,
		ByLength:   byLength,
		PosKeys:    len(ix.posIndex),
		AvgScore:   avg,
		Loaded:     ix.loaded,
	}
}

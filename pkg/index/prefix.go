package index

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// CompletePrefix returns dictionary words starting with prefix, best scores
// first (score descending, then word ascending), at most limit results when
// limit is positive. Meant for constructor-side autocomplete while typing a
// fill; not part of the pattern-query hot path.
func (ix *WordIndex) CompletePrefix(prefix string, limit int) []ScoredWord {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	norm, ok := normalizePrefix(prefix)
	if !ok {
		return []ScoredWord{}
	}
	out := []ScoredWord{}
	err := ix.trie.VisitSubtree(patricia.Prefix(norm), func(p patricia.Prefix, item patricia.Item) error {
		id := item.(uint32)
		out = append(out, ScoredWord{Word: ix.words[id], Score: ix.scores[id]})
		return nil
	})
	if err != nil {
		log.Errorf("Prefix walk failed for %q: %v", norm, err)
	}
	sortByScore(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// normalizePrefix uppercases a prefix, rejecting anything outside A-Z. An
// empty prefix is allowed and matches the entire dictionary.
func normalizePrefix(prefix string) (string, bool) {
	b := make([]byte, len(prefix))
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b[i] = c
		case c >= 'a' && c <= 'z':
			b[i] = c - 'a' + 'A'
		default:
			return "", false
		}
	}
	return string(b), true
}

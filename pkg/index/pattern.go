package index

// A pattern is a fixed-length template over A-Z plus wildcards. '.' is the
// canonical wildcard; ' ' is accepted as an alias. Lowercase letters are
// normalized. Any other byte makes the pattern unsatisfiable.

type constraint struct {
	pos int
	ch  byte
}

// parsePattern extracts the fixed positions of a pattern. ok=false flags a
// byte that no dictionary word can ever match, which empties the whole query.
func parsePattern(pattern string) ([]constraint, bool) {
	var cs []constraint
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '.' || c == ' ':
			// wildcard
		case c >= 'A' && c <= 'Z':
			cs = append(cs, constraint{pos: i, ch: c})
		case c >= 'a' && c <= 'z':
			cs = append(cs, constraint{pos: i, ch: c - 'a' + 'A'})
		default:
			return nil, false
		}
	}
	return cs, true
}

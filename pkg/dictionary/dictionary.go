/*
Package dictionary reads scored word lists for the crossword index.

The master format is line-oriented text: one `WORD;SCORE` entry per line,
where SCORE is a quality rating in [1,100]. Lines starting with `#` are
comments. A msgpack snapshot format is also supported for faster cold starts
(see snapshot.go).
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPath is where the shared index looks for the master dictionary,
// relative to the process working directory.
const DefaultPath = "database/crossword-master.dict"

// MaxWordLen bounds accepted word lengths so positions fit the packed
// position-letter keys used by the index.
const MaxWordLen = 31

var (
	// ErrNotFound means the dictionary file does not exist.
	ErrNotFound = errors.New("dictionary not found")
	// ErrIO means the dictionary file could not be read.
	ErrIO = errors.New("dictionary read failed")
)

// Entry is a single scored dictionary word.
type Entry struct {
	Word  string `msgpack:"w"`
	Score int    `msgpack:"s"`
}

// NormalizeWord uppercases a word and reports whether it is a valid
// dictionary word: non-empty ASCII letters only, at most MaxWordLen long.
func NormalizeWord(word string) (string, bool) {
	if word == "" || len(word) > MaxWordLen {
		return "", false
	}
	b := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
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

// ValidScore reports whether a score is inside the accepted [1,100] range.
// Zero is reserved for "unknown word" and is never a stored score.
func ValidScore(score int) bool {
	return score >= 1 && score <= 100
}

// ParseLine parses one dictionary line. It returns ok=false for comments and
// blank lines, and an error for malformed entries. The separator is the last
// semicolon on the line, so the word slot can never swallow the score.
func ParseLine(line string) (Entry, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Entry{}, false, nil
	}
	sep := strings.LastIndexByte(trimmed, ';')
	if sep < 0 {
		return Entry{}, false, fmt.Errorf("no separator in %q", trimmed)
	}
	word, ok := NormalizeWord(trimmed[:sep])
	if !ok {
		return Entry{}, false, fmt.Errorf("invalid word in %q", trimmed)
	}
	score, err := strconv.Atoi(strings.TrimSpace(trimmed[sep+1:]))
	if err != nil {
		return Entry{}, false, fmt.Errorf("invalid score in %q: %w", trimmed, err)
	}
	if !ValidScore(score) {
		return Entry{}, false, fmt.Errorf("score %d out of range in %q", score, trimmed)
	}
	return Entry{Word: word, Score: score}, true, nil
}

// ReadFile parses an entire dictionary file. Malformed entries are skipped
// and counted, never fatal; a missing file maps to ErrNotFound and any read
// failure to ErrIO. Entries are returned in file order.
func ReadFile(path string) ([]Entry, int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	defer file.Close()

	var entries []Entry
	skipped := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entry, ok, err := ParseLine(scanner.Text())
		if err != nil {
			log.Debugf("Skipping dictionary line: %v", err)
			skipped++
			continue
		}
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	return entries, skipped, nil
}

package index

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/crossdex/xword-lib/pkg/dictionary"
)

func TestCandidatesPattern(t *testing.T) {
	ix := newTestIndex(entriesOf("ACE", 75, "ACT", 80, "ATE", 60, "BAT", 55, "CAT", 70)...)

	testCases := []struct {
		pattern string
		want    []string
	}{
		{"A..", []string{"ACE", "ACT", "ATE"}},
		{"..T", []string{"ACT", "BAT", "CAT"}},
		{"...", []string{"ACE", "ACT", "ATE", "BAT", "CAT"}},
		{".A.", []string{"BAT", "CAT"}},
		{"AC.", []string{"ACE", "ACT"}},
		{"ACT", []string{"ACT"}},
		{"Z..", []string{}},
		{"....", []string{}}, // no 4-letter words loaded
	}
	for _, tt := range testCases {
		t.Run(tt.pattern, func(t *testing.T) {
			got := ix.Candidates(tt.pattern)
			if !reflect.DeepEqual(sortedCopy(got), sortedCopy(tt.want)) {
				t.Errorf("Candidates(%q) = %v, want permutation of %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestWildcardAliases(t *testing.T) {
	ix := newTestIndex(entriesOf("ACE", 75, "ACT", 80, "BAT", 55)...)

	// '.' is canonical, space is an accepted alias, lowercase letters
	// normalize
	for _, pattern := range []string{"A..", "A  ", "a..", " c ", ".C."} {
		t.Run(fmt.Sprintf("%q", pattern), func(t *testing.T) {
			if got := ix.Candidates(pattern); len(got) == 0 {
				t.Errorf("Candidates(%q) is empty", pattern)
			}
		})
	}
}

func TestMalformedPatternIsEmpty(t *testing.T) {
	ix := newTestIndex(entriesOf("ACE", 75, "ACT", 80)...)

	for _, pattern := range []string{"A.!", "1..", "A-.", "é..", "A_C"} {
		if got := ix.Candidates(pattern); len(got) != 0 {
			t.Errorf("Candidates(%q) = %v, want empty", pattern, got)
		}
		if got := ix.CountCandidates(pattern, 1); got != 0 {
			t.Errorf("CountCandidates(%q) = %d, want 0", pattern, got)
		}
	}
}

func TestCandidatesAboveThreshold(t *testing.T) {
	ix := newTestIndex(entriesOf("ACE", 75, "ACT", 80, "ATE", 60, "BAT", 55, "CAT", 70)...)

	testCases := []struct {
		minScore int
		want     []string
	}{
		{70, []string{"ACE", "ACT", "CAT"}},
		{1, []string{"ACE", "ACT", "ATE", "BAT", "CAT"}},
		{0, []string{"ACE", "ACT", "ATE", "BAT", "CAT"}},
		{-3, []string{"ACE", "ACT", "ATE", "BAT", "CAT"}},
		{80, []string{"ACT"}},
		{81, []string{}},
		{101, []string{}},
	}
	for _, tt := range testCases {
		t.Run(fmt.Sprintf("min=%d", tt.minScore), func(t *testing.T) {
			got := ix.CandidatesAboveThreshold("...", tt.minScore)
			if !reflect.DeepEqual(sortedCopy(got), sortedCopy(tt.want)) {
				t.Errorf("got %v, want permutation of %v", got, tt.want)
			}
		})
	}
}

func TestThresholdMonotonicity(t *testing.T) {
	ix := newTestIndex(entriesOf("BLAST", 80, "BRAVE", 75, "CRANE", 70, "BRAKE", 65, "TRACE", 85)...)

	prev := len(ix.CandidatesAboveThreshold(".....", 1))
	for min := 2; min <= 101; min++ {
		cur := len(ix.CandidatesAboveThreshold(".....", min))
		if cur > prev {
			t.Fatalf("result grew from %d to %d when threshold rose to %d", prev, cur, min)
		}
		prev = cur
	}
}

func TestCandidatesSortedOrder(t *testing.T) {
	ix := newTestIndex(entriesOf("BLAST", 80, "BRAVE", 75, "CRANE", 70, "BRAKE", 65, "TRACE", 85)...)

	want := []ScoredWord{
		{"TRACE", 85},
		{"BRAVE", 75},
		{"CRANE", 70},
		{"BRAKE", 65},
	}
	got := ix.CandidatesSorted(".R..E", 1)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CandidatesSorted(.R..E, 1) = %v, want %v", got, want)
	}
}

func TestCandidatesSortedTieBreak(t *testing.T) {
	// equal scores fall back to ascending word order
	ix := newTestIndex(entriesOf("TRACE", 85, "CRANE", 85, "BRACE", 85, "BRAVE", 90)...)

	want := []ScoredWord{
		{"BRAVE", 90},
		{"BRACE", 85},
		{"CRANE", 85},
		{"TRACE", 85},
	}
	got := ix.CandidatesSorted(".....", 1)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CandidatesSorted = %v, want %v", got, want)
	}
}

func TestCountCandidates(t *testing.T) {
	ix := newTestIndex(entriesOf("BLAST", 80, "BRAVE", 75, "CRANE", 70, "BRAKE", 65, "TRACE", 85)...)

	testCases := []struct {
		pattern  string
		minScore int
		want     int
	}{
		{".....", 1, 5},
		{".....", 75, 3},
		{".R..E", 1, 4},
		{".R..E", 70, 3},
		{"Z....", 1, 0},
		{"ZZZZZ", 1, 0},
		{"......", 1, 0},
		{".....", 101, 0},
	}
	for _, tt := range testCases {
		t.Run(fmt.Sprintf("%s min=%d", tt.pattern, tt.minScore), func(t *testing.T) {
			if got := ix.CountCandidates(tt.pattern, tt.minScore); got != tt.want {
				t.Errorf("CountCandidates = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountMatchesListLength(t *testing.T) {
	ix := newTestIndex(entriesOf(
		"ACE", 75, "ACT", 80, "ATE", 60, "BAT", 55, "CAT", 70,
		"BLAST", 80, "BRAVE", 75, "CRANE", 70, "BRAKE", 65, "TRACE", 85,
	)...)

	patterns := []string{"...", "A..", "..T", ".....", ".R..E", "ZZZ", "....."}
	for _, pattern := range patterns {
		for _, min := range []int{1, 60, 75, 90} {
			want := len(ix.CandidatesAboveThreshold(pattern, min))
			if got := ix.CountCandidates(pattern, min); got != want {
				t.Errorf("CountCandidates(%q, %d) = %d, list has %d", pattern, min, got, want)
			}
		}
	}
}

func TestCandidatesAreSubsetOfLength(t *testing.T) {
	ix := newTestIndex(entriesOf("ACE", 75, "ACT", 80, "ATE", 60, "BAT", 55, "CAT", 70)...)

	all := make(map[string]bool)
	for _, w := range ix.WordsByLength(3) {
		all[w] = true
	}
	for _, pattern := range []string{"A..", "..T", ".A.", "..."} {
		for _, w := range ix.Candidates(pattern) {
			if !all[w] {
				t.Errorf("Candidates(%q) returned %q, not a 3-letter dictionary word", pattern, w)
			}
			for i := 0; i < len(pattern); i++ {
				if pattern[i] != '.' && pattern[i] != w[i] {
					t.Errorf("Candidates(%q) returned %q, mismatch at %d", pattern, w, i)
				}
			}
		}
	}
}

func TestUnconstrainedPreservesAcceptanceOrder(t *testing.T) {
	ix := newTestIndex(entriesOf("CAT", 70, "ACE", 75, "BAT", 55)...)

	want := []string{"CAT", "ACE", "BAT"}
	if got := ix.Candidates("..."); !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates(...) = %v, want %v", got, want)
	}
}

func BenchmarkCandidates(b *testing.B) {
	entries := make([]dictionary.Entry, 0, 26*26*26)
	for a := byte('A'); a <= 'Z'; a++ {
		for c := byte('A'); c <= 'Z'; c++ {
			for e := byte('A'); e <= 'Z'; e++ {
				entries = append(entries, dictionary.Entry{
					Word:  string([]byte{a, 'X', c, 'Y', e}),
					Score: int(a-'A')%100 + 1,
				})
			}
		}
	}
	ix := New()
	ix.LoadEntries(entries)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix.Candidates("A...E")
	}
}

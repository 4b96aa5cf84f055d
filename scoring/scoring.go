// Package scoring defines similarity score tables: exact symbol-pair →
// integer affinity lookups consumed by the align engine.
package scoring

import (
	"errors"
)

// Sentinel errors for scoring operations.
var (
	// ErrEmptyTable indicates the input contained no header line.
	ErrEmptyTable = errors.New("scoring: score table is empty")
	// ErrBadSymbol indicates a header or row label that is not a single symbol.
	ErrBadSymbol = errors.New("scoring: symbols must be single characters")
	// ErrDuplicateSymbol indicates a symbol repeated on one axis.
	ErrDuplicateSymbol = errors.New("scoring: duplicate symbol")
	// ErrRowWidth indicates a data row whose value count differs from the header.
	ErrRowWidth = errors.New("scoring: row width does not match header")
	// ErrBadValue indicates a table cell that is not a signed integer.
	ErrBadValue = errors.New("scoring: score values must be integers")
	// ErrNotSquare indicates the table has a different number of rows and columns.
	ErrNotSquare = errors.New("scoring: score table must be square")
)

// pair is an ordered symbol pair; lookup is by exact identity on both sides.
type pair struct {
	a, b byte
}

// Table maps ordered symbol pairs to signed integer affinities. It must
// define a value for every pair that can occur across the two aligned
// sequences; the align engine fails fast on any missing entry.
//
// Table implements the align.Scorer interface.
type Table struct {
	scores   map[pair]int
	alphabet []byte // symbols in first-seen order, deduplicated
}

// New returns an empty Table.
func New() *Table {
	return &Table{scores: make(map[pair]int)}
}

// Set records the affinity for the ordered pair (a, b).
func (t *Table) Set(a, b byte, score int) {
	if !t.contains(a) {
		t.alphabet = append(t.alphabet, a)
	}
	if !t.contains(b) {
		t.alphabet = append(t.alphabet, b)
	}
	t.scores[pair{a, b}] = score
}

// Score returns the affinity for the ordered pair (a, b) and whether the
// pair is defined.
func (t *Table) Score(a, b byte) (int, bool) {
	s, ok := t.scores[pair{a, b}]

	return s, ok
}

// Alphabet returns the symbols the table knows about, in first-seen order.
func (t *Table) Alphabet() []byte {
	out := make([]byte, len(t.alphabet))
	copy(out, t.alphabet)

	return out
}

// Symmetric reports whether every defined pair (a, b) has a matching
// (b, a) entry with the same score.
func (t *Table) Symmetric() bool {
	for p, s := range t.scores {
		if mirror, ok := t.scores[pair{p.b, p.a}]; !ok || mirror != s {
			return false
		}
	}

	return true
}

func (t *Table) contains(sym byte) bool {
	for _, s := range t.alphabet {
		if s == sym {
			return true
		}
	}

	return false
}

// Uniform builds a complete table over alphabet where identical symbols
// score match and differing symbols score mismatch. Handy for tests and
// simple nucleotide schemes.
func Uniform(alphabet string, match, mismatch int) *Table {
	t := New()
	for i := 0; i < len(alphabet); i++ {
		for j := 0; j < len(alphabet); j++ {
			s := mismatch
			if alphabet[i] == alphabet[j] {
				s = match
			}
			t.Set(alphabet[i], alphabet[j], s)
		}
	}

	return t
}

package align

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapScorer is a minimal Scorer for white-box tests.
type mapScorer map[[2]byte]int

func (m mapScorer) Score(a, b byte) (int, bool) {
	s, ok := m[[2]byte{a, b}]

	return s, ok
}

// uniformScorer builds a complete mapScorer over alphabet.
func uniformScorer(alphabet string, match, mismatch int) mapScorer {
	m := make(mapScorer)
	for i := 0; i < len(alphabet); i++ {
		for j := 0; j < len(alphabet); j++ {
			s := mismatch
			if alphabet[i] == alphabet[j] {
				s = match
			}
			m[[2]byte{alphabet[i], alphabet[j]}] = s
		}
	}

	return m
}

// randomSeq draws a length-n sequence over alphabet from rng.
func randomSeq(rng *rand.Rand, alphabet string, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return string(out)
}

// TestFill_FloorInvariant verifies that every cell of M, Ix, Iy and F is
// non-negative and that F is the cell-wise max of the other three, across
// random inputs and both gap policies.
func TestFill_FloorInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	scorer := uniformScorer("ACGT", 3, -2)

	for _, policy := range []GapPolicy{AllowOrthogonalExtension, DisallowOrthogonalExtension} {
		for trial := 0; trial < 20; trial++ {
			seq1 := randomSeq(rng, "ACGT", 1+rng.Intn(30))
			seq2 := randomSeq(rng, "ACGT", 1+rng.Intn(30))
			opts := Options{OpenPenalty: -3, ExtendPenalty: -1, Policy: policy}

			e := newEngine(seq1, seq2, scorer, opts)
			require.NoError(t, e.fill())

			for i := range e.f {
				for j := range e.f[i] {
					assert.GreaterOrEqual(t, e.m[i][j], 0, "M must be floored at 0")
					assert.GreaterOrEqual(t, e.ix[i][j], 0, "Ix must be floored at 0")
					assert.GreaterOrEqual(t, e.iy[i][j], 0, "Iy must be floored at 0")
					assert.Equal(t, max3(e.m[i][j], e.ix[i][j], e.iy[i][j]), e.f[i][j],
						"F must equal max(M, Ix, Iy) at (%d,%d)", i, j)
				}
			}
		}
	}
}

// TestFill_SentinelRowAndColumn verifies row 0 and column 0 stay zero.
func TestFill_SentinelRowAndColumn(t *testing.T) {
	scorer := uniformScorer("ACGT", 2, -1)
	e := newEngine("ACGT", "AGT", scorer, DefaultOptions())
	require.NoError(t, e.fill())

	for j := range e.f[0] {
		assert.Zero(t, e.f[0][j], "row 0 is the local-alignment floor")
	}
	for i := range e.f {
		assert.Zero(t, e.f[i][0], "column 0 is the local-alignment floor")
	}
}

// TestMax4_TieBreak pins the first-wins tie-break order that traceback
// determinism depends on.
func TestMax4_TieBreak(t *testing.T) {
	v, org := max4(5, 5, 5)
	assert.Equal(t, 5, v)
	assert.Equal(t, originMatch, org, "first candidate wins a three-way tie")

	v, org = max4(-1, 7, 7)
	assert.Equal(t, 7, v)
	assert.Equal(t, originGapX, org, "earlier candidate wins a two-way tie")

	v, org = max4(-1, -2, 0)
	assert.Equal(t, 0, v)
	assert.Equal(t, originGapY, org, "a zero candidate beats the zero floor")

	v, org = max4(-1, -2, -3)
	assert.Equal(t, 0, v)
	assert.Equal(t, originHalt, org, "the floor wins only when all candidates are negative")
}

// TestBestCoord_TwoStageTieBreak verifies the coordinate tie-break:
// topmost row whose row-maximum attains the global maximum, then the
// leftmost column within that row.
func TestBestCoord_TwoStageTieBreak(t *testing.T) {
	// Two rows attain the global maximum 5; the topmost must win.
	e := &engine{f: [][]int{
		{0, 0, 0},
		{0, 5, 0},
		{0, 0, 5},
	}}
	assert.Equal(t, Coord{Row: 1, Col: 1}, e.bestCoord())

	// Within the winning row, the leftmost maximal column must win.
	e = &engine{f: [][]int{
		{0, 0, 0},
		{0, 5, 5},
	}}
	assert.Equal(t, Coord{Row: 1, Col: 1}, e.bestCoord())
}

// TestStartState_PicksWinningMatrix verifies traceback enters in the
// state of whichever matrix attained F's maximum, first-wins M, Ix, Iy.
func TestStartState_PicksWinningMatrix(t *testing.T) {
	e := &engine{
		m:  [][]int{{0, 3}},
		ix: [][]int{{0, 7}},
		iy: [][]int{{0, 7}},
		f:  [][]int{{0, 7}},
	}
	org, val := e.startState(Coord{Row: 0, Col: 1})
	assert.Equal(t, originGapX, org, "Ix wins the Ix/Iy tie")
	assert.Equal(t, 7, val)

	e.m[0][1] = 7
	org, val = e.startState(Coord{Row: 0, Col: 1})
	assert.Equal(t, originMatch, org, "M wins any tie it participates in")
	assert.Equal(t, 7, val)
}

// TestFill_MissingPairFailsFast verifies the engine surfaces
// ErrScoreMissing as soon as the lookup lacks a pair from the inputs.
func TestFill_MissingPairFailsFast(t *testing.T) {
	scorer := uniformScorer("AC", 2, -1) // no G anywhere
	e := newEngine("AG", "AC", scorer, DefaultOptions())

	err := e.fill()
	assert.ErrorIs(t, err, ErrScoreMissing)
}

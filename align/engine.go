package align

import (
	"fmt"
	"math"
)

// negInf is the unreachable sentinel substituted for the cross term under
// DisallowOrthogonalExtension. Halved to keep candidate arithmetic far
// from overflow while still losing to the zero floor in every max.
const negInf = math.MinInt / 2

// engine owns the dynamic-programming state for one alignment request:
// four score matrices and three traceback matrices, allocated once,
// filled in a single row-major pass, then read-only for traceback.
//
// Matrix semantics (all shaped (len(seq2)+1) × (len(seq1)+1), with row 0
// and column 0 fixed at the local-alignment zero floor):
//
//	M[i][j]  — best score of an alignment ending in a symbol-symbol
//	           match/mismatch at (i,j)
//	Ix[i][j] — best score ending in a vertical gap (consumes seq2[i])
//	Iy[i][j] — best score ending in a horizontal gap (consumes seq1[j])
//	F[i][j]  — max(M, Ix, Iy) at (i,j): best score ending anywhere here
//
// tm/tix/tiy record, per cell, which candidate term won the corresponding
// recurrence (originMatch..originHalt). A zero score halts traceback
// regardless of the stored origin.
type engine struct {
	seq1, seq2 []byte // seq1 spans columns, seq2 spans rows; 0-based storage, 1-based cells
	scorer     Scorer
	open, ext  int
	cross      int // open under AllowOrthogonalExtension, negInf otherwise

	m, ix, iy, f [][]int
	tm, tix, tiy [][]origin
}

// newEngine allocates the seven matrices, all initialized to zero.
//
// Complexity: O(len(seq1)·len(seq2)) time and memory.
func newEngine(seq1, seq2 string, scorer Scorer, opts Options) *engine {
	e := &engine{
		seq1:   []byte(seq1),
		seq2:   []byte(seq2),
		scorer: scorer,
		open:   opts.OpenPenalty,
		ext:    opts.ExtendPenalty,
		cross:  opts.OpenPenalty,
	}
	if opts.Policy == DisallowOrthogonalExtension {
		e.cross = negInf
	}

	rows, cols := len(seq2)+1, len(seq1)+1
	e.m = newIntMatrix(rows, cols)
	e.ix = newIntMatrix(rows, cols)
	e.iy = newIntMatrix(rows, cols)
	e.f = newIntMatrix(rows, cols)
	e.tm = newOriginMatrix(rows, cols)
	e.tix = newOriginMatrix(rows, cols)
	e.tiy = newOriginMatrix(rows, cols)

	return e
}

func newIntMatrix(rows, cols int) [][]int {
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}

	return m
}

func newOriginMatrix(rows, cols int) [][]origin {
	m := make([][]origin, rows)
	for i := range m {
		m[i] = make([]origin, cols)
	}

	return m
}

// fill populates all seven matrices in row-major order. The ordering is a
// hard dependency: every recurrence reads only (i-1,·) and (·,j-1)
// neighbors, which must already be final.
//
// Tie-break contract: within each max(a,b,c,0) the first candidate in
// left-to-right order attaining the maximum wins, and its index is the
// origin recorded in the traceback matrix. Callers relying on
// bit-identical tracebacks depend on exactly this order.
//
// Returns ErrScoreMissing (wrapped with the offending pair) as soon as the
// similarity lookup comes up empty for a pair present in the inputs.
//
// Complexity: O(len(seq1)·len(seq2)) time.
func (e *engine) fill() error {
	var (
		i, j int
		s    int  // similarity(seq1[j], seq2[i])
		ok   bool // lookup presence flag
	)
	for i = 1; i <= len(e.seq2); i++ {
		for j = 1; j <= len(e.seq1); j++ {
			s, ok = e.scorer.Score(e.seq1[j-1], e.seq2[i-1])
			if !ok {
				return fmt.Errorf("%w: %q×%q", ErrScoreMissing, e.seq1[j-1], e.seq2[i-1])
			}

			// Match matrix: all three predecessors arrive diagonally.
			e.m[i][j], e.tm[i][j] = max4(
				e.m[i-1][j-1]+s,
				e.ix[i-1][j-1]+s,
				e.iy[i-1][j-1]+s,
			)

			// Vertical gap: open from M, extend Ix, cross from Iy.
			e.ix[i][j], e.tix[i][j] = max4(
				e.m[i-1][j]+e.open,
				e.ix[i-1][j]+e.ext,
				e.iy[i-1][j]+e.cross,
			)

			// Horizontal gap: open from M, cross from Ix, extend Iy.
			e.iy[i][j], e.tiy[i][j] = max4(
				e.m[i][j-1]+e.open,
				e.ix[i][j-1]+e.cross,
				e.iy[i][j-1]+e.ext,
			)

			e.f[i][j] = max3(e.m[i][j], e.ix[i][j], e.iy[i][j])
		}
	}

	return nil
}

// max4 evaluates max(a, b, c, 0) and reports which candidate won,
// first-in-order on ties. The zero floor sits at index 3 (originHalt),
// so it only wins when a, b and c are all strictly negative.
func max4(a, b, c int) (int, origin) {
	best, org := a, originMatch
	if b > best {
		best, org = b, originGapX
	}
	if c > best {
		best, org = c, originGapY
	}
	if 0 > best {
		best, org = 0, originHalt
	}

	return best, org
}

// max3 returns the maximum of three ints.
func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}

	return a
}

// bestScore returns the global maximum over F, i.e. the best local
// alignment score.
func (e *engine) bestScore() int {
	best := e.f[0][0]
	for i := range e.f {
		for _, v := range e.f[i] {
			if v > best {
				best = v
			}
		}
	}

	return best
}

// bestCoord returns the coordinate of the global maximum of F.
//
// Tie-break is two-stage: first the topmost row whose row-maximum attains
// the global maximum, then the leftmost column attaining that row's
// maximum. This differs from a single global row-major scan and is part
// of the deterministic-output contract.
func (e *engine) bestCoord() Coord {
	var (
		row    int      // winning row
		rowMax int      // maximum within the current row
		top    = negInf // best row-maximum seen so far
		j      int      // column cursor
	)
	for i := range e.f {
		rowMax = e.f[i][0]
		for j = 1; j < len(e.f[i]); j++ {
			if e.f[i][j] > rowMax {
				rowMax = e.f[i][j]
			}
		}
		if rowMax > top {
			top, row = rowMax, i
		}
	}

	col := 0
	for j = 1; j < len(e.f[row]); j++ {
		if e.f[row][j] > e.f[row][col] {
			col = j
		}
	}

	return Coord{Row: row, Col: col}
}

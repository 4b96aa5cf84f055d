package align

// lineBuilder accumulates the three parallel display lines. The core
// aligned region and the front context are constructed backward (from the
// best-scoring cell toward the sequence origins) and reversed once; the
// back context is then appended in forward order. Threading one explicit
// builder through all three phases keeps the accumulation free of shared
// mutable state.
type lineBuilder struct {
	top, match, bottom []byte
}

// emit appends one column to all three lines.
func (b *lineBuilder) emit(top, match, bottom byte) {
	b.top = append(b.top, top)
	b.match = append(b.match, match)
	b.bottom = append(b.bottom, bottom)
}

// reverse flips all three lines in place.
func (b *lineBuilder) reverse() {
	reverseBytes(b.top)
	reverseBytes(b.match)
	reverseBytes(b.bottom)
}

func reverseBytes(s []byte) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

// traceback reconstructs the best local alignment ending at best.
//
// It is a four-state walk (match, vertical gap, horizontal gap, halt)
// driven by the traceback matrix of the current state: each step emits one
// display column, moves to the recorded predecessor cell, and adopts the
// recorded predecessor state. The walk stops when the score read after a
// move is zero or the adopted state is halt — the local-alignment path has
// returned to the zero floor. The cell the walk stops on is the
// alignment's start; completeFront/completeBack then attach the flanking
// unaligned context, delimited by '(' / ')'.
//
// Complexity: O(len(seq1)+len(seq2)) time and memory.
func (e *engine) traceback(best Coord) (top, match, bottom string) {
	var (
		b    lineBuilder
		i, j = best.Row, best.Col
		next origin
		mark byte
	)

	state, cur := e.startState(best)
	for cur != 0 && state != originHalt {
		switch state {
		case originMatch:
			mark = ' '
			if e.seq1[j-1] == e.seq2[i-1] {
				mark = '|'
			}
			b.emit(e.seq1[j-1], mark, e.seq2[i-1])
			next = e.tm[i][j]
			i--
			j--
			cur = e.m[i][j]
		case originGapX:
			b.emit('-', ' ', e.seq2[i-1])
			next = e.tix[i][j]
			i--
			cur = e.ix[i][j]
		case originGapY:
			b.emit(e.seq1[j-1], ' ', '-')
			next = e.tiy[i][j]
			j--
			cur = e.iy[i][j]
		}
		state = next
	}

	// (i,j) is now the start coordinate of the aligned region.
	e.completeFront(&b, i, j)
	b.reverse()
	e.completeBack(&b, best.Row+1, best.Col+1)

	return string(b.top), string(b.match), string(b.bottom)
}

// startState picks the traceback entry state by inspecting which of
// M/Ix/Iy attained F's maximum at the best coordinate, first-wins in the
// order M, Ix, Iy. Starting unconditionally in the match state would be
// wrong whenever the best local alignment ends in a gap.
func (e *engine) startState(best Coord) (origin, int) {
	i, j := best.Row, best.Col
	switch f := e.f[i][j]; {
	case e.m[i][j] == f:
		return originMatch, e.m[i][j]
	case e.ix[i][j] == f:
		return originGapX, e.ix[i][j]
	default:
		return originGapY, e.iy[i][j]
	}
}

// completeFront prepends (into the still-backward builder) the unaligned
// prefix of both sequences, from the alignment start back to the sequence
// origins, opening with the '(' delimiter. The shorter side is padded
// with spaces so the three lines stay equal length.
func (e *engine) completeFront(b *lineBuilder, i, j int) {
	b.emit('(', ' ', '(')
	for i > 0 || j > 0 {
		top, bottom := byte(' '), byte(' ')
		if j > 0 {
			top = e.seq1[j-1]
		}
		if i > 0 {
			bottom = e.seq2[i-1]
		}
		b.emit(top, ' ', bottom)
		i--
		j--
	}
}

// completeBack appends the unaligned suffix of both sequences, from one
// position past the best-score coordinate to the sequence ends, opening
// with the ')' delimiter and space-padding the shorter side.
func (e *engine) completeBack(b *lineBuilder, i, j int) {
	b.emit(')', ' ', ')')
	for i <= len(e.seq2) || j <= len(e.seq1) {
		top, bottom := byte(' '), byte(' ')
		if j <= len(e.seq1) {
			top = e.seq1[j-1]
		}
		if i <= len(e.seq2) {
			bottom = e.seq2[i-1]
		}
		b.emit(top, ' ', bottom)
		i++
		j++
	}
}

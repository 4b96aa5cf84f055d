package align

// Smith–Waterman local alignment with affine gap penalties.
//
// Description:
//
//	Align finds the highest-scoring contiguous substring-to-substring
//	correspondence between two sequences, where opening a gap costs
//	OpenPenalty and each further position in that gap costs ExtendPenalty.
//
// Algorithm Outline (Gotoh three-matrix form):
//  1. Let n = len(seq2), m = len(seq1). Allocate (n+1)×(m+1) matrices
//     M, Ix, Iy, F plus traceback matrices TM, TIx, TIy, all zero.
//  2. For i = 1..n, j = 1..m (row-major; each cell reads only already-final
//     up/left/diagonal neighbors):
//     s        = similarity(seq1[j], seq2[i])
//     M[i][j]  = max(M[i-1][j-1]+s, Ix[i-1][j-1]+s, Iy[i-1][j-1]+s, 0)
//     Ix[i][j] = max(M[i-1][j]+open, Ix[i-1][j]+ext, Iy[i-1][j]+cross, 0)
//     Iy[i][j] = max(M[i][j-1]+open, Ix[i][j-1]+cross, Iy[i][j-1]+ext, 0)
//     F[i][j]  = max(M[i][j], Ix[i][j], Iy[i][j])
//     where cross is open under AllowOrthogonalExtension and an
//     unreachable sentinel under DisallowOrthogonalExtension. Every
//     max records its winning candidate index (first wins on ties) in
//     the corresponding traceback matrix.
//  3. The best score is the global maximum of F; its coordinate is
//     tie-broken by topmost row-maximum, then leftmost within that row.
//  4. Traceback walks from the best coordinate back to the zero floor,
//     rebuilding the aligned region, then attaches unaligned context.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (seven matrices, owned by the request, discarded after)
//
// Errors:
//   - ErrNilScorer       — scorer is nil.
//   - ErrPositivePenalty — a penalty greater than zero was supplied.
//   - ErrBadPolicy       — opts.Policy is not a known GapPolicy.
//   - ErrScoreMissing    — the lookup lacks a pair present in the inputs.
//
// Empty sequences are not errors: the matrices collapse to the 1×1 zero
// base case, the score is 0 and the aligned region is empty.

// Align computes the optimal local alignment between seq1 and seq2 under
// the supplied similarity lookup and options, and reconstructs the aligned
// subsequences plus flanking context via traceback.
//
// Example:
//
//	table := scoring.Uniform("ACGT", 2, -1)
//	res, err := align.Align("ACGT", "AGT", table, align.DefaultOptions())
func Align(seq1, seq2 string, scorer Scorer, opts Options) (Result, error) {
	if scorer == nil {
		return Result{}, ErrNilScorer
	}
	if opts.OpenPenalty > 0 || opts.ExtendPenalty > 0 {
		return Result{}, ErrPositivePenalty
	}
	switch opts.Policy {
	case AllowOrthogonalExtension, DisallowOrthogonalExtension:
		// ok
	default:
		return Result{}, ErrBadPolicy
	}

	e := newEngine(seq1, seq2, scorer, opts)
	if err := e.fill(); err != nil {
		return Result{}, err
	}

	best := e.bestCoord()
	top, match, bottom := e.traceback(best)

	return Result{
		Score:       e.bestScore(),
		Best:        best,
		Top:         top,
		Match:       match,
		Bottom:      bottom,
		ScoreMatrix: e.f,
	}, nil
}

// Package align defines core types, options, and sentinel errors
// for the align subpackage of github.com/katalvlaran/swalign.
package align

import (
	"errors"
)

// Sentinel errors for align operations.
var (
	// ErrNilScorer indicates a nil similarity lookup was supplied.
	ErrNilScorer = errors.New("align: scorer must be non-nil")
	// ErrScoreMissing indicates the similarity lookup has no entry for a
	// symbol pair that occurs in the inputs. This is a configuration error:
	// the request cannot proceed and no partial result is produced.
	ErrScoreMissing = errors.New("align: similarity table has no entry for symbol pair")
	// ErrPositivePenalty indicates a gap penalty greater than zero.
	// Penalties must be non-positive; a positive value would corrupt the
	// local-alignment floor-at-zero property.
	ErrPositivePenalty = errors.New("align: gap penalties must be non-positive")
	// ErrBadPolicy indicates an unrecognized GapPolicy value.
	ErrBadPolicy = errors.New("align: unknown gap policy")
)

// GapPolicy selects whether a gap of one kind may directly follow a gap
// of the opposite kind without an intervening match.
type GapPolicy int

const (
	// AllowOrthogonalExtension treats a gap opened directly after a gap in
	// the opposite direction as opening a fresh gap (scored with OpenPenalty).
	AllowOrthogonalExtension GapPolicy = iota
	// DisallowOrthogonalExtension excludes the cross term from the gap
	// recurrences entirely, forcing a match before switching gap direction.
	DisallowOrthogonalExtension
)

// Scorer is the similarity lookup consumed by the engine: an exact
// symbol-pair affinity, independent of how the caller populated it.
// The second return reports whether the pair is defined; an undefined
// pair occurring in the inputs surfaces as ErrScoreMissing.
type Scorer interface {
	Score(a, b byte) (int, bool)
}

// Options contains tunable parameters for a local alignment.
type Options struct {
	// OpenPenalty is the cost of opening a gap. Must be ≤ 0.
	OpenPenalty int
	// ExtendPenalty is the cost of each additional consecutive position in
	// an open gap. Must be ≤ 0, typically cheaper than OpenPenalty.
	ExtendPenalty int
	// Policy chooses whether opposite-direction gaps may be adjacent.
	Policy GapPolicy
}

// DefaultOptions returns an Options with default settings:
// OpenPenalty=-2, ExtendPenalty=-1, Policy=AllowOrthogonalExtension.
func DefaultOptions() Options {
	return Options{
		OpenPenalty:   -2,
		ExtendPenalty: -1,
		Policy:        AllowOrthogonalExtension,
	}
}

// Coord addresses a cell of the score matrices: Row indexes seq2,
// Col indexes seq1, both 1-based (row/column 0 are the sentinel floor).
type Coord struct {
	Row, Col int
}

// Result is the outcome of a local alignment request.
//
// Top, Match and Bottom are three parallel display lines of equal length:
// Top carries seq1 symbols, gap markers and unaligned context; Bottom
// carries seq2 analogously; Match carries '|' under identical aligned
// symbols and a space otherwise. The aligned region is delimited by
// '(' / ')' markers; flanking context is space-padded on the shorter side.
type Result struct {
	// Score is the global maximum over the F matrix.
	Score int
	// Best is the coordinate of Score within F.
	Best Coord
	// Top, Match, Bottom are the display lines described above.
	Top, Match, Bottom string
	// ScoreMatrix is the filled F matrix: ScoreMatrix[i][j] is the best
	// score achievable by any alignment ending at row i, column j.
	// Shape: (len(seq2)+1) × (len(seq1)+1); row 0 and column 0 are zero.
	ScoreMatrix [][]int
}

// origin identifies which predecessor matrix produced a score-matrix
// value; it doubles as the traceback state.
type origin uint8

const (
	originMatch origin = iota // value came from M (diagonal match/mismatch)
	originGapX                // value came from Ix (vertical gap, consumes seq2)
	originGapY                // value came from Iy (horizontal gap, consumes seq1)
	originHalt                // the zero floor won; local alignment restarts here
)

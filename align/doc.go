// Package align computes optimal local alignments between two symbol
// sequences under an affine gap-penalty model, and reconstructs the
// aligned subsequences via traceback.
//
// 🚀 What is local alignment?
//
//	The highest-scoring contiguous substring-to-substring correspondence
//	between two sequences — as opposed to aligning them end-to-end.
//	The classic tool for:
//	  • Protein / DNA similarity search (BLOSUM-style score tables)
//	  • Fuzzy substring matching over arbitrary byte alphabets
//	  • Diff-like "best common region" extraction
//
// ✨ Key features:
//   - affine gaps: separate gap-open and gap-extend costs (Gotoh matrices)
//   - explicit GapPolicy: allow or forbid adjacent opposite-direction gaps
//   - deterministic tie-breaks for bit-identical tracebacks
//   - three-line display output with '(' / ')' context delimiters
//   - fail-fast sentinel errors; empty inputs degrade gracefully, never panic
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/swalign/align"
//	  "github.com/katalvlaran/swalign/scoring"
//	)
//
//	table := scoring.Uniform("ACGT", 2, -1)
//	opts := align.DefaultOptions() // open=-2, extend=-1, orthogonal gaps allowed
//
//	res, err := align.Align("ACGT", "AGT", table, opts)
//	// res.Score, res.Best, res.Top / res.Match / res.Bottom
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) — seven dense matrices per request, no shared state
//
// The fill loop is strictly sequential (each cell depends on its up, left
// and diagonal neighbors); cells on a common anti-diagonal are mutually
// independent, so wavefront parallelism is possible but not implemented.
//
// See examples in example_test.go.
package align

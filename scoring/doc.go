// Package scoring provides similarity score tables for local alignment:
// exact symbol-pair → signed integer affinities.
//
// Tables can be built three ways:
//
//   - programmatically: New() + Set(a, b, score)
//   - uniformly: Uniform("ACGT", 2, -1) — one match score, one mismatch score
//   - from a file: Load / Parse of a whitespace-delimited square table
//     with single-character symbol headers on both axes (the layout of
//     the standard BLOSUM/PAM distribution files; '#' comments allowed)
//
// A *Table satisfies the align.Scorer interface, so it plugs straight
// into align.Align. Lookup is by exact symbol identity on both sides —
// there is no similarity-class fallback, and the engine fails fast on the
// first pair the table does not define.
package scoring

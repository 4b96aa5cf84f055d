// Package swalign computes optimal local alignments between symbol
// sequences under an affine gap-penalty model (Smith–Waterman with
// separate gap-open and gap-extend costs), and reconstructs the aligned
// subsequences via traceback.
//
// 🚀 What is swalign?
//
//	A small, deterministic dynamic-programming library that brings together:
//		• align/   — the Smith–Waterman matrix engine & traceback reconstructor
//		• scoring/ — similarity score tables (BLOSUM-style files, uniform schemes)
//		• cmd/     — a CLI that reads a sequence pair + score table and prints
//		             the score matrix and the best local alignment
//
// ✨ Why choose swalign?
//
//   - Deterministic – documented tie-breaks, bit-identical tracebacks
//   - Configurable – explicit gap policy for orthogonal gap extension
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure computation core – no I/O, no logging, no global state
//
// Quick ASCII example, aligning ACGT against AGT:
//
//	AC(GT)
//	   ||
//	 A(GT)
//
// The parentheses delimit the aligned region; flanking symbols are
// unaligned context.
//
//	go get github.com/katalvlaran/swalign/align
package swalign

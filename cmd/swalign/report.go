package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/swalign/align"
)

// errTooFewSequences indicates the input file held fewer than two sequences.
var errTooFewSequences = errors.New("input file must contain two sequences, one per line")

// readSequences reads the first two non-empty lines of the input file.
func readSequences(path string) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var seqs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() && len(seqs) < 2 {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			seqs = append(seqs, line)
		}
	}
	if err = sc.Err(); err != nil {
		return "", "", fmt.Errorf("read input: %w", err)
	}
	if len(seqs) < 2 {
		return "", "", errTooFewSequences
	}

	return seqs[0], seqs[1], nil
}

// printReport renders the three report sections: the input sequences, the
// tab-separated F score matrix with sequence symbols as headers, and the
// best local alignment with its three display lines.
func printReport(w io.Writer, seq1, seq2 string, res align.Result) {
	fmt.Fprintln(w, banner("Sequences"))
	fmt.Fprintln(w, "sequence1")
	fmt.Fprintln(w, seq1)
	fmt.Fprintln(w, "sequence2")
	fmt.Fprintln(w, seq2)

	fmt.Fprintln(w, banner("Score Matrix"))
	// Header row: one blank cell for the row labels, one for column 0.
	var b strings.Builder
	b.WriteByte('\t')
	for j := 0; j < len(seq1); j++ {
		b.WriteByte('\t')
		b.WriteByte(seq1[j])
	}
	fmt.Fprintln(w, b.String())
	for i, row := range res.ScoreMatrix {
		b.Reset()
		if i > 0 {
			b.WriteByte(seq2[i-1])
		}
		for _, v := range row {
			b.WriteByte('\t')
			b.WriteString(strconv.Itoa(v))
		}
		fmt.Fprintln(w, b.String())
	}

	fmt.Fprintln(w, banner("Best Local Alignment"))
	fmt.Fprintf(w, "Alignment Score:%d\n", res.Score)
	fmt.Fprintln(w, "Alignment Results:")
	fmt.Fprintln(w, res.Top)
	fmt.Fprintln(w, res.Match)
	fmt.Fprintln(w, res.Bottom)
}

// banner frames a section title the way the classic report does:
//
//	-----------
//	|Sequences|
//	-----------
func banner(title string) string {
	rule := strings.Repeat("-", len(title)+2)

	return rule + "\n|" + title + "|\n" + rule
}

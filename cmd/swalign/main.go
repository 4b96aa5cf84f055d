// Command swalign reads a two-line sequence file and a similarity score
// table, computes the best local alignment under affine gap penalties,
// and prints the score matrix and the aligned display lines.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/swalign/align"
	"github.com/katalvlaran/swalign/scoring"
)

var (
	// Flags
	inputPath string
	scorePath string
	openGap   int
	extendGap int
	policy    string
	verbose   bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "swalign",
	Short: "Smith–Waterman local alignment with affine gap penalties",
	Long: `swalign computes the optimal local alignment between two sequences
under an affine gap-penalty model and reconstructs the aligned region
via traceback.

The input file holds the two sequences, one per line. The score file is
a whitespace-delimited square table with single-character symbol headers
on both axes (BLOSUM-style; '#' comments allowed).

Example:
  swalign -i input.txt -s blosum62.txt -o -2 -e -1`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runAlign,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "file with the two sequences to align, one per line")
	rootCmd.Flags().StringVarP(&scorePath, "score", "s", "", "similarity score table file")
	rootCmd.Flags().IntVarP(&openGap, "open", "o", -2, "gap-open penalty (must be ≤ 0)")
	rootCmd.Flags().IntVarP(&extendGap, "extend", "e", -1, "gap-extend penalty (must be ≤ 0)")
	rootCmd.Flags().StringVar(&policy, "policy", "allow", "orthogonal gap policy: allow|disallow")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("score")
}

func runAlign(cmd *cobra.Command, args []string) error {
	opts := align.Options{OpenPenalty: openGap, ExtendPenalty: extendGap}
	switch policy {
	case "allow":
		opts.Policy = align.AllowOrthogonalExtension
	case "disallow":
		opts.Policy = align.DisallowOrthogonalExtension
	default:
		return fmt.Errorf("unknown --policy %q: want allow or disallow", policy)
	}

	seq1, seq2, err := readSequences(inputPath)
	if err != nil {
		return err
	}
	table, err := scoring.Load(scorePath)
	if err != nil {
		return err
	}
	logger.Debug("inputs loaded",
		zap.Int("len_seq1", len(seq1)),
		zap.Int("len_seq2", len(seq2)),
		zap.Int("alphabet", len(table.Alphabet())),
	)

	start := time.Now()
	res, err := align.Align(seq1, seq2, table, opts)
	if err != nil {
		return err
	}
	logger.Debug("alignment complete",
		zap.Int("score", res.Score),
		zap.Int("best_row", res.Best.Row),
		zap.Int("best_col", res.Best.Col),
		zap.Duration("elapsed", time.Since(start)),
	)

	printReport(cmd.OutOrStdout(), seq1, seq2, res)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package scoring

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a whitespace-delimited square score table.
//
// Format (the BLOSUM file convention):
//   - lines starting with '#' and blank lines are skipped
//   - the first remaining line is the header: one single-character column
//     symbol per field
//   - every following line is one data row: a single-character row symbol
//     followed by exactly one signed integer per column
//   - the table must be square: as many data rows as header columns
//
// The cell in row r, column c defines the affinity for the ordered pair
// (rowSymbol, columnSymbol). Symmetry is not assumed and not enforced;
// use (*Table).Symmetric to check it when required.
//
// Errors are sentinels from this package, wrapped with the offending line
// number where one exists.
func Parse(r io.Reader) (*Table, error) {
	var (
		cols []byte // column symbols from the header
		t    = New()
		rows int // data rows consumed
		line int // 1-based input line number, for error context
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		// Header: the first payload line names the column symbols.
		if cols == nil {
			header, err := parseSymbols(fields, line)
			if err != nil {
				return nil, err
			}
			cols = header

			continue
		}

		if len(fields) != len(cols)+1 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", ErrRowWidth, line, len(fields), len(cols)+1)
		}
		if len(fields[0]) != 1 {
			return nil, fmt.Errorf("%w: row label %q on line %d", ErrBadSymbol, fields[0], line)
		}
		rowSym := fields[0][0]
		if _, dup := t.Score(rowSym, cols[0]); dup {
			return nil, fmt.Errorf("%w: row %q on line %d", ErrDuplicateSymbol, rowSym, line)
		}
		for c, field := range fields[1:] {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: %q on line %d", ErrBadValue, field, line)
			}
			t.Set(rowSym, cols[c], v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scoring: reading table: %w", err)
	}

	if cols == nil {
		return nil, ErrEmptyTable
	}
	if rows != len(cols) {
		return nil, fmt.Errorf("%w: %d rows × %d columns", ErrNotSquare, rows, len(cols))
	}

	return t, nil
}

// parseSymbols validates the header fields as single, distinct symbols.
func parseSymbols(fields []string, line int) ([]byte, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyTable
	}
	syms := make([]byte, 0, len(fields))
	seen := make(map[byte]struct{}, len(fields))
	for _, f := range fields {
		if len(f) != 1 {
			return nil, fmt.Errorf("%w: header field %q on line %d", ErrBadSymbol, f, line)
		}
		sym := f[0]
		if _, dup := seen[sym]; dup {
			return nil, fmt.Errorf("%w: header symbol %q on line %d", ErrDuplicateSymbol, sym, line)
		}
		seen[sym] = struct{}{}
		syms = append(syms, sym)
	}

	return syms, nil
}

// Load reads a score table from a file. See Parse for the format.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scoring: open table: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

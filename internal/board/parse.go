package board

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/solitaire-go/internal/errors"
)

// Parse builds a Board from its text representation.
//
// Each line is one row of the grid. The alphabet is:
//
//	● peg
//	○ hole
//	◎ center position, starting with a hole
//	◉ center position, starting with a peg
//	. unreachable position
//
// All rows must have the same length, the outer two rings must consist
// entirely of unreachable cells, and at most one center marker may appear.
// Windows line endings are normalized and a single trailing newline is
// tolerated. Violations return an error wrapping ErrMalformedBoard.
func Parse(text string) (*Board, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, fmt.Errorf("empty board definition: %w", errors.ErrMalformedBoard)
	}

	lines := strings.Split(text, "\n")
	cols := len([]rune(lines[0]))

	b := &Board{
		rows:   len(lines),
		cols:   cols,
		target: -1,
	}
	b.cells = make([]Cell, 0, b.rows*b.cols)

	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, &errors.BoardError{
				Err: fmt.Errorf("row has %d columns, expected %d: %w", len(runes), cols, errors.ErrMalformedBoard),
				Row: row,
				Col: -1,
			}
		}
		for col, r := range runes {
			cell, center, err := parseRune(r)
			if err != nil {
				return nil, &errors.BoardError{Err: err, Row: row, Col: col}
			}
			if center {
				if b.target >= 0 {
					return nil, &errors.BoardError{
						Err: fmt.Errorf("center already defined: %w", errors.ErrMalformedBoard),
						Row: row,
						Col: col,
					}
				}
				b.target = b.Index(row, col)
			}
			b.cells = append(b.cells, cell)
		}
	}

	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// ParseFile reads a board definition from a file. Errors carry the file
// name for reporting.
func ParseFile(path string) (*Board, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	b, err := Parse(string(content))
	if err != nil {
		var boardErr *errors.BoardError
		if stderrors.As(err, &boardErr) {
			boardErr.File = path
			return nil, boardErr
		}
		return nil, errors.Wrapf(err, "%s", path)
	}
	return b, nil
}

// parseRune maps a board-file character to its cell state. center is true
// for the two center markers.
func parseRune(r rune) (cell Cell, center bool, err error) {
	switch r {
	case PegRune:
		return Peg, false, nil
	case HoleRune:
		return Hole, false, nil
	case CenterHoleRune:
		return Hole, true, nil
	case CenterPegRune:
		return Peg, true, nil
	case UnreachableRune:
		return Unreachable, false, nil
	default:
		return Unreachable, false, fmt.Errorf("invalid character %q: %w", r, errors.ErrMalformedBoard)
	}
}

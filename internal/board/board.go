package board

import (
	"fmt"
	"strings"

	"github.com/lgbarn/solitaire-go/internal/errors"
)

// MaxColumns is the maximum row width accepted in a board definition.
const MaxColumns = 40

// Border is the depth of the unreachable hedge surrounding the playable
// area. Jumps reach at most 2 cells, so with a 2-deep hedge the move
// generator never needs to check board boundaries.
const Border = 2

// Board represents a peg-solitaire board.
//
// The grid is stored as a flat slice in row-major order. Every board is
// rectangular and surrounded by a Border-deep ring of Unreachable cells,
// which the constructor enforces. The optional target is the position the
// last peg must occupy for the board to count as solved; -1 means the last
// peg may rest anywhere.
type Board struct {
	cells []Cell
	rows  int
	cols  int

	// target is the flat index of the required final peg position, or -1.
	target int
}

// Rows returns the number of rows, including the border.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns, including the border.
func (b *Board) Cols() int { return b.cols }

// Index converts row/column coordinates to a flat cell index.
func (b *Board) Index(row, col int) int {
	return row*b.cols + col
}

// RowCol converts a flat cell index to row/column coordinates.
func (b *Board) RowCol(pos int) (row, col int) {
	return pos / b.cols, pos % b.cols
}

// At returns the cell at the given flat index.
func (b *Board) At(pos int) Cell {
	return b.cells[pos]
}

// Target returns the flat index of the required final peg position.
// ok is false if the board has no target.
func (b *Board) Target() (pos int, ok bool) {
	return b.target, b.target >= 0
}

// PegCount returns the number of pegs currently on the board.
// The grid holds at most a few hundred cells, so a scan is cheap enough
// that no running counter is kept.
func (b *Board) PegCount() int {
	count := 0
	for _, c := range b.cells {
		if c == Peg {
			count++
		}
	}
	return count
}

// Solved reports whether the board is in a winning state: exactly one peg
// remains and, if a target is set, that peg occupies it.
func (b *Board) Solved() bool {
	last := -1
	for pos, c := range b.cells {
		if c != Peg {
			continue
		}
		if last >= 0 {
			return false
		}
		last = pos
	}
	if last < 0 {
		return false
	}
	return b.target < 0 || last == b.target
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		cells:  make([]Cell, len(b.cells)),
		rows:   b.rows,
		cols:   b.cols,
		target: b.target,
	}
	copy(clone.cells, b.cells)
	return clone
}

// Equal reports whether two boards have identical dimensions, cell
// contents, and target.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols || b.target != other.target {
		return false
	}
	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the board in its text-file form, including the border.
// The target cell, if any, is rendered with its center marker so that the
// output parses back to an equal board.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			pos := b.Index(row, col)
			r := b.cells[pos].Rune()
			if pos == b.target {
				if b.cells[pos] == Peg {
					r = CenterPegRune
				} else {
					r = CenterHoleRune
				}
			}
			sb.WriteRune(r)
		}
		if row < b.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Playable returns the grid with the border stripped, as rows of cells.
// Renderers work on this view so output never shows the hedge.
func (b *Board) Playable() [][]Cell {
	grid := make([][]Cell, 0, b.rows-2*Border)
	for row := Border; row < b.rows-Border; row++ {
		line := make([]Cell, 0, b.cols-2*Border)
		for col := Border; col < b.cols-Border; col++ {
			line = append(line, b.cells[b.Index(row, col)])
		}
		grid = append(grid, line)
	}
	return grid
}

// validate checks the board invariants: rectangular dimensions large enough
// to hold a border, column cap, a fully Unreachable border, and an
// in-bounds target on a playable cell.
func (b *Board) validate() error {
	if b.cols > MaxColumns {
		return fmt.Errorf("%d columns exceeds maximum of %d: %w", b.cols, MaxColumns, errors.ErrMalformedBoard)
	}
	if b.rows <= 2*Border || b.cols <= 2*Border {
		return fmt.Errorf("%dx%d grid has no playable area inside the border: %w", b.rows, b.cols, errors.ErrMalformedBoard)
	}
	if len(b.cells) != b.rows*b.cols {
		return fmt.Errorf("grid is not rectangular: %w", errors.ErrMalformedBoard)
	}
	for pos, c := range b.cells {
		row, col := b.RowCol(pos)
		if b.border(row, col) && c != Unreachable {
			return &errors.BoardError{
				Err: fmt.Errorf("border cell must be unreachable: %w", errors.ErrMalformedBoard),
				Row: row,
				Col: col,
			}
		}
	}
	if b.target >= 0 {
		if b.target >= len(b.cells) {
			return fmt.Errorf("target position out of bounds: %w", errors.ErrMalformedBoard)
		}
		if b.cells[b.target] == Unreachable {
			row, col := b.RowCol(b.target)
			return &errors.BoardError{
				Err: fmt.Errorf("target on unreachable cell: %w", errors.ErrMalformedBoard),
				Row: row,
				Col: col,
			}
		}
	}
	return nil
}

// border reports whether the given coordinates lie in the hedge.
func (b *Board) border(row, col int) bool {
	return row < Border || row >= b.rows-Border ||
		col < Border || col >= b.cols-Border
}

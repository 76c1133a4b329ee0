package board

import (
	"fmt"

	"github.com/lgbarn/solitaire-go/internal/errors"
)

// Move represents a single jump: the peg at From jumps over the peg at
// Over and lands in the hole at To. The three positions are colinear and
// adjacent in direction Dir. Moves are produced by LegalMovesFrom and
// Moves; hand-built moves should be checked with Legal before use.
type Move struct {
	From int
	Over int
	To   int
	Dir  Direction
}

// String returns a short description of the move: its source index and
// direction.
func (m Move) String() string {
	return fmt.Sprintf("%d %s", m.From, m.Dir)
}

// delta returns the flat-index offset of one step in the given direction.
func (b *Board) delta(d Direction) int {
	switch d {
	case Up:
		return -b.cols
	case Down:
		return b.cols
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}

// moveIn builds the move from pos in direction d without checking cell
// contents. The border guarantees Over and To are in bounds for any
// playable pos.
func (b *Board) moveIn(pos int, d Direction) Move {
	step := b.delta(d)
	return Move{From: pos, Over: pos + step, To: pos + 2*step, Dir: d}
}

// Legal reports whether the move is currently legal: the positions are
// consistent with its direction, From and Over hold pegs, and To is a hole.
func (b *Board) Legal(m Move) bool {
	if m.Dir == Still {
		return false
	}
	step := b.delta(m.Dir)
	if m.Over != m.From+step || m.To != m.From+2*step {
		return false
	}
	if m.From < 0 || m.From >= len(b.cells) {
		return false
	}
	row, col := b.RowCol(m.From)
	if b.border(row, col) {
		return false
	}
	return b.cells[m.From] == Peg && b.cells[m.Over] == Peg && b.cells[m.To] == Hole
}

// LegalMovesFrom returns the legal moves whose source is pos, in the fixed
// direction order Up, Down, Left, Right. At most four moves are returned.
func (b *Board) LegalMovesFrom(pos int) []Move {
	if pos < 0 || pos >= len(b.cells) || b.cells[pos] != Peg {
		return nil
	}
	var moves []Move
	for _, d := range Directions {
		m := b.moveIn(pos, d)
		if b.cells[m.Over] == Peg && b.cells[m.To] == Hole {
			moves = append(moves, m)
		}
	}
	return moves
}

// Moves returns every legal move on the board: pegs are visited in
// row-major order and each peg's moves in LegalMovesFrom order. The
// ordering determines which solution the search finds first.
func (b *Board) Moves() []Move {
	var moves []Move
	for pos, c := range b.cells {
		if c == Peg {
			moves = append(moves, b.LegalMovesFrom(pos)...)
		}
	}
	return moves
}

// Apply executes the move: From and Over become holes, To gains a peg.
// It validates the move first and returns ErrIllegalMove if it is not
// currently legal, leaving the board untouched.
func (b *Board) Apply(m Move) error {
	if !b.Legal(m) {
		return fmt.Errorf("%v: %w", m, errors.ErrIllegalMove)
	}
	b.apply(m)
	return nil
}

// MustApply executes the move without validation. The caller must hold a
// move obtained from LegalMovesFrom or Moves on the current board state;
// the search loop uses this to avoid re-checking in the hot path.
func (b *Board) MustApply(m Move) {
	b.apply(m)
}

func (b *Board) apply(m Move) {
	b.cells[m.From] = Hole
	b.cells[m.Over] = Hole
	b.cells[m.To] = Peg
}

// Undo reverts a move: the exact inverse of Apply. It is only valid
// immediately after the corresponding Apply, in LIFO order; the search's
// stack discipline guarantees this, so no move history is kept here.
func (b *Board) Undo(m Move) {
	b.cells[m.From] = Peg
	b.cells[m.Over] = Peg
	b.cells[m.To] = Hole
}

package solver

import (
	"github.com/lgbarn/solitaire-go/internal/board"
)

// Solution is an ordered sequence of moves taking the initial board to a
// winning state. It is only ever produced by Solve, so replaying its moves
// in order always succeeds.
type Solution struct {
	initial *board.Board
	moves   []board.Move
}

// Len returns the number of moves in the solution.
func (s *Solution) Len() int {
	return len(s.moves)
}

// Moves returns the move sequence in play order.
func (s *Solution) Moves() []board.Move {
	return s.moves
}

// Initial returns a copy of the board the solution starts from.
func (s *Solution) Initial() *board.Board {
	return s.initial.Clone()
}

// Step is one frame of a replayed solution: the board before Move is
// played. The last step has Final set and a Still move; it shows the
// winning position.
type Step struct {
	Board *board.Board
	Move  board.Move
	Final bool
}

// Replay materializes the per-step board snapshots renderers consume.
// It returns Len()+1 steps: one per move plus the final position.
func (s *Solution) Replay() []Step {
	b := s.initial.Clone()
	steps := make([]Step, 0, len(s.moves)+1)
	for _, m := range s.moves {
		steps = append(steps, Step{Board: b.Clone(), Move: m})
		b.MustApply(m)
	}
	steps = append(steps, Step{Board: b, Move: board.Move{Dir: board.Still}, Final: true})
	return steps
}

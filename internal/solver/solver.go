// Package solver implements exhaustive backtracking search for peg
// solitaire boards.
package solver

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/solitaire-go/internal/board"
	"github.com/lgbarn/solitaire-go/internal/errors"
)

// Solver performs a depth-first search over jump sequences. It works on a
// single board, applying a move, recursing, and undoing the move on
// backtrack; the board is never copied per branch.
//
// The search is deliberately plain: no solvability pre-check, no symmetry
// reduction, no transposition table. Pegs are tried in row-major order and
// each peg's jumps in the board's fixed direction order, so the first
// solution found is the same on every run. Wall-clock time can be
// combinatorially large on boards with many playable cells.
type Solver struct {
	board *board.Board
	log   *logrus.Logger

	path  []board.Move
	pegs  int
	best  int
	nodes uint64
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger used for progress reporting.
func WithLogger(log *logrus.Logger) Option {
	return func(s *Solver) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a solver for the given board. The board is cloned once, so
// the caller's copy is left untouched by the search.
func New(b *board.Board, opts ...Option) *Solver {
	s := &Solver{
		board: b.Clone(),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve runs the search to completion. On success it returns the move
// sequence leading to a winning state; the sequence is empty if the board
// was already solved. If the whole tree is exhausted without a win it
// returns ErrNoSolution, which is an expected outcome for most boards
// rather than a fault.
func (s *Solver) Solve() (*Solution, error) {
	s.pegs = s.board.PegCount()
	s.path = s.path[:0]
	s.best = 0
	s.nodes = 0

	initial := s.board.Clone()

	if !s.search() {
		s.log.WithFields(logrus.Fields{
			"pegs":  s.pegs,
			"nodes": s.nodes,
		}).Debug("search exhausted")
		return nil, fmt.Errorf("%d pegs: %w", s.pegs, errors.ErrNoSolution)
	}

	s.log.WithFields(logrus.Fields{
		"moves": len(s.path),
		"nodes": s.nodes,
	}).Debug("solution found")

	moves := make([]board.Move, len(s.path))
	copy(moves, s.path)
	return &Solution{initial: initial, moves: moves}, nil
}

// search is the recursive core: true means the current board state leads
// to a win and s.path holds the moves that get there. Each level plays one
// move, so recursion depth never exceeds the initial peg count minus one.
func (s *Solver) search() bool {
	s.nodes++
	if s.board.Solved() {
		return true
	}

	size := s.board.Rows() * s.board.Cols()
	for pos := 0; pos < size; pos++ {
		if s.board.At(pos) != board.Peg {
			continue
		}
		for _, m := range s.board.LegalMovesFrom(pos) {
			s.board.MustApply(m)
			s.path = append(s.path, m)
			s.progress()

			if s.search() {
				return true
			}

			s.path = s.path[:len(s.path)-1]
			s.board.Undo(m)
		}
	}
	return false
}

// progress logs the first time each search depth is reached, mirroring the
// "moves so far" trace of long-running solves.
func (s *Solver) progress() {
	if len(s.path) > s.best {
		s.best = len(s.path)
		s.log.Debugf("moves so far %d/%d", s.best, s.pegs-1)
	}
}

// Package render turns solutions into text, image, and GIF output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/solitaire-go/internal/board"
	"github.com/lgbarn/solitaire-go/internal/config"
	"github.com/lgbarn/solitaire-go/internal/solver"
)

// Renderer writes solutions in the format selected by the configuration.
type Renderer struct {
	cfg *config.Config
	log *logrus.Logger
}

// New creates a renderer for the given configuration.
func New(cfg *config.Config, log *logrus.Logger) *Renderer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Renderer{cfg: cfg, log: log}
}

// Render writes the solution according to the configured output mode.
func (r *Renderer) Render(sol *solver.Solution) error {
	switch r.cfg.Mode {
	case config.Images:
		return r.Images(sol)
	case config.GIF:
		return r.GIF(sol)
	default:
		return r.Text(r.cfg.OutputFile, sol)
	}
}

// Text writes the solution as a plain-text narration: each step's board
// with the border stripped, followed by the move played from it.
func (r *Renderer) Text(w io.Writer, sol *solver.Solution) error {
	for i, step := range sol.Replay() {
		if _, err := io.WriteString(w, playableString(step.Board)); err != nil {
			return err
		}
		if step.Final {
			if _, err := fmt.Fprintf(w, "\nsolved in %d moves\n", sol.Len()); err != nil {
				return err
			}
			break
		}
		row, col := playableCoords(step.Board, step.Move.From)
		if _, err := fmt.Fprintf(w, "\nmove %d: (%d,%d) %s\n\n", i+1, row, col, step.Move.Dir); err != nil {
			return err
		}
	}
	return nil
}

// playableString renders the border-stripped board as text.
func playableString(b *board.Board) string {
	var sb strings.Builder
	for _, row := range b.Playable() {
		for _, c := range row {
			sb.WriteRune(c.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// playableCoords converts a flat board index to row/column coordinates in
// the border-stripped view.
func playableCoords(b *board.Board, pos int) (row, col int) {
	row, col = b.RowCol(pos)
	return row - board.Border, col - board.Border
}

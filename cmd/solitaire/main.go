// solitaire is a tool for solving peg-solitaire boards and rendering the
// winning move sequence as text, images, or an animated GIF.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/solitaire-go/internal/board"
	"github.com/lgbarn/solitaire-go/internal/config"
	"github.com/lgbarn/solitaire-go/internal/errors"
	"github.com/lgbarn/solitaire-go/internal/render"
	"github.com/lgbarn/solitaire-go/internal/solver"
)

const programVersion = "0.1.0"

// defaultBoardFile is solved when no input file is given.
const defaultBoardFile = "boards/english.txt"

// Exit codes. No solution is a distinct outcome from a malformed board or
// an I/O failure, so scripts can tell the two apart.
const (
	exitOK         = 0
	exitError      = 1
	exitNoSolution = 2
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("solitaire version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	log := setupLogger(cfg)

	input := defaultBoardFile
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	}

	os.Exit(run(input, cfg, log))
}

// run loads the board, searches it, and renders the result. It returns the
// process exit code.
func run(input string, cfg *config.Config, log *logrus.Logger) int {
	b, err := board.ParseFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading board %s: %v\n", input, err)
		return exitError
	}

	fields := logrus.Fields{
		"file": input,
		"pegs": b.PegCount(),
		"size": fmt.Sprintf("%dx%d", b.Rows(), b.Cols()),
	}
	if target, ok := b.Target(); ok {
		row, col := b.RowCol(target)
		fields["target"] = fmt.Sprintf("(%d,%d)", row, col)
	}
	log.WithFields(fields).Info("board loaded")

	sol, err := solver.New(b, solver.WithLogger(log)).Solve()
	if err != nil {
		if stderrors.Is(err, errors.ErrNoSolution) {
			fmt.Fprintln(os.Stderr, "No solution exists for this board.")
			return exitNoSolution
		}
		fmt.Fprintf(os.Stderr, "Error solving board: %v\n", err)
		return exitError
	}

	log.WithField("moves", sol.Len()).Info("solution found")

	if err := render.New(cfg, log).Render(sol); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s output: %v\n", cfg.Mode, err)
		return exitError
	}

	return exitOK
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: solitaire [options] [board-file]\n\n")
	fmt.Fprintf(os.Stderr, "A tool for solving peg-solitaire boards.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBoard files use one character per cell:\n")
	fmt.Fprintf(os.Stderr, "  %c  peg\n", board.PegRune)
	fmt.Fprintf(os.Stderr, "  %c  hole\n", board.HoleRune)
	fmt.Fprintf(os.Stderr, "  %c  center position, starting with a hole\n", board.CenterHoleRune)
	fmt.Fprintf(os.Stderr, "  %c  center position, starting with a peg\n", board.CenterPegRune)
	fmt.Fprintf(os.Stderr, "  %c  unreachable position\n", board.UnreachableRune)
	fmt.Fprintf(os.Stderr, "\nThe board must be surrounded by 2 unreachable cells on every side.\n")
	fmt.Fprintf(os.Stderr, "If a center position is set, the last peg must come to rest there.\n")
}

package testutil

import (
	"testing"

	"github.com/lgbarn/solitaire-go/internal/board"
)

// Shared board fixtures. EnglishBoard is the classic 32-peg cross with a
// center target; LineBoard is the smallest solvable board, one jump long.
const (
	EnglishBoard = `...........
...........
....●●●....
....●●●....
..●●●●●●●..
..●●●◎●●●..
..●●●●●●●..
....●●●....
....●●●....
...........
...........`

	LineBoard = `.......
.......
..●●○..
.......
.......`
)

// ParseBoard parses a board definition and returns nil if it is invalid.
// Use this for tests where parse failure is an acceptable outcome.
func ParseBoard(text string) *board.Board {
	b, err := board.Parse(text)
	if err != nil {
		return nil
	}
	return b
}

// MustParseBoard parses a board definition.
// It calls t.Fatal on invalid input; use it in test setup where a parse
// failure should abort the test.
func MustParseBoard(t *testing.T, text string) *board.Board {
	t.Helper()
	b, err := board.Parse(text)
	if err != nil {
		t.Fatalf("failed to parse test board: %v\n%s", err, text)
	}
	return b
}

// Package board provides the peg-solitaire board and move operations.
package board

// Cell represents the state of a single board position.
type Cell uint8

const (
	Unreachable Cell = iota // Off the playable area (border or cut-out)
	Hole                    // Playable position with no peg
	Peg                     // Playable position holding a peg
)

// String returns the string representation of a cell.
func (c Cell) String() string {
	names := []string{"Unreachable", "Hole", "Peg"}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Rune returns the board-file character for the cell.
func (c Cell) Rune() rune {
	switch c {
	case Peg:
		return PegRune
	case Hole:
		return HoleRune
	default:
		return UnreachableRune
	}
}

// Board-file alphabet. CenterHoleRune and CenterPegRune mark the target
// position and only appear in board files, never in a constructed Board.
const (
	PegRune         = '●'
	HoleRune        = '○'
	CenterHoleRune  = '◎'
	CenterPegRune   = '◉'
	UnreachableRune = '.'
)

// Direction represents the direction of a jump.
type Direction int

const (
	Still Direction = iota // No movement; marks the final animation frame
	Up
	Down
	Left
	Right
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	names := []string{"Still", "Up", "Down", "Left", "Right"}
	if int(d) < len(names) {
		return names[d]
	}
	return "Unknown"
}

// Directions lists the four jump directions in the order the move
// generator tries them. The order is fixed so that search results are
// reproducible for a given board.
var Directions = [4]Direction{Up, Down, Left, Right}

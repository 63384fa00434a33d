package game

import "fmt"

const Size = 3

// NumStates is the size of the raw encoding space, 3^9.
const NumStates = 19683

// Piece is the content of a cell. Empty doubles as "no winner".
type Piece int

const (
	Empty Piece = iota
	PieceA
	PieceB
)

func (p Piece) String() string {
	switch p {
	case PieceA:
		return "X"
	case PieceB:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player's piece, or Empty for Empty.
func Opponent(p Piece) Piece {
	switch p {
	case PieceA:
		return PieceB
	case PieceB:
		return PieceA
	}
	return Empty
}

// Position addresses a cell by row and column. Coordinates outside [0, Size) are
// valid values but never refer to an empty cell.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

func (p Position) inBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

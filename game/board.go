package game

import (
	"fmt"
	"strings"
)

// Board is the 3x3 grid indexed as Board[row][col]. The zero value is an empty board.
type Board [Size][Size]Piece

// IsEmpty reports whether pos is on the board and holds no piece.
func (b *Board) IsEmpty(pos Position) bool {
	return pos.inBounds() && b[pos.Row][pos.Col] == Empty
}

// Play places piece at pos. Playing on an occupied or off-board cell is a caller
// bug: the driver checks IsEmpty first.
func (b *Board) Play(pos Position, piece Piece) {
	if !b.IsEmpty(pos) {
		panic(fmt.Sprintf("cannot play %v at %v: cell is not empty", piece, pos))
	}
	b[pos.Row][pos.Col] = piece
}

// Winner returns the piece owning a complete line, or Empty if there is none.
// Rows and columns are checked pairwise (row i, then column i), then both diagonals.
func (b *Board) Winner() Piece {
	for i := 0; i < Size; i++ {
		if b[i][0] != Empty && b[i][0] == b[i][1] && b[i][1] == b[i][2] {
			return b[i][0]
		}
		if b[0][i] != Empty && b[0][i] == b[1][i] && b[1][i] == b[2][i] {
			return b[0][i]
		}
	}
	if b[0][0] != Empty && b[0][0] == b[1][1] && b[1][1] == b[2][2] {
		return b[0][0]
	}
	if b[2][0] != Empty && b[2][0] == b[1][1] && b[1][1] == b[0][2] {
		return b[2][0]
	}
	return Empty
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] == Empty {
				return false
			}
		}
	}
	return true
}

// EmptyCells lists the empty cells in row-major order.
func (b *Board) EmptyCells() []Position {
	cells := make([]Position, 0, Size*Size)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] == Empty {
				cells = append(cells, Position{Row: i, Col: j})
			}
		}
	}
	return cells
}

// RandomEmpty draws row and column with intn until it hits an empty cell, which
// makes every empty cell equally likely. It never returns on a full board.
func (b *Board) RandomEmpty(intn func(n int) int) Position {
	pos := Position{Row: -1, Col: -1}
	for !b.IsEmpty(pos) {
		pos.Row = intn(Size)
		pos.Col = intn(Size)
	}
	return pos
}

// Count returns how many cells hold piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] == piece {
				n++
			}
		}
	}
	return n
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("    0 1 2\n")
	sb.WriteString("   +-----+\n")
	for i := 0; i < Size; i++ {
		fmt.Fprintf(&sb, " %d |", i)
		for j := 0; j < Size; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b[i][j].String())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   +-----+\n")
	return sb.String()
}

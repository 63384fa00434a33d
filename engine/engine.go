package engine

import (
	"errors"

	"tictactoe/game"
)

// ErrIllegalMove is returned when a player answers GetMove with a cell that is not empty.
var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays one round until a player wins or the board is full
	Run() (Outcome, error)
}

// Outcome describes a finished round. Winner is Empty for a draw.
type Outcome struct {
	Winner game.Piece
	Moves  int
	Board  game.Board
}

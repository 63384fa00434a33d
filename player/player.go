package player

import (
	"tictactoe/agent"
	"tictactoe/game"
)

// Player is anything that can take part in a round. The round driver calls
// NoteNewGame on both players, asks the player to move with GetMove whenever it is
// its turn, and finishes with exactly one of NoteVictory, NoteDefeat or NoteDraw
// carrying the final board.
type Player interface {
	Piece() game.Piece
	// GetMove returns an empty cell of a board that is neither won nor full.
	GetMove(board game.Board) (game.Position, error)
	NoteNewGame()
	NoteVictory(board game.Board)
	NoteDefeat(board game.Board)
	NoteDraw(board game.Board)
}

var (
	_ Player = (*agent.Agent)(nil)
	_ Player = (*Random)(nil)
	_ Player = (*Human)(nil)
)

package engine

import (
	"fmt"

	"tictactoe/game"
	"tictactoe/output"
	"tictactoe/player"
)

// Local drives rounds between two in-process players on a fresh board each time.
type Local struct {
	players [2]player.Player
	sink    *output.Sink
}

var _ Engine = (*Local)(nil)

func NewLocal(players [2]player.Player, sink *output.Sink) *Local {
	if players[0] == nil || players[1] == nil {
		panic("need two players")
	}
	if players[0].Piece() == game.Empty || players[1].Piece() == game.Empty {
		panic("every player needs a piece")
	}
	if players[0].Piece() == players[1].Piece() {
		panic("players must not share a piece")
	}
	// PieceA always moves first
	if players[1].Piece() == game.PieceA {
		players[0], players[1] = players[1], players[0]
	}
	return &Local{
		players: players,
		sink:    sink,
	}
}

// Run plays one round. A GetMove error or an illegal move ends the round
// immediately; in that case no outcome is noted to either player.
func (e *Local) Run() (Outcome, error) {
	var board game.Board
	for _, p := range e.players {
		p.NoteNewGame()
	}

	moves := 0
	for turn := 0; ; turn = 1 - turn {
		mover, opponent := e.players[turn], e.players[1-turn]
		move, err := mover.GetMove(board)
		if err != nil {
			return Outcome{Moves: moves, Board: board}, fmt.Errorf("failed to get move for %v: %w", mover.Piece(), err)
		}
		if !board.IsEmpty(move) {
			return Outcome{Moves: moves, Board: board}, fmt.Errorf("%v played %v: %w", mover.Piece(), move, ErrIllegalMove)
		}
		board.Play(move, mover.Piece())
		moves++

		if winner := board.Winner(); winner == mover.Piece() {
			mover.NoteVictory(board)
			opponent.NoteDefeat(board)
			e.sink.Printf("[Engine] %v wins after %d moves", winner, moves)
			return Outcome{Winner: winner, Moves: moves, Board: board}, nil
		}
		if board.IsFull() {
			mover.NoteDraw(board)
			opponent.NoteDraw(board)
			e.sink.Printf("[Engine] draw after %d moves", moves)
			return Outcome{Moves: moves, Board: board}, nil
		}
	}
}

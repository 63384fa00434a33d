package player

import (
	"tictactoe/game"
	"tictactoe/output"

	"golang.org/x/exp/rand"
)

const randomName = "Random"

// Random plays a uniformly random empty cell and learns nothing.
type Random struct {
	piece game.Piece
	rand  *rand.Rand
	sink  *output.Sink
}

func NewRandom(piece game.Piece, seed uint64, sink *output.Sink) *Random {
	if piece == game.Empty {
		panic("random player needs a piece to play")
	}
	return &Random{
		piece: piece,
		rand:  rand.New(rand.NewSource(seed)),
		sink:  sink,
	}
}

func (r *Random) Piece() game.Piece {
	return r.piece
}

func (r *Random) GetMove(board game.Board) (game.Position, error) {
	move := board.RandomEmpty(r.rand.Intn)
	r.sink.Printf("[%s] I shall play... %v", randomName, move)
	return move, nil
}

func (r *Random) NoteNewGame()           {}
func (r *Random) NoteVictory(game.Board) {}
func (r *Random) NoteDefeat(game.Board)  {}
func (r *Random) NoteDraw(game.Board)    {}

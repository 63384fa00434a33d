package player

import (
	"bytes"
	"testing"

	"tictactoe/game"
	"tictactoe/output"

	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	t.Run("panics without a piece", func(t *testing.T) {
		require.Panics(t, func() {
			NewRandom(game.Empty, 1, nil)
		}, "Should panic when the player has no piece")
	})

	t.Run("only plays empty cells", func(t *testing.T) {
		r := NewRandom(game.PieceB, 1, output.Disabled())
		for n := 0; n < 200; n++ {
			var board game.Board
			piece := game.PieceA
			for board.Winner() == game.Empty && !board.IsFull() {
				move, err := r.GetMove(board)
				require.NoError(t, err)
				require.True(t, board.IsEmpty(move), "Move %v should be on an empty cell of\n%v", move, board)
				board.Play(move, piece)
				piece = game.Opponent(piece)
			}
		}
	})

	t.Run("last empty cell", func(t *testing.T) {
		r := NewRandom(game.PieceA, 5, nil)
		board := game.Board{
			{game.PieceA, game.PieceB, game.PieceA},
			{game.PieceA, game.PieceB, game.PieceB},
			{game.PieceB, game.PieceA, game.Empty},
		}

		move, err := r.GetMove(board)

		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 2, Col: 2}, move)
	})

	t.Run("same seed same moves", func(t *testing.T) {
		first := NewRandom(game.PieceA, 42, nil)
		second := NewRandom(game.PieceA, 42, nil)
		for n := 0; n < 20; n++ {
			a, _ := first.GetMove(game.Board{})
			b, _ := second.GetMove(game.Board{})
			require.Equal(t, a, b, "Seeded players should agree on move %d", n)
		}
	})

	t.Run("narrates moves", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRandom(game.PieceB, 3, output.New(&buf))
		board := game.Board{
			{game.PieceA, game.PieceB, game.PieceA},
			{game.PieceA, game.Empty, game.PieceB},
			{game.PieceB, game.PieceA, game.PieceA},
		}

		_, err := r.GetMove(board)
		r.NoteNewGame()
		r.NoteVictory(board)
		r.NoteDefeat(board)
		r.NoteDraw(board)

		require.NoError(t, err)
		require.Equal(t, "[Random] I shall play... (1, 1)\n", buf.String(), "Only the move should be narrated")
	})
}

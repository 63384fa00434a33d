package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"tictactoe/game"

	"github.com/pkg/errors"
)

// ErrInputExhausted is returned by Human.GetMove once its input ends before a legal
// move was read.
var ErrInputExhausted = errors.New("user failed to provide input")

// Human reads moves as "row col" pairs from a text stream and talks to the user on out.
type Human struct {
	piece   game.Piece
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(piece game.Piece, in io.Reader, out io.Writer) *Human {
	if piece == game.Empty {
		panic("human player needs a piece to play")
	}
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Human{
		piece:   piece,
		scanner: scanner,
		out:     out,
	}
}

func (h *Human) Piece() game.Piece {
	return h.piece
}

// GetMove keeps reading until it gets an empty cell. Anything else, including
// words that are not numbers, is answered with "Invalid move." and skipped.
func (h *Human) GetMove(board game.Board) (game.Position, error) {
	fmt.Fprintf(h.out, "The board is as follows:\n%v", board)
	fmt.Fprint(h.out, "Enter your move: ")
	for {
		row, err := h.next()
		if err != nil {
			return game.Position{}, err
		}
		col, err := h.next()
		if err != nil {
			return game.Position{}, err
		}
		move := game.Position{Row: row, Col: col}
		if board.IsEmpty(move) {
			return move, nil
		}
		fmt.Fprintln(h.out, "Invalid move.")
	}
}

// next returns the next word as a number; unparsable words become -1, which is
// never an empty cell.
func (h *Human) next() (int, error) {
	if !h.scanner.Scan() {
		if err := h.scanner.Err(); err != nil {
			return 0, errors.Wrap(err, "failed to read move")
		}
		return 0, ErrInputExhausted
	}
	n, err := strconv.Atoi(h.scanner.Text())
	if err != nil {
		return -1, nil
	}
	return n, nil
}

func (h *Human) NoteNewGame() {}

func (h *Human) NoteVictory(board game.Board) {
	h.finish("You have won!", board)
}

func (h *Human) NoteDefeat(board game.Board) {
	h.finish("You have been defeated!", board)
}

func (h *Human) NoteDraw(board game.Board) {
	h.finish("The game concluded without a winner.", board)
}

func (h *Human) finish(message string, board game.Board) {
	fmt.Fprintf(h.out, "%s\nThe final board state is:\n\n%v\n", message, board)
}

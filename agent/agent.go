package agent

import (
	"math"
	"time"

	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/output"

	"golang.org/x/exp/rand"
)

type Option func(a *Agent)

// WithRand gives the agent its own random source. It must not be shared.
func WithRand(r *rand.Rand) Option {
	return func(a *Agent) {
		if r != nil {
			a.rand = r
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.rand = rand.New(rand.NewSource(seed))
	}
}

func WithSink(sink *output.Sink) Option {
	return func(a *Agent) {
		if sink != nil {
			a.sink = sink
		}
	}
}

// WithTable starts the agent from an existing value table instead of a fresh one.
func WithTable(table *Table) Option {
	return func(a *Agent) {
		if table != nil {
			a.table = table
		}
	}
}

// Stats counts finished games. It has no effect on learning.
type Stats struct {
	Games  int
	Wins   int
	Losses int
	Draws  int
}

// Agent learns afterstate values by temporal differences and plays epsilon-greedily
// on them. The embedded config fields may be changed before training starts.
type Agent struct {
	meta.AgentConfig

	piece game.Piece
	table *Table
	rand  *rand.Rand
	sink  *output.Sink

	exploration  float64 // Per-game, reset on every new game
	learningRate float64 // Lifetime, never increases

	// Boards around the agent's last move in the current game
	before   game.Board
	after    game.Board
	recorded bool

	stats Stats
}

func New(piece game.Piece, config meta.AgentConfig, options ...Option) *Agent {
	if piece == game.Empty {
		panic("agent needs a piece to play")
	}
	a := &Agent{ // Default values
		AgentConfig:  config,
		piece:        piece,
		table:        NewTable(),
		rand:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		sink:         output.Disabled(),
		exploration:  config.ExplorationBase,
		learningRate: config.LearningRate,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *Agent) Piece() game.Piece {
	return a.piece
}

func (a *Agent) NoteNewGame() {
	if a.stats.Games == 0 { // Pick up config changes made after construction
		a.learningRate = a.AgentConfig.LearningRate
	}
	a.exploration = a.ExplorationBase
	a.recorded = false
	a.stats.Games++
}

// GetMove picks a random empty cell with the current exploration probability and
// the highest valued afterstate otherwise, then learns from the choice. The board
// must not be full.
func (a *Agent) GetMove(board game.Board) (game.Position, error) {
	var move game.Position
	exploratory := a.rand.Float64() < a.exploration
	if exploratory {
		move = board.RandomEmpty(a.rand.Intn)
	} else {
		move = a.bestMove(board)
	}

	after := board
	after.Play(move, a.piece)

	// The previous afterstate is worth what the new one is worth now
	a.backup(a.table.Get(after))
	a.before, a.after, a.recorded = board, after, true
	a.exploration *= a.ExplorationDecay

	if exploratory {
		a.sink.Printf("[%s] I shall explore... %v", Name, move)
	} else {
		a.sink.Printf("[%s] I shall play... %v", Name, move)
	}
	return move, nil
}

// bestMove returns the empty cell whose afterstate has the highest value; the first
// one in row-major order wins ties.
func (a *Agent) bestMove(board game.Board) game.Position {
	var bestMove game.Position
	bestValue := math.Inf(-1)
	for _, move := range board.EmptyCells() {
		next := board
		next.Play(move, a.piece)
		if value := a.table.Get(next); value > bestValue {
			bestValue = value
			bestMove = move
		}
	}
	return bestMove
}

func (a *Agent) NoteVictory(board game.Board) {
	a.finish(board, a.WinReward)
	a.stats.Wins++
}

func (a *Agent) NoteDefeat(board game.Board) {
	a.finish(board, a.LossReward)
	a.stats.Losses++
}

func (a *Agent) NoteDraw(board game.Board) {
	a.finish(board, a.DrawReward)
	a.stats.Draws++
}

// finish pins the terminal board to its reward and propagates it to the agent's last move.
func (a *Agent) finish(board game.Board, reward float64) {
	a.table.Set(board, reward)
	a.backup(reward)
	a.recorded = false
}

// backup nudges both boards of the recorded move toward target, then decays the
// learning rate. Nothing happens before the agent's first move of a game.
func (a *Agent) backup(target float64) {
	if !a.recorded {
		return
	}
	a.table.UpdateToward(a.after, target, a.learningRate)
	a.table.UpdateToward(a.before, target, a.learningRate)
	a.learningRate *= a.LearningRateDecay
}

// SetExploration changes the per-game exploration base and the current probability.
// Zero makes the agent purely greedy.
func (a *Agent) SetExploration(base float64) {
	a.ExplorationBase = base
	a.exploration = base
}

func (a *Agent) Exploration() float64 {
	return a.exploration
}

// Rate returns the current learning rate.
func (a *Agent) Rate() float64 {
	return a.learningRate
}

func (a *Agent) Stats() Stats {
	return a.stats
}

func (a *Agent) Table() *Table {
	return a.table
}

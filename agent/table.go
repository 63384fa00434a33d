package agent

import "tictactoe/game"

// Table is a dense state-value table over the whole board encoding space. Every
// access goes through game.Canonical, so symmetric boards share one entry.
// Entries for unreachable boards keep their initial value.
type Table struct {
	values [game.NumStates]float64
}

func NewTable() *Table {
	t := &Table{}
	for i := range t.values {
		t.values[i] = Neutral
	}
	return t
}

func (t *Table) Get(b game.Board) float64 {
	return t.values[game.Canonical(b)]
}

func (t *Table) Set(b game.Board, value float64) {
	t.values[game.Canonical(b)] = value
}

// UpdateToward moves the value of b a fraction rate of the way to target.
func (t *Table) UpdateToward(b game.Board, target, rate float64) {
	i := game.Canonical(b)
	t.values[i] += rate * (target - t.values[i])
}

func (t *Table) Len() int {
	return len(t.values)
}

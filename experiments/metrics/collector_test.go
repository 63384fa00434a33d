package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("panics on empty windows", func(t *testing.T) {
		require.Panics(t, func() { NewCollector(0) })
	})

	t.Run("closes a window every n rounds", func(t *testing.T) {
		c := NewCollector(3)
		results := []Result{Win, Win, Loss, Draw, Win, Win, Loss}
		closed := []bool{}
		for i, result := range results {
			closed = append(closed, c.Add(result, float64(i), 0.5))
		}

		report := c.Report()

		require.Equal(t, []bool{false, false, true, false, false, true, false}, closed)
		require.Equal(t, []WindowRecord{
			{Rounds: 3, Wins: 2, Losses: 1, Exploration: 2, LearningRate: 0.5},
			{Rounds: 6, Wins: 2, Draws: 1, Exploration: 5, LearningRate: 0.5},
		}, report.Windows)
		require.Equal(t, 7, report.Rounds, "Partial window still counts toward the totals")
		require.Equal(t, 4, report.Wins)
		require.Equal(t, 2, report.Losses)
		require.Equal(t, 1, report.Draws)
	})

	t.Run("report is a snapshot", func(t *testing.T) {
		c := NewCollector(1)
		c.Add(Win, 0, 0)
		report := c.Report()
		c.Add(Loss, 0, 0)

		require.Len(t, report.Windows, 1, "Later rounds should not leak into an earlier report")
	})
}

func TestWinRates(t *testing.T) {
	require.Equal(t, 0.0, WindowRecord{}.WinRate(), "Empty window")
	require.Equal(t, 0.5, WindowRecord{Wins: 2, Losses: 1, Draws: 1}.WinRate())

	var eval EvalResult
	require.Equal(t, 0.0, eval.WinRate(), "No rounds played")
	eval.Add(Win)
	eval.Add(Win)
	eval.Add(Win)
	eval.Add(Draw)
	require.Equal(t, EvalResult{Rounds: 4, Wins: 3, Draws: 1}, eval)
	require.Equal(t, 0.75, eval.WinRate())
}

func TestSummarize(t *testing.T) {
	t.Run("no windows", func(t *testing.T) {
		require.Equal(t, Summary{}, Summarize(nil))
	})

	t.Run("single window", func(t *testing.T) {
		summary := Summarize([]WindowRecord{{Rounds: 10, Wins: 6, Losses: 4}})

		require.Equal(t, Summary{Windows: 1, MeanWin: 0.6, StdDevWin: 0, BestWin: 0.6, LastWin: 0.6}, summary)
	})

	t.Run("several windows", func(t *testing.T) {
		windows := []WindowRecord{
			{Rounds: 4, Wins: 1, Losses: 3},
			{Rounds: 8, Wins: 3, Losses: 1},
			{Rounds: 12, Wins: 2, Draws: 2},
		}

		summary := Summarize(windows)

		require.Equal(t, 3, summary.Windows)
		require.InDelta(t, 0.5, summary.MeanWin, 1e-12)
		require.InDelta(t, 0.25, summary.StdDevWin, 1e-12, "Sample standard deviation of 0.25, 0.75 and 0.5")
		require.Equal(t, 0.75, summary.BestWin)
		require.Equal(t, 0.5, summary.LastWin)
		require.False(t, math.IsNaN(summary.StdDevWin))
	})
}

package experiments

import (
	"fmt"

	"tictactoe/agent"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/output"
	"tictactoe/player"

	"github.com/rs/zerolog/log"
)

// NewAgent builds the agent trained by the command line: it plays X, narrates
// through sink and draws its random numbers from the configured seed.
func NewAgent(cfg meta.Config, sink *output.Sink) *agent.Agent {
	return agent.New(game.PieceA, cfg.Agent, agent.WithSeed(cfg.Seed), agent.WithSink(sink))
}

// Train plays cfg.TrainingRounds rounds of td against a random player. The sink
// is disabled for the whole run; callers enable it again when they need output.
func Train(td *agent.Agent, cfg meta.Config, sink *output.Sink) metrics.Report {
	sink.Disable()
	random := player.NewRandom(game.Opponent(td.Piece()), cfg.Seed+1, sink)
	e := engine.NewLocal([2]player.Player{td, random}, sink)
	collector := metrics.NewCollector(cfg.ReportEvery)
	tp := startThroughput()

	log.Info().Msgf("starting training for %d rounds...", cfg.TrainingRounds)

	for i := 0; i < cfg.TrainingRounds; i++ {
		outcome := runRound(e, td)
		tp.add()
		if collector.Add(resultFor(td, outcome), td.Exploration(), td.Rate()) {
			window := collector.Report().Windows
			last := window[len(window)-1]
			log.Debug().Msgf("completed %d of %d training rounds with window win rate: %.3f", last.Rounds, cfg.TrainingRounds, last.WinRate())
		}
	}

	report := collector.Report()
	log.Info().Msgf("completed training: %d wins, %d losses, %d draws at %.0f rounds/s", report.Wins, report.Losses, report.Draws, tp.rate())
	return report
}

// Evaluate plays rounds against a fresh random player with exploration switched
// off. The agent keeps learning from these rounds; its exploration base is
// restored afterwards.
func Evaluate(td *agent.Agent, rounds int, seed uint64) metrics.EvalResult {
	base := td.ExplorationBase
	td.SetExploration(0)
	defer td.SetExploration(base)

	random := player.NewRandom(game.Opponent(td.Piece()), seed, output.Disabled())
	e := engine.NewLocal([2]player.Player{td, random}, output.Disabled())

	log.Info().Msgf("starting evaluation for %d rounds...", rounds)

	result := metrics.EvalResult{}
	for i := 0; i < rounds; i++ {
		result.Add(resultFor(td, runRound(e, td)))
	}

	log.Info().Msgf("completed evaluation with win rate: %.3f (%d wins, %d losses, %d draws)", result.WinRate(), result.Wins, result.Losses, result.Draws)
	return result
}

// RunTrainingExperiment trains and evaluates a new agent, then writes the
// reports to a fresh directory under cfg.ReportDir unless it is empty.
func RunTrainingExperiment(cfg meta.Config, sink *output.Sink) (*agent.Agent, metrics.EvalResult, error) {
	td := NewAgent(cfg, sink)
	report := Train(td, cfg, sink)
	eval := Evaluate(td, cfg.EvaluationRounds, cfg.Seed+2)
	if cfg.ReportDir == "" {
		return td, eval, nil
	}

	writer, err := metrics.NewWriter(cfg.ReportDir)
	if err != nil {
		return td, eval, fmt.Errorf("failed to create report writer: %w", err)
	}
	err = writer.WriteWindows(report.Windows)
	if err != nil {
		return td, eval, fmt.Errorf("failed to store training windows: %w", err)
	}
	err = writer.WriteEvaluation(metrics.Summarize(report.Windows), eval)
	if err != nil {
		return td, eval, fmt.Errorf("failed to store evaluation: %w", err)
	}
	if len(report.Windows) > 0 {
		err = writer.PlotWinRate(report.Windows)
		if err != nil {
			return td, eval, fmt.Errorf("failed to plot training windows: %w", err)
		}
	}
	log.Info().Msgf("stored reports in %s", writer.Dir())
	return td, eval, nil
}

// runRound plays one round between players that never fail to move.
func runRound(e engine.Engine, td *agent.Agent) engine.Outcome {
	outcome, err := e.Run()
	if err != nil {
		panic(fmt.Sprintf("failed to run round %d: %v", td.Stats().Games, err))
	}
	return outcome
}

func resultFor(td *agent.Agent, outcome engine.Outcome) metrics.Result {
	switch outcome.Winner {
	case td.Piece():
		return metrics.Win
	case game.Empty:
		return metrics.Draw
	default:
		return metrics.Loss
	}
}

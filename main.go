package main

import (
	"fmt"
	"os"

	"tictactoe/engine"
	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/output"
	"tictactoe/player"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	seed       uint64
	verbose    bool
	cfg        meta.Config
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Tic-tac-toe agent that learns by temporal differences",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			cfg = meta.Default()
			if configPath != "" {
				loaded, err := meta.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overriding the default configuration")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", 1, "Seed for the agent and its opponents")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log training progress per window")

	cmd.AddCommand(trainCommand())
	cmd.AddCommand(playCommand())
	return cmd
}

func trainCommand() *cobra.Command {
	var rounds int
	var reportDir string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train against a random player, evaluate and write reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("rounds") {
				cfg.TrainingRounds = rounds
			}
			if cmd.Flags().Changed("report-dir") {
				cfg.ReportDir = reportDir
			}
			if err := cfg.Validate(); err != nil {
				return errors.WithMessage(err, "invalid configuration")
			}

			td, eval, err := experiments.RunTrainingExperiment(cfg, output.Disabled())
			if err != nil {
				return err
			}
			stats := td.Stats()
			log.Info().Msgf("agent played %d rounds; held-out win rate %.3f", stats.Games, eval.WinRate())
			return nil
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", meta.TRAINING_ROUNDS, "Number of training rounds")
	cmd.Flags().StringVar(&reportDir, "report-dir", "reports", "Directory for training reports; empty disables them")
	return cmd
}

func playCommand() *cobra.Command {
	var rounds int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Train silently, then play against the agent on the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("rounds") {
				cfg.TrainingRounds = rounds
			}
			if err := cfg.Validate(); err != nil {
				return errors.WithMessage(err, "invalid configuration")
			}

			sink := output.Disabled()
			td := experiments.NewAgent(cfg, sink)
			experiments.Train(td, cfg, sink)

			sink.Enable(os.Stdout)
			human := player.NewHuman(game.Opponent(td.Piece()), os.Stdin, os.Stdout)
			sink.Board(fmt.Sprintf("You play %v. Enter moves as \"row col\":", human.Piece()), game.Board{})
			e := engine.NewLocal([2]player.Player{td, human}, sink)
			for {
				_, err := e.Run()
				if errors.Is(err, player.ErrInputExhausted) {
					fmt.Println("Bye!")
					return nil
				}
				if err != nil {
					return err
				}
			}
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", meta.TRAINING_ROUNDS, "Number of training rounds before play")
	return cmd
}

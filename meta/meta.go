// meta/meta.go
package meta

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TRAINING_ROUNDS defines the number of rounds played against the random player before evaluation.
const TRAINING_ROUNDS = 100000

// EVALUATION_ROUNDS defines the number of held-out rounds played with exploration off.
const EVALUATION_ROUNDS = 1000

// REPORT_EVERY defines how many training rounds make up one reported window.
const REPORT_EVERY = 1000

// AgentConfig holds the learning hyperparameters of the TD agent.
type AgentConfig struct {
	// Chance of a random move at the start of each game
	ExplorationBase float64 `yaml:"exploration_base"`
	// Per-move multiplicative decay of the exploration chance within a game
	ExplorationDecay float64 `yaml:"exploration_decay"`
	// Step size at the start of the agent's lifetime
	LearningRate float64 `yaml:"learning_rate"`
	// Per-update multiplicative decay of the step size
	LearningRateDecay float64 `yaml:"learning_rate_decay"`

	WinReward  float64 `yaml:"win_reward"`
	DrawReward float64 `yaml:"draw_reward"`
	LossReward float64 `yaml:"loss_reward"`
}

// Config is everything the command line needs to train and evaluate an agent.
type Config struct {
	Seed             uint64      `yaml:"seed"`
	TrainingRounds   int         `yaml:"training_rounds"`
	EvaluationRounds int         `yaml:"evaluation_rounds"`
	ReportEvery      int         `yaml:"report_every"`
	ReportDir        string      `yaml:"report_dir"`
	Agent            AgentConfig `yaml:"agent"`
}

func DefaultAgent() AgentConfig {
	return AgentConfig{
		ExplorationBase:   0.3,
		ExplorationDecay:  0.9,
		LearningRate:      0.5,
		LearningRateDecay: 0.999995,
		WinReward:         1,
		DrawReward:        0,
		LossReward:        -1,
	}
}

func Default() Config {
	return Config{
		Seed:             1,
		TrainingRounds:   TRAINING_ROUNDS,
		EvaluationRounds: EVALUATION_ROUNDS,
		ReportEvery:      REPORT_EVERY,
		ReportDir:        "reports",
		Agent:            DefaultAgent(),
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file keep
// their default values; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %q", path)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.WithMessagef(err, "invalid config %q", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TrainingRounds < 0 {
		return errors.Errorf("training_rounds must not be negative, got %d", c.TrainingRounds)
	}
	if c.EvaluationRounds < 0 {
		return errors.Errorf("evaluation_rounds must not be negative, got %d", c.EvaluationRounds)
	}
	if c.ReportEvery <= 0 {
		return errors.Errorf("report_every must be positive, got %d", c.ReportEvery)
	}
	return c.Agent.Validate()
}

func (a AgentConfig) Validate() error {
	if a.ExplorationBase < 0 || a.ExplorationBase > 1 {
		return errors.Errorf("exploration_base must be in [0, 1], got %v", a.ExplorationBase)
	}
	if a.ExplorationDecay <= 0 || a.ExplorationDecay > 1 {
		return errors.Errorf("exploration_decay must be in (0, 1], got %v", a.ExplorationDecay)
	}
	if a.LearningRate < 0 || a.LearningRate > 1 {
		return errors.Errorf("learning_rate must be in [0, 1], got %v", a.LearningRate)
	}
	if a.LearningRateDecay <= 0 || a.LearningRateDecay > 1 {
		return errors.Errorf("learning_rate_decay must be in (0, 1], got %v", a.LearningRateDecay)
	}
	if !(a.WinReward > a.DrawReward && a.DrawReward > a.LossReward) {
		return errors.Errorf("rewards must satisfy win > draw > loss, got %v/%v/%v", a.WinReward, a.DrawReward, a.LossReward)
	}
	return nil
}

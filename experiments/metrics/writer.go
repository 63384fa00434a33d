package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a fresh directory for one run's reports under root.
func NewWriter(root string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteWindows(records []WindowRecord) error {
	path := filepath.Join(w.baseDir, "training.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create training file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"rounds", "wins", "losses", "draws", "win_rate", "exploration", "learning_rate"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write training header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.Losses),
			strconv.Itoa(record.Draws),
			strconv.FormatFloat(record.WinRate(), 'f', 4, 64),
			strconv.FormatFloat(record.Exploration, 'g', -1, 64),
			strconv.FormatFloat(record.LearningRate, 'g', -1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write training row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush training file: %w", err)
	}
	return nil
}

func (w *Writer) WriteEvaluation(summary Summary, eval EvalResult) error {
	path := filepath.Join(w.baseDir, "evaluation.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create evaluation file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	rows := [][]string{
		{"metric", "value"},
		{"training_windows", strconv.Itoa(summary.Windows)},
		{"training_mean_win_rate", strconv.FormatFloat(summary.MeanWin, 'f', 4, 64)},
		{"training_stddev_win_rate", strconv.FormatFloat(summary.StdDevWin, 'f', 4, 64)},
		{"training_best_win_rate", strconv.FormatFloat(summary.BestWin, 'f', 4, 64)},
		{"training_last_win_rate", strconv.FormatFloat(summary.LastWin, 'f', 4, 64)},
		{"evaluation_rounds", strconv.Itoa(eval.Rounds)},
		{"evaluation_wins", strconv.Itoa(eval.Wins)},
		{"evaluation_losses", strconv.Itoa(eval.Losses)},
		{"evaluation_draws", strconv.Itoa(eval.Draws)},
		{"evaluation_win_rate", strconv.FormatFloat(eval.WinRate(), 'f', 4, 64)},
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write evaluation rows: %w", err)
	}
	return nil
}

// PlotWinRate draws the per-window win, loss and draw rates as a line chart.
func (w *Writer) PlotWinRate(records []WindowRecord) error {
	p := plot.New()
	p.Title.Text = "Training against a random player"
	p.X.Label.Text = "Rounds"
	p.Y.Label.Text = "Rate"
	p.Y.Min = 0
	p.Y.Max = 1

	series := []struct {
		name  string
		count func(WindowRecord) int
	}{
		{"wins", func(r WindowRecord) int { return r.Wins }},
		{"losses", func(r WindowRecord) int { return r.Losses }},
		{"draws", func(r WindowRecord) int { return r.Draws }},
	}
	for i, s := range series {
		points := make(plotter.XYs, len(records))
		for j, record := range records {
			points[j] = plotter.XY{
				X: float64(record.Rounds),
				Y: float64(s.count(record)) / float64(max(record.Games(), 1)),
			}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("failed to plot %s: %w", s.name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	path := filepath.Join(w.baseDir, "win_rate.png")
	err := p.Save(8*vg.Inch, 5*vg.Inch, path)
	if err != nil {
		return fmt.Errorf("failed to save win rate plot: %w", err)
	}
	return nil
}

package metrics

import "gonum.org/v1/gonum/stat"

type Result int

const (
	Win Result = iota
	Loss
	Draw
)

// WindowRecord summarises ReportEvery consecutive training rounds. Rounds is the
// total number of rounds played when the window closed; Exploration and
// LearningRate are the agent's values at that point.
type WindowRecord struct {
	Rounds       int
	Wins         int
	Losses       int
	Draws        int
	Exploration  float64
	LearningRate float64
}

func (w WindowRecord) Games() int {
	return w.Wins + w.Losses + w.Draws
}

func (w WindowRecord) WinRate() float64 {
	if w.Games() == 0 {
		return 0
	}
	return float64(w.Wins) / float64(w.Games())
}

type Report struct {
	Windows []WindowRecord
	Rounds  int
	Wins    int
	Losses  int
	Draws   int
}

// EvalResult counts held-out rounds played with exploration switched off.
type EvalResult struct {
	Rounds int
	Wins   int
	Losses int
	Draws  int
}

func (e EvalResult) WinRate() float64 {
	if e.Rounds == 0 {
		return 0
	}
	return float64(e.Wins) / float64(e.Rounds)
}

func (e *EvalResult) Add(result Result) {
	e.Rounds++
	switch result {
	case Win:
		e.Wins++
	case Loss:
		e.Losses++
	default:
		e.Draws++
	}
}

// Collector groups training results into windows of a fixed number of rounds.
// A trailing partial window is dropped from the windows but kept in the totals.
type Collector struct {
	every   int
	current WindowRecord
	report  Report
}

func NewCollector(every int) *Collector {
	if every <= 0 {
		panic("window size must be positive")
	}
	return &Collector{every: every}
}

// Add records one round. It returns true when the round closed a window.
func (c *Collector) Add(result Result, exploration, learningRate float64) bool {
	c.report.Rounds++
	switch result {
	case Win:
		c.current.Wins++
		c.report.Wins++
	case Loss:
		c.current.Losses++
		c.report.Losses++
	default:
		c.current.Draws++
		c.report.Draws++
	}
	if c.current.Games() < c.every {
		return false
	}
	c.current.Rounds = c.report.Rounds
	c.current.Exploration = exploration
	c.current.LearningRate = learningRate
	c.report.Windows = append(c.report.Windows, c.current)
	c.current = WindowRecord{}
	return true
}

func (c *Collector) Report() Report {
	report := c.report
	report.Windows = append([]WindowRecord(nil), c.report.Windows...)
	return report
}

type Summary struct {
	Windows   int
	MeanWin   float64
	StdDevWin float64
	BestWin   float64
	LastWin   float64
}

// Summarize describes the distribution of per-window win rates.
func Summarize(windows []WindowRecord) Summary {
	if len(windows) == 0 {
		return Summary{}
	}
	rates := make([]float64, len(windows))
	for i, w := range windows {
		rates[i] = w.WinRate()
	}
	summary := Summary{
		Windows: len(windows),
		LastWin: rates[len(rates)-1],
	}
	summary.MeanWin, summary.StdDevWin = stat.MeanStdDev(rates, nil)
	if len(rates) == 1 {
		summary.StdDevWin = 0
	}
	for _, rate := range rates {
		if rate > summary.BestWin {
			summary.BestWin = rate
		}
	}
	return summary
}

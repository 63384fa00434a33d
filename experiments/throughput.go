package experiments

import "time"

// throughput measures how many rounds per second a run plays.
type throughput struct {
	start  time.Time
	rounds int
}

func startThroughput() *throughput {
	return &throughput{start: time.Now()}
}

func (t *throughput) add() {
	t.rounds++
}

func (t *throughput) rate() float64 {
	elapsed := time.Since(t.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(t.rounds) / elapsed
}

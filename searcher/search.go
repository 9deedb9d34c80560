package searcher

import (
	"isolation/game"
)

// search carries everything one move decision needs through the recursion.
// A new one is built for every call to GetMove, so agents stay reentrant.
type search struct {
	player    game.Player // Perspective of the searching agent
	evaluator game.Evaluator
	timeLeft  TimeLeft
	threshold float64
	metrics   MetricsCollector
	cutoff    bool // Whether a depth-limited leaf was scored
}

func (c *config) newSearch(state game.State, timeLeft TimeLeft) *search {
	metrics := NewNoMetricsCollector()
	if c.metrics {
		metrics = NewMetricsCollector()
	}
	return &search{
		player:    state.ActivePlayer(),
		evaluator: c.evaluator,
		timeLeft:  timeLeft,
		threshold: c.timeout,
		metrics:   metrics,
	}
}

// checkClock must run before any other work in a search frame.
func (s *search) checkClock() error {
	if s.timeLeft() < s.threshold {
		return ErrSearchTimeout
	}
	s.metrics.AddNode()
	return nil
}

func (s *search) score(state game.State) float64 {
	s.cutoff = true
	return s.evaluator.Score(state, s.player)
}

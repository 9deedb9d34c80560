package searcher

import (
	"errors"
	"time"
)

// TimeLeft returns the milliseconds remaining in the current turn.
type TimeLeft func() float64

// ErrSearchTimeout aborts a search once the remaining time drops below the
// agent's timeout threshold. It unwinds every search frame unchanged and is
// only handled by GetMove/FindMove.
var ErrSearchTimeout = errors.New("search timeout")

// Countdown returns a time source for a turn that started now and lasts budget.
func Countdown(budget time.Duration) TimeLeft {
	return Deadline(time.Now().Add(budget))
}

// Deadline returns a time source that reaches zero at deadline.
func Deadline(deadline time.Time) TimeLeft {
	return func() float64 {
		return float64(time.Until(deadline)) / float64(time.Millisecond)
	}
}

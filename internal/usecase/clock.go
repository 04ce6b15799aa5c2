package usecase

import "time"

// Clock abstracts wall-clock reads and blocking sleeps so scheduler tests
// can drive freeze waits and poll cycles without real time passing.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// NewRealClock returns the production Clock backed by the time package.
func NewRealClock() Clock {
	return realClock{}
}

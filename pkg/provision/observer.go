package provision

import "time"

// Observer follows a run's progress, for example to drive a spinner.
type Observer interface {
	Step(name string)
	Wait(attempt int, d time.Duration)
}

type nopObserver struct{}

func (nopObserver) Step(string)             {}
func (nopObserver) Wait(int, time.Duration) {}

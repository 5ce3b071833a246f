package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/klothoplatform/farmcreator/pkg/logging"
	"github.com/schollz/progressbar/v3"
)

// spinner shows the current provisioning step on a terminal.
type spinner struct {
	bar *progressbar.ProgressBar

	mu   sync.Mutex
	step string

	stop chan struct{}
	done chan struct{}
}

func newSpinner(w io.Writer) *spinner {
	s := &spinner{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetElapsedTime(true),
		),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.spin()
	return s
}

func (s *spinner) spin() {
	defer close(s.done)
	t := time.NewTicker(100 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
			_ = s.bar.Add(1)
		}
	}
}

func (s *spinner) Step(name string) {
	s.mu.Lock()
	s.step = name
	s.mu.Unlock()
	s.describe(name)
}

func (s *spinner) Wait(attempt int, d time.Duration) {
	s.mu.Lock()
	step := s.step
	s.mu.Unlock()
	s.describe(fmt.Sprintf("%s (attempt %d in %s)", step, attempt, d.Round(time.Second)))
}

// describe keeps the spinner on one line; the spinner and timer take about 20 columns.
func (s *spinner) describe(text string) {
	s.bar.Describe(logging.Truncate(text, logging.TermWidth()-20))
}

func (s *spinner) Close() {
	close(s.stop)
	<-s.done
	_ = s.bar.Finish()
}

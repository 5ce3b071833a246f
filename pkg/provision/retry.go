package provision

import (
	"context"
	"time"

	"github.com/gojek/heimdall/v7"
)

// RetryPolicy is a bounded retry with a constant delay between attempts.
type RetryPolicy struct {
	Attempts int           `mapstructure:"attempts" json:"attempts" yaml:"attempts"`
	Delay    time.Duration `mapstructure:"delay" json:"delay" yaml:"delay"`
	// Jitter is the maximum random time added to each delay.
	Jitter time.Duration `mapstructure:"jitter" json:"jitter" yaml:"jitter"`
	// DelayFirst also waits before the first attempt.
	DelayFirst bool `mapstructure:"delay_first" json:"delay_first" yaml:"delay_first"`
}

var (
	DefaultQueuePoll = RetryPolicy{Attempts: 3}
	// The fleet role's trust policy takes a few seconds to propagate; until it
	// does, CreateFleet cannot assume the role.
	DefaultFleetCreate = RetryPolicy{Attempts: 3, Delay: 6 * time.Second, DelayFirst: true}
)

// WaitFunc is told about each wait before it happens.
type WaitFunc func(attempt int, d time.Duration)

// Do calls fn until it returns nil or the attempts are used up. It returns the
// number of attempts made and the last error. Waits end early when ctx is done.
func (p RetryPolicy) Do(ctx context.Context, onWait WaitFunc, fn func(ctx context.Context) error) (int, error) {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	retrier := heimdall.NewRetrier(heimdall.NewConstantBackoff(p.Delay, p.Jitter))

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 || p.DelayFirst {
			if d := retrier.NextInterval(i); d > 0 {
				if onWait != nil {
					onWait(i+1, d)
				}
				if werr := sleep(ctx, d); werr != nil {
					if err == nil {
						err = werr
					}
					return i, err
				}
			}
		}
		if err = fn(ctx); err == nil {
			return i + 1, nil
		}
		if ctx.Err() != nil {
			return i + 1, err
		}
	}
	return attempts, err
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

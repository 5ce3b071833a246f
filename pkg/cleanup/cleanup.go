// Package cleanup turns process signals into context cancellation so that an
// in-flight provisioning run can roll back before the process exits.
package cleanup

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Callback func(ctx context.Context, sig os.Signal) error

var (
	mu        sync.Mutex
	callbacks []Callback

	exit = os.Exit
)

// OnKill registers a callback to run when the first termination signal arrives.
func OnKill(callback Callback) {
	mu.Lock()
	defer mu.Unlock()
	callbacks = append(callbacks, callback)
}

// Execute runs every registered callback, in registration order, and returns
// all of their errors combined.
func Execute(ctx context.Context, sig os.Signal) error {
	mu.Lock()
	cbs := make([]Callback, len(callbacks))
	copy(cbs, callbacks)
	mu.Unlock()

	var err error
	for _, cb := range cbs {
		err = multierr.Append(err, cb(ctx, sig))
	}
	return err
}

// InitializeHandler returns a context that is cancelled on the first SIGINT,
// SIGTERM or SIGQUIT, after the registered callbacks have run. A second signal
// exits the process immediately.
func InitializeHandler(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigCh)

		var sig os.Signal
		select {
		case sig = <-sigCh:
		case <-ctx.Done():
			return
		}
		zap.S().Infof("Received signal: %v, rolling back in-flight work (send again to force exit)", sig)
		if err := Execute(context.WithoutCancel(ctx), sig); err != nil {
			zap.S().Errorf("Error executing cleanup callbacks: %v", err)
		}
		cancel()

		// keep intercepting signals until the rolled-back command returns
		sig = <-sigCh
		zap.S().Warnf("Received second signal: %v, exiting", sig)
		exit(1)
	}()
	return ctx
}

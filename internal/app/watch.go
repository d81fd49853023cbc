package app

import (
	"context"
	"time"

	"github.com/bft-labs/numstat/internal/ports"
)

// DefaultDebounceDelay is how long Watch waits after the last change
// notification before re-running.
const DefaultDebounceDelay = 100 * time.Millisecond

// Watch runs path once, then again after every change reported by watcher,
// coalescing bursts of notifications that arrive within delay. Each result
// (including errors) is handed to onResult; a failed run does not stop the
// loop. Watch returns ctx.Err() when ctx is canceled, or the watcher's error
// if it stops on its own.
func (r *Runner) Watch(
	ctx context.Context,
	path string,
	watcher ports.FileWatcher,
	delay time.Duration,
	onResult func(Report, error),
) error {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	trigger := make(chan struct{}, 1)
	watchErr := make(chan error, 1)
	go func() {
		watchErr <- watcher.Watch(ctx, path, func() {
			select {
			case trigger <- struct{}{}:
			default:
			}
		})
	}()

	onResult(r.Run(ctx, path))

	timer := time.NewTimer(delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			cancel()
			<-watchErr
			return ctx.Err()

		case err := <-watchErr:
			if err != nil {
				r.logger.Error("watcher stopped", ports.Err(err))
			}
			return err

		case <-trigger:
			if fire != nil && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(delay)
			fire = timer.C
			r.logger.Debug("input changed", ports.String("path", path))

		case <-fire:
			fire = nil
			onResult(r.Run(ctx, path))
		}
	}
}

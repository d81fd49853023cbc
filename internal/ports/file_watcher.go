package ports

import "context"

// FileWatcher delivers a notification each time the watched file is written,
// created or replaced.
type FileWatcher interface {
	// Watch blocks until ctx is canceled or the watcher fails to start.
	// onChange is invoked from the watcher goroutine; it must not block for long.
	Watch(ctx context.Context, path string, onChange func()) error
}

package driven

import "context"

// ChangeWatcher observes the open document's file and delivers a tick
// whenever it is rewritten on disk. Bursts of filesystem events are
// coalesced by the implementation; one tick means "reload now".
type ChangeWatcher interface {
	// Watch starts watching path until ctx is cancelled. The returned
	// channel is closed when watching stops.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}

// Package watch implements the change watcher port with fsnotify.
// Editors and converters often rewrite a PDF several times in quick
// succession; events are coalesced through a rate limiter so the
// viewer reloads once per burst.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/logger"
)

// defaultReloadsPerSecond caps how often reload ticks are delivered.
const defaultReloadsPerSecond = 2.0

// Ensure Watcher implements the interface.
var _ driven.ChangeWatcher = (*Watcher)(nil)

// Watcher delivers a tick whenever a watched file is rewritten.
type Watcher struct {
	limit rate.Limit
}

// NewWatcher creates a change watcher with the default coalescing rate.
func NewWatcher() *Watcher {
	return &Watcher{limit: rate.Limit(defaultReloadsPerSecond)}
}

// NewWatcherWithRate creates a change watcher with a custom maximum
// tick rate. Used in tests.
func NewWatcherWithRate(perSecond float64) *Watcher {
	return &Watcher{limit: rate.Limit(perSecond)}
}

// Watch starts watching path until ctx is cancelled. Write and create
// events on the file produce ticks; everything else is ignored. The
// returned channel is closed when watching stops.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory, not the file: many editors replace the file
	// by rename, which drops a file-level watch.
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	ticks := make(chan struct{}, 1)
	limiter := rate.NewLimiter(w.limit, 1)

	go func() {
		defer fsw.Close()
		defer close(ticks)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				if !limiter.Allow() {
					continue
				}
				logger.Debug("file changed: %s (%s)", event.Name, event.Op)
				select {
				case ticks <- struct{}{}:
				default:
					// A reload is already pending.
				}

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error: %v", err)
			}
		}
	}()

	return ticks, nil
}

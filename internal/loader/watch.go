package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change
// before reloading. Editors often write a file in several steps.
const DefaultDebounce = 100 * time.Millisecond

// Watch reloads the image at path every time it changes on disk and sends
// each outcome on the returned channel. The channel holds only the newest
// result: a reload the consumer has not picked up yet is replaced. The
// channel is closed when ctx is done.
//
// The parent directory is watched rather than the file so that editors
// which save by renaming a temporary file are still seen.
func Watch(ctx context.Context, path string, debounce time.Duration) (<-chan Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan Result, 1)
	go watchLoop(ctx, w, abs, debounce, out)
	return out, nil
}

func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, debounce time.Duration, out chan Result) {
	defer close(out)
	defer w.Close()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C // drain initial timer
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			publish(out, Result{Path: path, Err: fmt.Errorf("watcher: %w", err)})

		case <-timer.C:
			img, err := Load(path)
			publish(out, Result{Path: path, Image: img, Err: err})
		}
	}
}

// publish replaces any unread result in out with r.
func publish(out chan Result, r Result) {
	select {
	case <-out:
	default:
	}
	out <- r
}

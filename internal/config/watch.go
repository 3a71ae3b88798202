package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is how long Watch waits after the last file event
// before reloading.
const DefaultWatchDebounce = 200 * time.Millisecond

// Watch loads path, calls onLoad with the result, and calls it again after
// every change to the file until ctx is done. Load errors are passed to
// onLoad rather than ending the watch. It returns nil when ctx is canceled.
//
// The parent directory is watched instead of the file so editors that save
// by renaming a temporary file are picked up.
func Watch(ctx context.Context, path string, debounce time.Duration, onLoad func(*File, error)) error {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	onLoad(Load(path))

	absPath, _ := filepath.Abs(path)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if eventAbs, _ := filepath.Abs(event.Name); eventAbs != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			onLoad(Load(path))

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onLoad(nil, fmt.Errorf("watching %s: %w", path, err))
		}
	}
}

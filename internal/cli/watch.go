package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// Watch solves the puzzle file and solves it again every time it changes,
// until ctx is done. Solve errors are printed and do not stop the watcher.
func Watch(ctx context.Context, opts SolveOptions, debounce time.Duration) error {
	if opts.Path == "" || opts.Path == "-" {
		return errors.New("--watch needs a puzzle file, not stdin")
	}
	logger := opts.logger()

	target, err := filepath.Abs(opts.Path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	logger.Info("Starting Watcher", "path", target)

	solve := func() {
		if _, err := Solve(ctx, opts); err != nil {
			if IsInterrupted(err) {
				return
			}
			logger.Error("Solve failed", "error", err)
			printSystemMessage(opts.Stdout, "Error: %v", err)
		}
		printSystemMessage(opts.Stdout, "Waiting for changes...")
	}
	solve()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("Stopping watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("Change detected", "event", event.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			printSystemMessage(opts.Stdout, "Change detected in '%s'.", filepath.Base(target))
			solve()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "error", err)
		}
	}
}

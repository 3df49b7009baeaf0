package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 200 * time.Millisecond

// rerunner runs fn on a single goroutine. Triggers that arrive while fn is
// running collapse into one further run.
type rerunner struct {
	fn      func()
	pending chan struct{}
}

func newRerunner(fn func()) *rerunner {
	return &rerunner{fn: fn, pending: make(chan struct{}, 1)}
}

func (r *rerunner) trigger() {
	select {
	case r.pending <- struct{}{}:
	default:
	}
}

// run blocks until ctx is done.
func (r *rerunner) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.pending:
			r.fn()
		}
	}
}

// watchFile calls onChange after file is written, created or renamed into
// place. Editors that replace files atomically are handled by watching the
// parent directory. Calls to onChange never overlap. It returns when ctx is
// done.
func watchFile(ctx context.Context, file string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to add watcher for %s: %w", filepath.Dir(target), err)
	}
	log.Info("watching", "file", target)

	ctx, cancel := context.WithCancel(ctx)
	r := newRerunner(onChange)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.run(ctx)
	}()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		cancel()
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("file event", "op", event.Op.String(), "file", event.Name)

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, r.trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Error("watcher error", "error", err)
		}
	}
}

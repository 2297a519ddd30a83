// Package watcher reports changes to a single file on disk, debounced.
// cscope (and most editors) replace the database file rather than rewriting
// it in place, so the watch is registered on the parent directory and events
// are filtered down to the target path.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher invokes a callback after the watched file changes and the change
// activity has settled for the debounce interval.
type Watcher struct {
	target   string
	fw       *fsnotify.Watcher
	debounce time.Duration

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once

	timerMu sync.Mutex
	timer   *time.Timer
}

// New creates a Watcher for the file at path. Call Start to begin watching.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		target:   abs,
		fw:       fw,
		debounce: 500 * time.Millisecond,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. onChange runs on the watch goroutine after each
// debounced burst of changes to the target file.
func (w *Watcher) Start(ctx context.Context, onChange func()) {
	ctx, w.cancel = context.WithCancel(ctx)
	go w.watch(ctx, onChange)
}

// Stop ends the watch and releases the inotify handle. Idempotent.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		if w.cancel != nil {
			w.cancel()
			<-w.done
		} else {
			close(w.done)
		}
		w.timerMu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.timerMu.Unlock()
		err = w.fw.Close()
	})
	return err
}

func (w *Watcher) watch(ctx context.Context, onChange func()) {
	defer close(w.done)

	fired := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.resetTimer(fired)
		case <-fired:
			onChange()
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}

// resetTimer arms (or re-arms) the debounce timer to signal fired once the
// change burst quiets down.
func (w *Watcher) resetTimer(fired chan struct{}) {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
}

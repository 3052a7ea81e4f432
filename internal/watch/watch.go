// Package watch reports changes to a single directory so the listing can be
// refreshed when something outside the application touches it.
package watch

import (
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/LFroesch/dirman/internal/logger"
)

// Watcher follows one directory at a time. Events for the watched directory
// are collapsed into a single pending notification on Changes.
type Watcher struct {
	fw      *fsnotify.Watcher
	mu      sync.Mutex
	dir     string
	changes chan string
	done    chan struct{}

	closeOnce sync.Once
}

func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fw:      fw,
		changes: make(chan string, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch switches the watched directory to dir. Watching the same directory
// again is a no-op.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		// the old directory may already be gone
		_ = w.fw.Remove(w.dir)
	}
	w.dir = ""
	if err := w.fw.Add(dir); err != nil {
		return err
	}
	w.dir = dir
	return nil
}

// Dir returns the directory currently being watched.
func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// Changes delivers the watched directory path after it changes. It is
// closed after Close.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops the watcher. Changes is closed once the event loop has exited.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			dir := w.Dir()
			if dir == "" {
				continue
			}
			select {
			case w.changes <- dir:
			default:
				// a notification is already pending
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("Directory watch error: %v", err)
		}
	}
}

package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadHandler receives the freshly loaded configuration after the settings
// file changes. Load errors are delivered instead of a config so the session
// can surface them without losing its current settings.
type ReloadHandler func(cfg Config, err error)

// Watcher reloads the settings file when it changes on disk. Editors that
// write via rename are handled by watching the parent directory rather than
// the file itself.
type Watcher struct {
	path     string
	debounce time.Duration
	handler  ReloadHandler

	fsw *fsnotify.Watcher

	mu      sync.Mutex
	pending *time.Timer
	closed  bool

	done      chan struct{}
	wg        sync.WaitGroup
	reloading sync.WaitGroup
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets how long changes must be quiet before a reload fires.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher starts watching the settings file at path and calls handler on
// every debounced change.
func NewWatcher(path string, handler ReloadHandler, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		debounce: 100 * time.Millisecond,
		handler:  handler,
		fsw:      fsw,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Pending debounced reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
	}
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	w.reloading.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.schedule()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.handler(Config{}, err)
		}
	}
}

// relevant reports whether the event touches the watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

// schedule arms the debounce timer, restarting it on rapid changes.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, w.reload)
}

// reload registers itself before releasing the lock so Close can wait out an
// already-fired timer instead of racing its handler call.
func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.reloading.Add(1)
	w.mu.Unlock()
	defer w.reloading.Done()

	cfg, err := Load(w.path)
	w.handler(cfg, err)
}

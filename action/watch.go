package action

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a bindings file when it changes on disk. Each successful
// reload is delivered on Maps; parse failures go to Errors and leave the
// previous map in effect.
type Watcher struct {
	path    string
	log     *slog.Logger
	watcher *fsnotify.Watcher
	Maps    chan *Map
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the directory holding path, so editors that replace
// the file through a rename are still seen.
func NewWatcher(path string, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		path:    abs,
		log:     log,
		watcher: w,
		Maps:    make(chan *Map, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Maps)
		close(w.Errors)
	})
	return err
}

// Poll returns the newest reloaded map without blocking.
func (w *Watcher) Poll() (*Map, bool) {
	var latest *Map
	for {
		select {
		case m, ok := <-w.Maps:
			if !ok {
				return latest, latest != nil
			}
			latest = m
		default:
			return latest, latest != nil
		}
	}
}

// run reloads once the file has been quiet for reloadDebounce, so a burst
// of writes yields one reload of the final contents.
func (w *Watcher) run() {
	defer close(w.done)
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDebounce)
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	if _, err := os.Stat(w.path); err != nil {
		// Moved away or deleted; keep the current map.
		return
	}
	m, err := LoadMap(w.path)
	if err != nil {
		w.log.Warn("action: reload failed", "path", w.path, "error", err)
		w.sendErr(err)
		return
	}
	w.log.Info("action: bindings reloaded", "path", w.path, "actions", len(m.Names()))
	select {
	case <-w.Maps:
	default:
	}
	select {
	case w.Maps <- m:
	case <-w.closeCh:
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}

// Package monitor signals when local candidate sources change on disk.
package monitor

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/inconshreveable/log15"

	"github.com/flowave-io/termline/pkg/log"
)

// DefaultDebounce coalesces editor save bursts into one refresh.
const DefaultDebounce = 75 * time.Millisecond

// Watcher sends on its refresh channel after a watched file or directory
// changes. Sends never block: a refresh that is already pending absorbs
// later ones.
type Watcher struct {
	fw       *fsnotify.Watcher
	files    map[string]struct{}
	dirs     map[string]struct{}
	refresh  chan<- struct{}
	debounce time.Duration
	log      log15.Logger

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// Watch starts watching paths. A file is matched by name through its parent
// directory so editors that replace files on save are still seen; a directory
// matches any entry directly inside it.
func Watch(paths []string, refreshCh chan<- struct{}) (*Watcher, error) {
	return WatchWithDebounce(paths, refreshCh, DefaultDebounce)
}

func WatchWithDebounce(paths []string, refreshCh chan<- struct{}, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		fw:       fw,
		files:    map[string]struct{}{},
		dirs:     map[string]struct{}{},
		refresh:  refreshCh,
		debounce: debounce,
		log:      log.New("component", "monitor"),
		done:     make(chan struct{}),
	}
	added := map[string]struct{}{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, err
		}
		dir := abs
		if fi, err := os.Stat(abs); err == nil && fi.IsDir() {
			w.dirs[abs] = struct{}{}
		} else {
			w.files[abs] = struct{}{}
			dir = filepath.Dir(abs)
		}
		if _, ok := added[dir]; ok {
			continue
		}
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		added[dir] = struct{}{}
		w.log.Debug("watching", "dir", dir)
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) matches(name string) bool {
	name = filepath.Clean(name)
	if _, ok := w.files[name]; ok {
		return true
	}
	_, ok := w.dirs[filepath.Dir(name)]
	return ok
}

func (w *Watcher) loop() {
	var fire <-chan time.Time
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod || !w.matches(ev.Name) {
				continue
			}
			w.log.Debug("change", "path", ev.Name, "op", ev.Op.String())
			fire = time.After(w.debounce)
		case <-fire:
			fire = nil
			select {
			case w.refresh <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.fw.Close()
	})
	return w.closeErr
}

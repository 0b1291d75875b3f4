package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Reload is the outcome of re-reading a watched configuration file.
type Reload struct {
	Config *Config
	Err    error
}

// Watcher re-parses a configuration file whenever it is written or
// replaced.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	updates chan Reload
	done    chan struct{}
}

// Watch starts watching path. The containing directory is watched so that
// editors which save by renaming are noticed.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsWatcher,
		path:    abs,
		updates: make(chan Reload, 1),
		done:    make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	defer close(w.updates)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			cfg, err := ParseConfig(w.path)
			if !w.send(Reload{Config: cfg, Err: err}) {
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if !w.send(Reload{Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) send(r Reload) bool {
	select {
	case w.updates <- r:
		return true
	case <-w.done:
		return false
	}
}

// Updates delivers one Reload per change. It is closed when the watcher
// stops.
func (w *Watcher) Updates() <-chan Reload {
	return w.updates
}

// Close stops watching.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}

package config

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	fsw     *fsnotify.Watcher
	path    string
	updates chan *Config
	errors  chan error

	closeOnce sync.Once
	done      chan struct{}
}

// Watch starts watching path. The parent directory is watched so that
// editors which replace the file on save are still seen. Each change is
// loaded like Load and delivered on Updates; load failures go to Errors.
// Only the latest pending value of each is kept.
func Watch(ctx context.Context, path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		path:    abs,
		updates: make(chan *Config, 1),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

// Updates delivers reloaded configurations. It is closed when the watcher
// stops.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Errors delivers reload and watch failures.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fsw.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	defer close(w.updates)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				sendLatest(w.errors, err)
				continue
			}
			sendLatest(w.updates, cfg)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			sendLatest(w.errors, err)
		}
	}
}

// sendLatest sends v on a buffered channel of size 1, replacing any value
// not yet received. Only the loop goroutine sends.
func sendLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

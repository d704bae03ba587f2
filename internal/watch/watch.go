// Package watch delivers change notifications for a single source
// file, backing the --watch mode of the lox command.
package watch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to one source file using OS-native
// notifications.
type Watcher struct {
	w   *fsnotify.Watcher
	evC chan string
	erC chan error
}

// New creates a watcher for the given file. The parent directory is
// watched rather than the file itself, so editors that replace the
// file by rename still produce events.
func New(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}

	fw := &Watcher{w: w, evC: make(chan string, 16), erC: make(chan error, 1)}
	go fw.loop(abs)
	return fw, nil
}

func (fw *Watcher) loop(path string) {
	defer close(fw.evC)

	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || name != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fw.evC <- ev.Name
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			fw.erC <- err
		}
	}
}

// Events returns the channel of change notifications
func (fw *Watcher) Events() <-chan string { return fw.evC }

// Errors returns the channel of watcher errors
func (fw *Watcher) Errors() <-chan error { return fw.erC }

// Close stops the watcher
func (fw *Watcher) Close() error { return fw.w.Close() }

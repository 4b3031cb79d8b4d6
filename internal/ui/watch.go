package ui

import (
	"fmt"
	"path/filepath"
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single file. The file's directory is watched
// so that editors which replace the file on save are still noticed.
type Watcher struct {
	fs      *fsnotify.Watcher
	name    string
	changed chan struct{}
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w := &Watcher{
		fs:      fw,
		name:    abs,
		changed: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Bursts of writes collapse into one pending change.
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// Changed delivers a value after the file changed.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

type layoutChangedMsg struct{}

type watchErrMsg struct {
	err error
}

// watchCmd waits for the next change or watcher error.
func watchCmd(w *Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.changed:
			return layoutChangedMsg{}
		case err := <-w.errs:
			return watchErrMsg{err: err}
		case <-w.done:
			return nil
		}
	}
}

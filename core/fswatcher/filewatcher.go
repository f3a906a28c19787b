package fswatcher

import (
	"path/filepath"

	fsnotify "github.com/fsnotify/fsnotify"
)

// Watches a single file. The parent directory is watched so the file can be replaced (editors that save by renaming a temporary file) without losing the watch.
type FileWatcher struct {
	w      *fsnotify.Watcher
	name   string
	events chan interface{}
	opMask Op
}

func NewFileWatcher(filename string) (*FileWatcher, error) {
	name, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w0.Add(filepath.Dir(name)); err != nil {
		_ = w0.Close()
		return nil, err
	}
	w := &FileWatcher{
		w:      w0,
		name:   name,
		events: make(chan interface{}, 16),
		opMask: Create | Modify | Rename,
	}
	go w.eventLoop()
	return w, nil
}

//----------

func (w *FileWatcher) Close() error {
	return w.w.Close()
}

func (w *FileWatcher) OpMask() *Op {
	return &w.opMask
}

// Values are *Event or error. Closed after Close.
func (w *FileWatcher) Events() <-chan interface{} {
	return w.events
}

//----------

func (w *FileWatcher) eventLoop() {
	defer close(w.events)
	for {
		select {
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.events <- err

		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.name {
				continue
			}

			var op Op
			if ev.Op&fsnotify.Create > 0 {
				op.Add(Create)
			}
			if ev.Op&fsnotify.Write > 0 {
				op.Add(Modify)
			}
			if ev.Op&fsnotify.Remove > 0 {
				op.Add(Remove)
			}
			if ev.Op&fsnotify.Rename > 0 {
				op.Add(Rename)
			}
			if ev.Op&fsnotify.Chmod > 0 {
				op.Add(Attrib)
			}

			if op&w.opMask > 0 {
				w.events <- &Event{Op: op, Name: w.name}
			}
		}
	}
}

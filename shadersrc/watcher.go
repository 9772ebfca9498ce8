package shadersrc

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports modifications to a fixed set of shader files. Editors
// commonly replace files instead of writing them in place so the containing
// directories are watched rather than the files themselves.
type Watcher struct {
	w       *fsnotify.Watcher
	files   map[string]bool
	changes chan struct{}
	done    chan struct{}
}

// NewWatcher starts watching paths. Close must be called to release the
// underlying watcher.
func NewWatcher(paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no shader files to watch")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create shader watcher: %w", err)
	}
	w := &Watcher{
		w:       fw,
		files:   make(map[string]bool, len(paths)),
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("unable to resolve shader path %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		err = fw.Add(dir)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("unable to watch %s: %w", dir, err)
		}
	}
	go w.loop()
	return w, nil
}

// Changes receives a value after one or more watched files change. Pending
// notifications are coalesced so a burst of writes yields a single receive.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			slog.Debug("shader source changed", "path", event.Name, "op", event.Op.String())
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			slog.Error("shader watcher", "err", err)
		}
	}
}

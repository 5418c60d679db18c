package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow suppresses the duplicate notifications editors produce for
// a single save.
const debounceWindow = 100 * time.Millisecond

// Watcher reports changed prefab and hook-script paths. Events and Errors
// are owned by the run loop and closed when it exits, so receivers can range
// over them; Close is safe to call more than once.
type Watcher struct {
	fsw    *fsnotify.Watcher
	Events chan string
	Errors chan error

	done chan struct{}
	once sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fsw:    fsw,
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. The run loop drains out and closes Events and
// Errors itself.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	lastSeen := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !reloadableChange(event) {
				continue
			}
			now := time.Now()
			if t, seen := lastSeen[event.Name]; seen && now.Sub(t) < debounceWindow {
				continue
			}
			lastSeen[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.done:
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.done:
				return
			}
		case <-w.done:
			return
		}
	}
}

// reloadableChange reports whether the event touches a file the game knows
// how to reload: a yaml tuning spec or a tengo behavior hook.
func reloadableChange(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}

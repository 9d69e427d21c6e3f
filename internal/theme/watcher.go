package theme

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/loom/internal/logger"
)

// Watcher reloads a theme file whenever it is written. The parent directory
// is watched so that editors which replace the file on save still trigger a
// reload.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onReload func(*Document, error)
	log      *logger.Logger
	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher for path. onReload receives the validated
// document, or the load or validation error.
func NewWatcher(path string, onReload func(*Document, error), log *logger.Logger) (*Watcher, error) {
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

	return &Watcher{
		watcher:  fsWatcher,
		path:     abs,
		onReload: onReload,
		log:      log.Component("theme-watcher"),
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				w.log.Debug("theme file changed")
				w.reload()

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Error(err, "watch error")

			case <-w.done:
				return
			}
		}
	}()
}

func (w *Watcher) reload() {
	doc, err := Load(w.path)
	if err == nil {
		err = Validate(doc)
	}
	if err != nil {
		w.log.Error(err, "theme reload failed")
		w.onReload(nil, err)
		return
	}
	w.onReload(doc, nil)
}

// Stop ends the watch. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

package watch

import (
	"fmt"
	"path/filepath"

	"drivesync/internal/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher raises an event whenever one of the declared local files
// changes. It watches the parent directories and filters, since editors
// usually replace files instead of writing in place and fsnotify loses
// a watch on the old inode.
type Watcher struct {
	fw      *fsnotify.Watcher
	paths   map[string]bool
	eventCh chan string
	doneCh  chan struct{}
}

func New(bufferSize int) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		fw:      fw,
		paths:   make(map[string]bool),
		eventCh: make(chan string, bufferSize),
		doneCh:  make(chan struct{}),
	}, nil
}

func (w *Watcher) Events() <-chan string {
	return w.eventCh
}

// Watch registers the declared files and starts the event loop. Files
// that do not exist yet are still registered; their parent directory
// must exist.
func (w *Watcher) Watch(paths []string) error {
	dirs := make(map[string]bool)

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", p, err)
		}

		w.paths[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := w.fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}

		logger.Log.Debug("watching directory",
			zap.String("path", dir))
	}

	go w.run()

	logger.Log.Info("watcher started",
		zap.Int("files", len(w.paths)),
		zap.Int("dirs", len(dirs)))
	return nil
}

func (w *Watcher) Stop() {
	close(w.doneCh)
	_ = w.fw.Close()
}

func (w *Watcher) run() {
	defer close(w.eventCh)

	for {
		select {
		case <-w.doneCh:
			logger.Log.Info("watcher stopping")
			return

		case fsEvent, ok := <-w.fw.Events:
			if !ok {
				return
			}

			if !fsEvent.Op.Has(fsnotify.Create) && !fsEvent.Op.Has(fsnotify.Write) && !fsEvent.Op.Has(fsnotify.Rename) {
				continue
			}

			abs, err := filepath.Abs(fsEvent.Name)
			if err != nil || !w.paths[abs] {
				continue
			}

			logger.Log.Debug("local change detected",
				zap.String("path", abs),
				zap.String("op", fsEvent.Op.String()))

			w.eventCh <- abs

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}

			logger.Log.Warn("watcher error", zap.Error(err))
		}
	}
}

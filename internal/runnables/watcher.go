package runnables

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDebounce coalesces rapid editor saves into one reload.
const watchDebounce = 300 * time.Millisecond

// Watcher reloads task definitions when a task file changes on disk.
type Watcher struct {
	fs       *fsnotify.Watcher
	fileName string
	onChange func()
	logger   *zap.Logger
	done     chan struct{}
}

// WatchTaskFiles watches the task file location under each root and calls
// onChange (debounced) whenever one is created, modified, or removed.
// Roots whose directories cannot be watched are logged and skipped.
func WatchTaskFiles(roots []string, fileName string, onChange func(), logger *zap.Logger) (*Watcher, error) {
	if fileName == "" {
		fileName = DefaultTaskFile
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:       fs,
		fileName: filepath.Base(fileName),
		onChange: onChange,
		logger:   logger,
		done:     make(chan struct{}),
	}

	for _, root := range roots {
		dir := filepath.Dir(filepath.Join(root, fileName))
		if err := fs.Add(dir); err != nil {
			logger.Warn("cannot watch task directory",
				zap.String("dir", dir),
				zap.Error(err),
			)
		}
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != w.fileName {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerCh = timer.C
			} else {
				timer.Reset(watchDebounce)
			}
		case <-timerCh:
			timer = nil
			timerCh = nil
			w.onChange()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("task watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

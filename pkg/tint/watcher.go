package tint

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ThemeWatcher monitors a theme file for changes and triggers reloads.
type ThemeWatcher struct {
	watcher   *fsnotify.Watcher
	filePath  string
	debounce  time.Duration
	onChange  func() error
	onError   func(error)
	logger    Logger
	stopCh    chan struct{}
	stoppedCh chan struct{}
	mu        sync.Mutex
	running   bool
}

// WatchTheme creates a watcher for the theme file at path.
// onChange is called when the file changes (after debouncing); a non-nil
// return is reported through opts.OnError and the watcher keeps running.
// The watcher is created stopped; call Start to begin watching.
func WatchTheme(path string, onChange func() error, opts WatchOptions) (*ThemeWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	logger := opts.Logger
	if logger == nil {
		logger = NopLogger()
	}

	// Watch the directory containing the theme file, not the file itself.
	// This handles editors that atomically rename files (vim, emacs, etc.).
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	return &ThemeWatcher{
		watcher:   watcher,
		filePath:  path,
		debounce:  debounce,
		onChange:  onChange,
		onError:   opts.OnError,
		logger:    logger,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// Start begins watching for file changes in a goroutine.
func (tw *ThemeWatcher) Start() {
	tw.mu.Lock()
	if tw.running {
		tw.mu.Unlock()
		return
	}
	tw.running = true
	tw.mu.Unlock()

	tw.logger.Debug("theme watcher started", "path", tw.filePath, "debounce", tw.debounce)
	go tw.watchLoop()
}

// Stop stops the file watcher and waits for cleanup.
func (tw *ThemeWatcher) Stop() {
	tw.mu.Lock()
	if !tw.running {
		tw.mu.Unlock()
		return
	}
	tw.mu.Unlock()

	close(tw.stopCh)
	<-tw.stoppedCh
	tw.logger.Debug("theme watcher stopped", "path", tw.filePath)
}

// watchLoop is the main event loop for file watching with debouncing.
func (tw *ThemeWatcher) watchLoop() {
	defer close(tw.stoppedCh)
	defer tw.watcher.Close()

	absPath, _ := filepath.Abs(tw.filePath)
	baseName := filepath.Base(tw.filePath)

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-tw.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			tw.mu.Lock()
			tw.running = false
			tw.mu.Unlock()
			return

		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}

			// Check if this event is for our theme file
			eventBase := filepath.Base(event.Name)
			eventAbs, _ := filepath.Abs(event.Name)

			if eventBase != baseName && eventAbs != absPath {
				continue
			}

			// Only react to write/create/rename events (covers atomic saves)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			// Debounce: reset the timer on each event
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(tw.debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			// Debounce period elapsed, trigger reload
			tw.logger.Info("theme file changed, reloading", "path", tw.filePath)
			if tw.onChange != nil {
				if err := tw.onChange(); err != nil {
					tw.logger.Error("theme reload failed", "path", tw.filePath, "error", err)
					if tw.onError != nil {
						tw.onError(err)
					}
				}
			}
			debounceTimer = nil
			debounceCh = nil

		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.logger.Warn("theme watcher error", "error", err)
			if tw.onError != nil {
				tw.onError(err)
			}
		}
	}
}

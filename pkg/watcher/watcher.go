// Package watcher reloads a tiling configuration whenever its file changes.
package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/philipparndt/gopenrose/pkg/config"
)

// ReloadFunc receives the freshly loaded configuration, or the load error
type ReloadFunc func(cfg *config.Config, err error)

// ConfigWatcher watches one config file and reloads it after changes settle
type ConfigWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onReload ReloadFunc
	logger   *slog.Logger

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
	done   chan struct{}
}

// New creates a watcher for the config file at path. The parent directory is
// watched so that editors replacing the file atomically are still noticed.
func New(path string, debounce time.Duration, onReload ReloadFunc) (*ConfigWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &ConfigWatcher{
		watcher:  w,
		path:     absPath,
		debounce: debounce,
		onReload: onReload,
		logger:   slog.Default(),
		done:     make(chan struct{}),
	}, nil
}

// SetLogger replaces the logger used for watch errors and reloads
func (cw *ConfigWatcher) SetLogger(l *slog.Logger) {
	if l != nil {
		cw.logger = l
	}
}

// Path returns the absolute path of the watched file
func (cw *ConfigWatcher) Path() string {
	return cw.path
}

// Start begins watching in a background goroutine
func (cw *ConfigWatcher) Start() {
	go cw.loop()
}

func (cw *ConfigWatcher) loop() {
	defer close(cw.done)
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				cw.schedule()
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Warn("watcher error", "path", cw.path, "err", err)
		}
	}
}

// schedule restarts the debounce timer
func (cw *ConfigWatcher) schedule() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.closed {
		return
	}
	if cw.timer != nil {
		cw.timer.Stop()
	}
	cw.timer = time.AfterFunc(cw.debounce, cw.reload)
}

func (cw *ConfigWatcher) reload() {
	cw.mu.Lock()
	closed := cw.closed
	cw.mu.Unlock()
	if closed {
		return
	}

	cfg, err := config.Load(cw.path)
	if err != nil {
		cw.logger.Warn("config reload failed", "path", cw.path, "err", err)
	} else {
		cw.logger.Info("config reloaded", "path", cw.path)
	}
	cw.onReload(cfg, err)
}

// Close stops the watcher and cancels any pending reload
func (cw *ConfigWatcher) Close() error {
	cw.mu.Lock()
	cw.closed = true
	if cw.timer != nil {
		cw.timer.Stop()
	}
	cw.mu.Unlock()

	return cw.watcher.Close()
}

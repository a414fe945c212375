package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pleimann/swipe-pad/internal/utils"
)

// Watcher reloads the config file when it changes on disk
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	done    chan struct{}
	stopped sync.Once

	mu       sync.RWMutex
	config   *Config
	handlers []func(*Config)
}

// NewWatcher loads path and prepares to watch it. The parent directory is
// watched so editors that save by renaming a temp file are still seen.
func NewWatcher(path string) (*Watcher, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		path:   filepath.Clean(path),
		fsw:    fsw,
		config: cfg,
		done:   make(chan struct{}),
	}, nil
}

// Start begins watching in the background
func (w *Watcher) Start() {
	go w.watch()
}

// Stop stops watching. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopped.Do(func() {
		close(w.done)
		w.fsw.Close()
	})
}

// OnReload registers a handler called with every successfully reloaded config
func (w *Watcher) OnReload(handler func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Get returns the current config
func (w *Watcher) Get() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.config
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.reload()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			utils.Error("config watcher: %v", err)
		}
	}
}

// reload keeps the previous config when the new one does not load
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		utils.Error("failed to reload config: %v", err)
		return
	}

	w.mu.Lock()
	w.config = cfg
	handlers := append(([]func(*Config))(nil), w.handlers...)
	w.mu.Unlock()

	utils.Info("config reloaded from %s", w.path)

	for _, handler := range handlers {
		handler(cfg)
	}
}

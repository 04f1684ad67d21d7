package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher monitors the config file and triggers reloads on change.
type Watcher struct {
	config      *Config
	watcher     *fsnotify.Watcher
	callbacks   []func(*Config)
	stopCh      chan struct{}
	mu          sync.RWMutex
	running     bool
	lastModTime time.Time
}

// NewWatcher creates a new configuration watcher
func NewWatcher(config *Config) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		config:  config,
		watcher: watcher,
		stopCh:  make(chan struct{}),
	}, nil
}

// AddCallback adds a callback function to be called after a reload
func (w *Watcher) AddCallback(callback func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start starts watching for configuration changes
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("watcher is already running")
	}

	configFile := w.config.ConfigFile
	if stat, err := os.Stat(configFile); err == nil {
		w.lastModTime = stat.ModTime()
	}

	if err := w.watcher.Add(configFile); err != nil {
		return fmt.Errorf("failed to watch config file: %w", err)
	}

	w.running = true
	go w.watchLoop()
	return nil
}

// Stop stops the configuration watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}
	close(w.stopCh)
	w.running = false
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	// Debounce: editors fire several events per save
	var debounce *time.Timer
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(200*time.Millisecond, w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logrus.Warnf("Config watcher error: %v", err)
		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	stat, err := os.Stat(w.config.ConfigFile)
	if err != nil {
		return
	}
	w.mu.Lock()
	if !stat.ModTime().After(w.lastModTime) {
		w.mu.Unlock()
		return
	}
	w.lastModTime = stat.ModTime()
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	if err := w.config.Reload(); err != nil {
		logrus.Warnf("Failed to reload config: %v", err)
		return
	}
	logrus.Info("Configuration reloaded")

	for _, callback := range callbacks {
		callback(w.config)
	}
}

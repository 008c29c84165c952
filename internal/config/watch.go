package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Reload is delivered whenever the watched config file changes on disk.
// Err is set when the new contents fail to read, parse or validate; Config
// then holds the embedded defaults and must not be applied.
type Reload struct {
	Path   string
	Config BricksConfig
	Err    error
}

// Watcher reports changes to a single Bricks config file.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *log.Logger
	Events  chan Reload
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// debounce collapses editor write bursts into a single reload.
const debounce = 100 * time.Millisecond

// Watch starts watching path. The parent directory is watched so that
// editors which replace the file through a rename are still observed.
// A nil logger discards diagnostics.
func Watch(path string, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	cw := &Watcher{
		path:    abs,
		watcher: w,
		logger:  logger,
		Events:  make(chan Reload, 4),
		closeCh: make(chan struct{}),
	}
	cw.wg.Add(1)
	go cw.run()
	return cw, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and closes Events.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.Events)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	// Reload on the trailing edge so a truncate+write pair is read once, complete.
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			r := w.load()
			if r.Err != nil {
				w.logger.Warn("config reload rejected", "path", w.path, "error", r.Err)
			} else {
				w.logger.Info("config reloaded", "path", w.path)
			}
			select {
			case w.Events <- r:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", "error", err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) load() Reload {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return Reload{Path: w.path, Config: embeddedBricks(), Err: err}
	}
	cfg, err := ParseBricks(data)
	if err != nil {
		return Reload{Path: w.path, Config: embeddedBricks(), Err: err}
	}
	return Reload{Path: w.path, Config: cfg}
}

package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is the quiet period after the last event before the file is
// reloaded; editors often emit several writes per save.
const debounce = 100 * time.Millisecond

// Watcher reloads a tuning file whenever it changes on disk.
// Successfully parsed configs arrive on Configs, failures on Errors.
// Both channels are closed after Close.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Configs chan SkylandConfig
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the directory containing path and reacts to events
// for that file only, so atomic rename-on-save is picked up too.
func NewWatcher(path string) (*Watcher, error) {
	if !isTuningFile(path) {
		return nil, fmt.Errorf("config: %s is not a yaml file", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher: fw,
		path:    abs,
		Configs: make(chan SkylandConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Configs)
		close(w.Errors)
		close(w.done)
	}()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			cfg, err := LoadFile(w.path)
			if err != nil {
				w.sendErr(err)
				continue
			}
			select {
			case w.Configs <- cfg:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendErr never blocks: if the previous error is still unread the new one
// is dropped.
func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}

func isTuningFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

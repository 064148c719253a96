// Package watch re-validates meet data as it is edited on disk. A Watcher
// monitors a data tree and re-runs the meet.csv checks whenever one is
// created or modified, with a debounce window so editors that write in
// bursts trigger one validation, not several.
package watch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/fsnotify.v1"

	"github.com/coolbeans/meetcheck/pkg/check"
	"github.com/coolbeans/meetcheck/pkg/report"
)

// DefaultDebounce is the default settle window before a changed file is
// re-validated.
const DefaultDebounce = 500 * time.Millisecond

// Watcher re-validates meet.csv files under a root directory as they
// change.
type Watcher struct {
	root     string
	rules    *check.Rules
	debounce time.Duration

	watcher  *fsnotify.Watcher
	stopChan chan struct{}

	pending   map[string]time.Time
	pendingMu sync.Mutex

	onResult   func(*report.Report)
	onResultMu sync.RWMutex

	running   bool
	runningMu sync.Mutex
}

// New creates a watcher over the given data tree root.
func New(root string, rules *check.Rules) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	if rules == nil {
		rules = check.DefaultRules()
	}
	return &Watcher{
		root:     root,
		rules:    rules,
		debounce: DefaultDebounce,
		pending:  make(map[string]time.Time),
	}, nil
}

// SetDebounce overrides the settle window. Must be called before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	if d > 0 {
		w.debounce = d
	}
}

// OnResult registers the callback invoked with each completed Report.
func (w *Watcher) OnResult(callback func(*report.Report)) {
	w.onResultMu.Lock()
	defer w.onResultMu.Unlock()
	w.onResult = callback
}

// Start begins watching. Every directory under the root is registered, and
// directories created later are picked up from their create events.
func (w *Watcher) Start() error {
	w.runningMu.Lock()
	defer w.runningMu.Unlock()
	if w.running {
		return fmt.Errorf("watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	w.watcher = watcher
	w.stopChan = make(chan struct{})

	err = filepath.WalkDir(w.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return fmt.Errorf("watching tree %s: %w", w.root, err)
	}

	w.running = true
	go w.watchLoop()
	return nil
}

// Stop stops watching. Pending changes are discarded.
func (w *Watcher) Stop() error {
	w.runningMu.Lock()
	defer w.runningMu.Unlock()
	if !w.running {
		return fmt.Errorf("watcher is not running")
	}
	close(w.stopChan)
	w.watcher.Close()
	w.running = false
	return nil
}

// watchLoop consumes filesystem events and flushes settled changes.
func (w *Watcher) watchLoop() {
	interval := w.debounce / 2
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

		case <-ticker.C:
			w.flushPending()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	// New directories must be registered to see the files inside them.
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		if event.Op&fsnotify.Create != 0 {
			_ = w.watcher.Add(event.Name)
		}
		return
	}

	if filepath.Base(event.Name) != "meet.csv" {
		return
	}

	w.pendingMu.Lock()
	w.pending[event.Name] = time.Now()
	w.pendingMu.Unlock()
}

// flushPending validates every pending file whose debounce window has
// passed.
func (w *Watcher) flushPending() {
	threshold := time.Now().Add(-w.debounce)

	w.pendingMu.Lock()
	var due []string
	for path, changed := range w.pending {
		if changed.Before(threshold) {
			due = append(due, path)
			delete(w.pending, path)
		}
	}
	w.pendingMu.Unlock()

	for _, path := range due {
		r, err := check.CheckMeetFile(path, w.rules)
		if err != nil {
			continue // file vanished between event and flush
		}
		w.notify(r)
	}
}

func (w *Watcher) notify(r *report.Report) {
	w.onResultMu.RLock()
	callback := w.onResult
	w.onResultMu.RUnlock()
	if callback != nil {
		callback(r)
	}
}

package tui

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"lister-cli/internal/debug"
)

const watchDebounce = 200 * time.Millisecond

// storeChangedMsg reports that another process wrote to the note database.
type storeChangedMsg struct{}

// storeWatcher reports writes to the database file and its WAL. The
// directory is watched rather than the file so that atomic replaces are seen.
type storeWatcher struct {
	fs      *fsnotify.Watcher
	base    string
	changed chan struct{}
	done    chan struct{}

	mu            sync.Mutex
	timer         *time.Timer
	suppressUntil time.Time
}

func watchStore(dbPath string) (*storeWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(dbPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w := &storeWatcher{
		fs:      fsw,
		base:    filepath.Base(dbPath),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *storeWatcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !strings.HasPrefix(filepath.Base(ev.Name), w.base) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.trigger()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			debug.Log("tui: watcher: %v", err)
		}
	}
}

func (w *storeWatcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if time.Now().Before(w.suppressUntil) {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watchDebounce, w.notify)
}

func (w *storeWatcher) notify() {
	w.mu.Lock()
	suppressed := time.Now().Before(w.suppressUntil)
	w.mu.Unlock()
	if suppressed {
		return
	}
	select {
	case w.changed <- struct{}{}:
	default:
	}
}

// suppress ignores events for d, covering the TUI's own writes.
func (w *storeWatcher) suppress(d time.Duration) {
	if w == nil {
		return
	}
	w.mu.Lock()
	w.suppressUntil = time.Now().Add(d)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

func (w *storeWatcher) Close() {
	if w == nil {
		return
	}
	close(w.done)
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	_ = w.fs.Close()
}

// waitForStoreChange blocks until the watcher fires. It is re-armed after
// every storeChangedMsg.
func waitForStoreChange(w *storeWatcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-w.changed:
			return storeChangedMsg{}
		case <-w.done:
			return nil
		}
	}
}

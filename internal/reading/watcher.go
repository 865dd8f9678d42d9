package reading

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind describes the type of file change detected.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota // Reading .toml file written or created
	ChangeRemoved                    // Reading .toml file deleted
)

// Change represents a detected change in the watched reading directory.
type Change struct {
	Kind ChangeKind
	File string // Absolute path
}

// Watcher monitors a directory for reading file changes using fsnotify.
// Events are debounced so one save produces one change.
type Watcher struct {
	Dir      string
	Debounce time.Duration
	Changes  <-chan Change // Read-only external channel

	changes chan Change // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given directory. A zero debounce
// defaults to 100ms.
func NewWatcher(dir string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Dir:      dir,
		Debounce: debounce,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
	}
	return w, nil
}

// Start begins watching the directory for changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per file.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.Debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				// Drain pending on close.
				for file := range pending {
					w.emitChange(file)
				}
				return
			}

			if !isReadingFile(event.Name) {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) {
				pending[event.Name] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= w.Debounce {
					w.emitChange(file)
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

func isReadingFile(name string) bool {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, ".toml") {
		return false
	}
	// Editor temp files start with a dot.
	return !strings.HasPrefix(base, ".")
}

func (w *Watcher) emitChange(file string) {
	kind := ChangeModified
	if _, err := os.Stat(file); err != nil {
		kind = ChangeRemoved
	}
	w.changes <- Change{Kind: kind, File: file}
}

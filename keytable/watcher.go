package keytable

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/domkey/keyevent"
)

// defaultDebounce coalesces the write bursts editors produce when saving.
const defaultDebounce = 100 * time.Millisecond

// WatchOptions configures a Watcher. The zero value is usable.
type WatchOptions struct {
	// Debounce is how long to wait after the last file event before
	// reloading. Zero means a small default.
	Debounce time.Duration

	// OnReload, if set, is called with the new table after each
	// successful reload.
	OnReload func(*Table)

	// OnError, if set, is called when a reload fails. The watcher keeps
	// serving the previous table.
	OnError func(error)
}

// Watcher keeps a Table loaded from a TOML file and reloads it when the
// file changes. A failed reload keeps the previous table in place, so
// Current never observes a half-applied configuration.
type Watcher struct {
	path    string
	opts    WatchOptions
	watcher *fsnotify.Watcher

	mu    sync.RWMutex
	table *Table

	closeCh   chan struct{}
	closeOnce sync.Once
	doneWg    sync.WaitGroup
}

// NewWatcher loads the table at path and starts watching for changes. The
// initial load must succeed; later reload failures are reported through
// OnError without disturbing the current table.
func NewWatcher(path string, opts WatchOptions) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	table, err := Load(absPath)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors replace files on save,
	// which drops a watch registered on the file itself.
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}

	w := &Watcher{
		path:    absPath,
		opts:    opts,
		watcher: fsw,
		table:   table,
		closeCh: make(chan struct{}),
	}

	w.doneWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Current returns the most recently loaded table. Safe for concurrent use.
func (w *Watcher) Current() *Table {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.table
}

// Lookup resolves a code against the current table. It is a valid
// keyevent.TranslateFunc and always reflects the latest successful reload.
func (w *Watcher) Lookup(code int) keyevent.Identifier {
	return w.Current().Lookup(code)
}

// Close stops watching. The last loaded table remains available through
// Current.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.doneWg.Wait()
	})
	return err
}

// processLoop handles fsnotify events with debounced reloads.
func (w *Watcher) processLoop() {
	defer w.doneWg.Done()

	var debounce *time.Timer
	var reloadCh <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if debounce != nil {
				debounce.Stop()
			}
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if fsEvent.Name != w.path {
				continue
			}
			if fsEvent.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(w.opts.Debounce)
				reloadCh = debounce.C
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(w.opts.Debounce)
			}

		case <-reloadCh:
			debounce = nil
			reloadCh = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.opts.OnError != nil {
				w.opts.OnError(err)
			}
		}
	}
}

// reload swaps in a fresh table, or reports the error and keeps the old one.
func (w *Watcher) reload() {
	table, err := Load(w.path)
	if err != nil {
		if w.opts.OnError != nil {
			w.opts.OnError(err)
		}
		return
	}

	w.mu.Lock()
	w.table = table
	w.mu.Unlock()

	if w.opts.OnReload != nil {
		w.opts.OnReload(table)
	}
}

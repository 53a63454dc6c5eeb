package store

import (
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of write events SQLite emits per
// transaction into a single reload.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reports external writes to the store file (another panel instance,
// or the CLI) so the UI can reload. Events are debounced.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce *debouncer
	events   chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Watch starts watching the store's directory. The returned channel receives
// one (possibly coalesced) signal per external change burst.
func (s Store) Watch() (*Watcher, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: SQLite WAL checkpoints replace files.
	if err := fw.Add(s.Dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:       fw,
		debounce: newDebouncer(DefaultDebounce),
		events:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go w.loop(s.DBPath())
	return w, nil
}

// Events is the debounced change signal.
func (w *Watcher) Events() <-chan struct{} { return w.events }

// Close stops the watcher and cancels any pending debounce.
func (w *Watcher) Close() error {
	w.once.Do(func() {
		close(w.done)
		w.debounce.cancel()
	})
	return w.fw.Close()
}

func (w *Watcher) loop(dbPath string) {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !strings.HasPrefix(ev.Name, dbPath) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.debounce.trigger(func() {
				select {
				case w.events <- struct{}{}:
				default:
				}
			})
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}

// debouncer coalesces rapid triggers into a single callback. When trigger is
// called again within the window, the earlier callback is cancelled.
type debouncer struct {
	duration time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	seq      uint64
}

func newDebouncer(d time.Duration) *debouncer {
	if d == 0 {
		d = DefaultDebounce
	}
	return &debouncer{duration: d}
}

func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// Only the most recently scheduled callback may run: Stop can return
		// false when the timer already fired and the stale callback is racing.
		run := seq == d.seq
		if run {
			d.timer = nil
		}
		d.mu.Unlock()
		if run {
			callback()
		}
	})
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

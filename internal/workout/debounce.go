package workout

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is how long the debouncer waits for further input
// on the same key before firing.
const DefaultDebounceWindow = 500 * time.Millisecond

type pendingTask struct {
	timer *time.Timer
	gen   uint64
}

// Debouncer coalesces bursts of work per key: scheduling a task for a key
// that already has one pending cancels the pending task and restarts the
// window. Only the last task scheduled within a burst runs.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	pending map[string]pendingTask
	gen     uint64
	stopped bool
	wg      sync.WaitGroup
}

func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{
		window:  window,
		pending: make(map[string]pendingTask),
	}
}

// Schedule queues task to run after the window elapses with no further
// Schedule calls for the same key. The task runs on its own goroutine.
func (d *Debouncer) Schedule(key string, task func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.cancelLocked(key)

	d.gen++
	gen := d.gen
	d.wg.Add(1)
	timer := time.AfterFunc(d.window, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.stopped || d.pending[key].gen != gen {
			// replaced or cancelled after firing, stand down
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		d.mu.Unlock()

		task()
	})
	d.pending[key] = pendingTask{timer: timer, gen: gen}
}

// Cancel drops the pending task for key, if any.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked(key)
}

func (d *Debouncer) cancelLocked(key string) {
	p, ok := d.pending[key]
	if !ok {
		return
	}
	delete(d.pending, key)
	if p.timer.Stop() {
		// callback will never run, settle its wait group slot here
		d.wg.Done()
	}
}

// Stop cancels all pending tasks and waits for in-flight ones to finish.
// The debouncer accepts no new work afterwards.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	for key := range d.pending {
		d.cancelLocked(key)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

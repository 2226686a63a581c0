package storage

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/models"
)

// Saver persists a snapshot and reports success.
type Saver interface {
	Save(ctx context.Context, snap models.Snapshot) bool
}

// Result is the outcome of one background save.
type Result struct {
	OK bool
	At time.Time
}

// Status is the writer's view of persistence for status indicators.
type Status struct {
	Saving      bool
	LastSavedAt time.Time
	Failed      bool
}

// Writer serializes snapshots on a single background goroutine. Submit never
// blocks; snapshots submitted while a save is pending replace each other, so
// only the latest one is written.
type Writer struct {
	saver    Saver
	debounce time.Duration
	onResult func(Result)
	now      func() time.Time

	mu      sync.Mutex
	pending *models.Snapshot
	status  Status
	closed  bool

	wake      chan struct{}
	closing   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

type WriterOption func(*Writer)

// WithDebounce delays each save by d, collecting submissions made meanwhile.
func WithDebounce(d time.Duration) WriterOption {
	return func(w *Writer) { w.debounce = d }
}

// WithOnResult registers a callback run on the writer goroutine after each
// save.
func WithOnResult(fn func(Result)) WriterOption {
	return func(w *Writer) { w.onResult = fn }
}

// NewWriter starts the writer goroutine. Call Close to stop it.
func NewWriter(saver Saver, opts ...WriterOption) *Writer {
	w := &Writer{
		saver:   saver,
		now:     time.Now,
		wake:    make(chan struct{}, 1),
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, o := range opts {
		o(w)
	}
	go w.run()
	return w
}

// Submit queues snap for saving. Submissions after Close are dropped.
func (w *Writer) Submit(snap models.Snapshot) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.pending = &snap
	w.status.Saving = true
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *Writer) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Close flushes the last submitted snapshot and stops the goroutine. It
// returns ctx.Err() if ctx ends first; the flush still completes in the
// background.
func (w *Writer) Close(ctx context.Context) error {
	w.closeOnce.Do(func() {
		// closed is set under mu, so every accepted Submit precedes the final flush.
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()
		close(w.closing)
	})
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Writer) run() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
		case <-w.closing:
			w.flush()
			return
		}

		if w.debounce > 0 {
			t := time.NewTimer(w.debounce)
			select {
			case <-t.C:
			case <-w.closing:
				t.Stop()
			}
		}
		w.flush()
	}
}

func (w *Writer) flush() {
	w.mu.Lock()
	snap := w.pending
	w.pending = nil
	w.mu.Unlock()
	if snap == nil {
		return
	}

	ok := w.saver.Save(context.Background(), *snap)
	res := Result{OK: ok, At: w.now()}

	w.mu.Lock()
	w.status.Saving = w.pending != nil
	w.status.Failed = !ok
	if ok {
		w.status.LastSavedAt = res.At
	}
	w.mu.Unlock()

	if w.onResult != nil {
		w.onResult(res)
	}
}

package kvstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
)

// ErrClosed is returned by Flush and Close once the writer has shut down.
var ErrClosed = errors.New("writer closed")

// Setter is the storage side of a Writer.
type Setter interface {
	Set(key, value string) error
}

type request struct {
	key, value string
	flushed    chan struct{} // non-nil for flush markers
}

// Writer serialises saves through one goroutine. Writes are applied in the
// order they were enqueued, so the last Enqueue for a key is what storage
// ends up holding. Enqueue never waits for the write itself.
type Writer struct {
	dst Setter
	log *slog.Logger

	reqs chan request
	done chan struct{}

	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool

	errMu   sync.Mutex
	lastErr error
}

// NewWriter starts the writer goroutine. A nil logger discards output.
func NewWriter(dst Setter, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	w := &Writer{
		dst:  dst,
		log:  log,
		reqs: make(chan request, 64),
		done: make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *Writer) loop() {
	defer close(w.done)
	for r := range w.reqs {
		if r.flushed != nil {
			close(r.flushed)
			continue
		}
		if err := w.dst.Set(r.key, r.value); err != nil {
			w.log.Error("kvstore.write_failed", "key", r.key, "err", err)
			w.errMu.Lock()
			w.lastErr = err
			w.errMu.Unlock()
			continue
		}
		w.log.Debug("kvstore.write", "key", r.key, "bytes", len(r.value))
	}
}

// Enqueue schedules a write. It reports false if the writer is closed.
func (w *Writer) Enqueue(key, value string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return false
	}
	w.reqs <- request{key: key, value: value}
	return true
}

// Flush waits until every write enqueued before the call has been applied.
// It returns the most recent write error, if any.
func (w *Writer) Flush(ctx context.Context) error {
	marker := make(chan struct{})

	w.mu.RLock()
	if w.closed {
		w.mu.RUnlock()
		return ErrClosed
	}
	w.reqs <- request{flushed: marker}
	w.mu.RUnlock()

	select {
	case <-marker:
		return w.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting writes and waits for the queue to drain.
func (w *Writer) Close(ctx context.Context) error {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		close(w.reqs)
		w.mu.Unlock()
	})
	select {
	case <-w.done:
		return w.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the last write error seen by the writer goroutine.
func (w *Writer) Err() error {
	w.errMu.Lock()
	defer w.errMu.Unlock()
	return w.lastErr
}

// Package scheduler drives the periodic due check. It only produces ticks; the scan
// itself runs on the consumer side so it always reads one consistent snapshot.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/plantd/internal/clock"
)

const DefaultInterval = time.Second

var ErrInvalidInterval = errors.New("scheduler: interval must be positive")

// Tick is one scan request.
type Tick struct {
	Seq uint64
	At  time.Time
}

type Ticker struct {
	interval time.Duration
	clock    clock.Clock

	mu      sync.Mutex
	out     chan Tick
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool

	seq     uint64
	dropped uint64
}

type Option func(*Ticker)

// WithClock stamps ticks from c instead of the wall clock.
func WithClock(c clock.Clock) Option {
	return func(t *Ticker) { t.clock = c }
}

func NewTicker(interval time.Duration, bufferSize int, opts ...Option) (*Ticker, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	t := &Ticker{
		interval: interval,
		clock:    clock.Real{},
		out:      make(chan Tick, bufferSize),
		wakeup:   make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// C is closed once the ticker goroutine has exited.
func (t *Ticker) C() <-chan Tick {
	return t.out
}

func (t *Ticker) Interval() time.Duration { return t.interval }

// Start launches the ticker goroutine. It halts on Stop or when ctx is done.
func (t *Ticker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started || t.stopped {
		return
	}
	t.started = true
	go t.loop(ctx)
}

// Stop halts the ticker and waits for its goroutine to exit. Safe to call more than
// once and before Start.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	started := t.started
	close(t.stopCh)
	t.mu.Unlock()
	if !started {
		close(t.out)
		return
	}
	<-t.doneCh
}

// Nudge requests an immediate tick, e.g. after a task with a past deadline was added.
func (t *Ticker) Nudge() {
	select {
	case t.wakeup <- struct{}{}:
	default:
	}
}

func (t *Ticker) Dropped() uint64 {
	return atomic.LoadUint64(&t.dropped)
}

func (t *Ticker) loop(ctx context.Context) {
	defer close(t.doneCh)
	defer close(t.out)

	timer := time.NewTimer(t.interval)
	defer stopTimer(timer)

	for {
		select {
		case <-timer.C:
			t.emit()
			timer.Reset(t.interval)
		case <-t.wakeup:
			t.emit()
			resetTimer(timer, t.interval)
		case <-t.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (t *Ticker) emit() {
	tick := Tick{Seq: atomic.AddUint64(&t.seq, 1), At: t.clock.Now()}
	select {
	case t.out <- tick:
	default:
		atomic.AddUint64(&t.dropped, 1)
	}
}

func resetTimer(timer *time.Timer, d time.Duration) {
	stopTimer(timer)
	timer.Reset(d)
}

func stopTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}

package scheduler

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/sandeepkv93/plantd/internal/clock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTickerEmitsSequentialTicks(t *testing.T) {
	ticker, err := NewTicker(10*time.Millisecond, 4)
	if err != nil {
		t.Fatalf("new ticker: %v", err)
	}
	ticker.Start(context.Background())
	defer ticker.Stop()

	first := waitTick(t, ticker.C(), time.Second)
	second := waitTick(t, ticker.C(), time.Second)
	if first.Seq != 1 || second.Seq != 2 {
		t.Fatalf("unexpected sequence: first=%d second=%d", first.Seq, second.Seq)
	}
	if second.At.Before(first.At) {
		t.Fatalf("tick times went backwards: %v then %v", first.At, second.At)
	}
}

func TestTickerStampsFromClock(t *testing.T) {
	fixed := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	ticker, err := NewTicker(time.Hour, 1, WithClock(clock.NewFake(fixed)))
	if err != nil {
		t.Fatalf("new ticker: %v", err)
	}
	ticker.Start(context.Background())
	defer ticker.Stop()

	ticker.Nudge()
	tick := waitTick(t, ticker.C(), time.Second)
	if !tick.At.Equal(fixed) {
		t.Fatalf("expected tick at %v, got %v", fixed, tick.At)
	}
}

func TestTickerDropsWhenConsumerIsSlow(t *testing.T) {
	ticker, err := NewTicker(2*time.Millisecond, 1)
	if err != nil {
		t.Fatalf("new ticker: %v", err)
	}
	ticker.Start(context.Background())
	defer ticker.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for ticker.Dropped() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if ticker.Dropped() == 0 {
		t.Fatalf("expected dropped ticks > 0")
	}
}

func TestTickerStopsOnContextCancel(t *testing.T) {
	ticker, err := NewTicker(time.Hour, 1)
	if err != nil {
		t.Fatalf("new ticker: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ticker.Start(ctx)
	cancel()

	select {
	case _, ok := <-ticker.C():
		if ok {
			t.Fatalf("expected closed channel, got a tick")
		}
	case <-time.After(time.Second):
		t.Fatalf("ticker did not stop after cancel")
	}
	ticker.Stop()
}

func TestTickerStopIsIdempotent(t *testing.T) {
	ticker, err := NewTicker(time.Millisecond, 1)
	if err != nil {
		t.Fatalf("new ticker: %v", err)
	}
	ticker.Start(context.Background())
	ticker.Stop()
	ticker.Stop()
	ticker.Start(context.Background())

	if _, ok := <-ticker.C(); ok {
		// A tick buffered before Stop may still be drained once.
		if _, ok := <-ticker.C(); ok {
			t.Fatalf("expected channel closed after stop")
		}
	}
}

func TestTickerStopBeforeStart(t *testing.T) {
	ticker, err := NewTicker(time.Millisecond, 1)
	if err != nil {
		t.Fatalf("new ticker: %v", err)
	}
	ticker.Stop()
	if _, ok := <-ticker.C(); ok {
		t.Fatalf("expected closed channel")
	}
}

func TestNewTickerValidatesInterval(t *testing.T) {
	if _, err := NewTicker(0, 1); err != ErrInvalidInterval {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
	ticker, err := NewTicker(250*time.Millisecond, 1)
	if err != nil {
		t.Fatalf("new ticker: %v", err)
	}
	defer ticker.Stop()
	if ticker.Interval() != 250*time.Millisecond {
		t.Fatalf("unexpected interval %v", ticker.Interval())
	}
}

func waitTick(t *testing.T, ch <-chan Tick, timeout time.Duration) Tick {
	t.Helper()
	select {
	case tick, ok := <-ch:
		if !ok {
			t.Fatalf("tick channel closed")
		}
		return tick
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for tick")
	}
	return Tick{}
}

package timer

import (
	"context"
	"sync"
	"time"
)

// wakeupChannel is the signaling primitive shared by a Timer and its
// Cancellers. The wake channel has a buffer of one: a non-blocking send
// coalesces any number of signals into a single pending wakeup.
type wakeupChannel struct {
	wake chan struct{}
	done chan struct{}
	once sync.Once
}

func newWakeupChannel() *wakeupChannel {
	return &wakeupChannel{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// signal delivers a wakeup without blocking. A signal sent while one is
// already pending is coalesced into it.
func (w *wakeupChannel) signal() error {
	select {
	case <-w.done:
		return ErrClosed
	default:
	}

	select {
	case w.wake <- struct{}{}:
	default:
	}

	return nil
}

// wait blocks until a signal arrives, d elapses, or the channel is closed.
// A signal pending at entry wins over the deadline, even at d <= 0.
// Exactly one signal is consumed, and only when returning Cancelled; a
// signal arriving after the deadline stays pending for the next wait.
func (w *wakeupChannel) wait(d time.Duration) (Outcome, error) {
	select {
	case <-w.wake:
		return Cancelled, nil
	case <-w.done:
		return Completed, ErrClosed
	default:
	}

	if d <= 0 {
		return Completed, nil
	}

	deadline := time.NewTimer(d)
	defer deadline.Stop()

	select {
	case <-w.wake:
		return Cancelled, nil
	case <-w.done:
		return Completed, ErrClosed
	case <-deadline.C:
		return Completed, nil
	}
}

// waitContext is wait with an additional wake condition on ctx.
func (w *wakeupChannel) waitContext(ctx context.Context, d time.Duration) (Outcome, error) {
	select {
	case <-w.wake:
		return Cancelled, nil
	case <-w.done:
		return Completed, ErrClosed
	case <-ctx.Done():
		return Completed, ctx.Err()
	default:
	}

	if d <= 0 {
		return Completed, nil
	}

	deadline := time.NewTimer(d)
	defer deadline.Stop()

	select {
	case <-w.wake:
		return Cancelled, nil
	case <-w.done:
		return Completed, ErrClosed
	case <-ctx.Done():
		return Completed, ctx.Err()
	case <-deadline.C:
		return Completed, nil
	}
}

// close tears down the channel. Idempotent; safe concurrently with signal
// and wait.
func (w *wakeupChannel) close() {
	w.once.Do(func() {
		close(w.done)
	})
}

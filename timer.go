// Package timer implements a sleep that can be cancelled from another
// goroutine.
//
// Timer and Canceller are created as a bound pair sharing one wakeup
// channel. Sleep blocks the calling goroutine until the requested duration
// elapses or a Canceller delivers a signal, whichever comes first. There is
// no polling; a cancellation wakes the sleeper immediately.
package timer

import (
	"context"
	"fmt"
	"time"
)

// Outcome reports how a Sleep call ended.
type Outcome int

const (
	// Completed means the full duration elapsed without cancellation.
	Completed Outcome = iota
	// Cancelled means a cancellation signal was consumed.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Timer owns the read side of a wakeup channel.
//
// A Timer is single-waiter: overlapping Sleep calls from multiple
// goroutines on the same Timer are not supported and not detected.
type Timer struct {
	wakeup *wakeupChannel
}

// New constructs a Timer and the Canceller bound to it.
func New() (*Timer, Canceller, error) {
	w := newWakeupChannel()
	return &Timer{wakeup: w}, Canceller{wakeup: w}, nil
}

// Sleep blocks until d has elapsed or a cancellation signal is observed,
// whichever comes first.
//
// A signal already pending when Sleep is called is consumed immediately,
// even at d <= 0. Each call consumes at most one signal; a signal that
// lands after the deadline stays pending and cancels the next call. Once
// the pair has been closed, Sleep returns ErrClosed.
func (t *Timer) Sleep(d time.Duration) (Outcome, error) {
	return t.wakeup.wait(d)
}

// SleepContext is Sleep with an additional wake condition: if ctx becomes
// done first, SleepContext returns ctx.Err() without consuming a signal.
func (t *Timer) SleepContext(ctx context.Context, d time.Duration) (Outcome, error) {
	return t.wakeup.waitContext(ctx, d)
}

// Close tears down the pair. A Sleep blocked on another goroutine wakes
// with ErrClosed, and every later Sleep or Cancel returns ErrClosed; the
// pair cannot be revived. Close is idempotent.
func (t *Timer) Close() error {
	t.wakeup.close()
	return nil
}

package timer

import (
	"time"

	"github.com/pkg/errors"
)

// After runs fn on a new goroutine once d has elapsed, passing the result
// of the underlying Sleep: (Completed, nil) if the wait ran its course, or
// (Cancelled, nil) if the returned Canceller cut it short. The internal
// Timer is closed after fn returns.
func After(d time.Duration, fn func(Outcome, error)) (Canceller, error) {
	t, canceller, err := New()
	if err != nil {
		return Canceller{}, errors.Wrap(err, "create timer")
	}

	go func() {
		defer t.Close()
		fn(t.Sleep(d))
	}()

	return canceller, nil
}

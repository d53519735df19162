package timer

// Canceller is a handle on the write side of a Timer's wakeup channel. It
// is cheap to copy and every copy shares the same channel; Cancel may be
// called from any number of goroutines at once.
type Canceller struct {
	wakeup *wakeupChannel
}

// Cancel wakes the current or next Sleep on the paired Timer. It never
// blocks. Calls made before a Sleep consumes the signal coalesce into one
// pending wakeup, so N cancels cause exactly one Sleep to return Cancelled.
// Cancel returns ErrClosed once the pair has been closed.
func (c Canceller) Cancel() error {
	return c.wakeup.signal()
}

// Clone returns a Canceller sharing the same wakeup channel. No new
// resource is allocated; a plain copy of the Canceller is equivalent.
func (c Canceller) Clone() Canceller {
	return c
}

package timer

import "github.com/pkg/errors"

// ErrClosed is returned by Sleep and Cancel once the pair has been torn
// down with Close. The pair is permanently broken; construct a new one
// with New.
var ErrClosed = errors.New("wakeup channel closed")

// Package booking decides whether a time window on a bike is free and what a finished rental costs.
// Everything here is a pure function of its inputs.
package booking

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("window start must be before its end")

// Window is the half-open interval [Start, End). A zero End means the window never closes.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() || !w.Start.Before(w.End) {
		return ErrInvalidWindow
	}
	return nil
}

func (w Window) unbounded() bool {
	return w.End.IsZero()
}

// Overlaps reports whether the windows share an instant. Touching windows do not overlap.
func (w Window) Overlaps(other Window) bool {
	startsBeforeOtherEnds := other.unbounded() || w.Start.Before(other.End)
	otherStartsBeforeEnd := w.unbounded() || other.Start.Before(w.End)
	return startsBeforeOtherEnds && otherStartsBeforeEnd
}

func (w Window) Duration() time.Duration {
	if w.unbounded() {
		return 0
	}
	return w.End.Sub(w.Start)
}

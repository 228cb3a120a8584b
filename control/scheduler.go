// Package control provides the timing primitives the draw animation runs on.
// Every callback handed to a Scheduler runs on the UI event loop, one at a
// time, so state owned by the draw controller needs no locking.
package control

import (
	"time"

	"fyne.io/fyne/v2"
)

// Scheduler defers a callback onto the event loop after a delay.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// UIScheduler runs callbacks on the Fyne main thread once the delay elapses.
type UIScheduler struct{}

// After waits d on a runtime timer and then hands fn to fyne.Do.
func (UIScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		fyne.Do(fn)
	})
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

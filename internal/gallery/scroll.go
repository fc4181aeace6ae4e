package gallery

import "time"

// DefaultScrollDelay lets freshly revealed thumbnails finish layout before
// the list is scrolled to them.
const DefaultScrollDelay = 60 * time.Millisecond

// Scroller moves the thumbnail list. Index is a catalog index.
type Scroller interface {
	// ScrollIntoView brings the thumbnail into view. Implementations that
	// cannot animate return ErrSmoothScrollUnsupported when smooth is true.
	ScrollIntoView(index int, smooth bool) error

	// Focus gives the thumbnail input focus without scrolling
	Focus(index int)
}

// Scheduler runs fn once after d
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// TimerScheduler schedules on time.AfterFunc. The callback runs on its own
// goroutine, so a Scroller used with it must be safe for concurrent use.
// Hosts with an event loop inject a Scheduler that delivers there instead.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// scrollTo scrolls smoothly, falling back to a plain jump, then focuses
func scrollTo(s Scroller, index int) {
	if err := s.ScrollIntoView(index, true); err != nil {
		_ = s.ScrollIntoView(index, false) //nolint:errcheck // nothing left to fall back to
	}
	s.Focus(index)
}

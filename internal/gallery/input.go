package gallery

import "math"

// Keys understood while the modal is open
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Swipe thresholds: horizontal travel must exceed SwipeThreshold and be
// SwipeRatio times larger than the vertical travel.
const (
	SwipeThreshold = 50.0
	SwipeRatio     = 1.2
)

// Swipe is the classification of a finished touch
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeNext
	SwipePrev
)

func (s Swipe) String() string {
	switch s {
	case SwipeNext:
		return "next"
	case SwipePrev:
		return "prev"
	default:
		return "none"
	}
}

// Point is a touch position
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ClassifySwipe turns a displacement into a swipe. A leftward swipe (dx < 0)
// means next.
func ClassifySwipe(dx, dy float64) Swipe {
	ax := math.Abs(dx)
	if ax <= SwipeThreshold || ax <= math.Abs(dy)*SwipeRatio {
		return SwipeNone
	}
	if dx < 0 {
		return SwipeNext
	}
	return SwipePrev
}

// touchTracker follows a single finger from start to release
type touchTracker struct {
	active bool
	start  Point
}

func (t *touchTracker) begin(points []Point) {
	if len(points) != 1 {
		return
	}
	t.active = true
	t.start = points[0]
}

func (t *touchTracker) end(p Point) Swipe {
	if !t.active {
		return SwipeNone
	}
	t.active = false
	return ClassifySwipe(p.X-t.start.X, p.Y-t.start.Y)
}

// Click handles a click on the thumbnail identified by source. Hidden
// thumbnails are ignored; an unknown source opens the first active item.
func (v *Viewer) Click(source string) bool {
	pos, ok := v.clickTarget(source)
	if !ok {
		return false
	}
	before := v.Shown()
	opened := v.nav.open(pos, causeDirect)
	v.notifyReveal(before)
	return opened
}

// clickTarget resolves a clicked source to an active position
func (v *Viewer) clickTarget(source string) (int, bool) {
	itemIdx, known := v.catalog.IndexOfBySource(source)
	if !known {
		return 0, true
	}
	if !v.strategy.Visible(itemIdx) {
		return 0, false
	}
	return v.activePosition(itemIdx)
}

// CloseButton handles the close control
func (v *Viewer) CloseButton() { v.Close() }

// Backdrop handles a click on the overlay outside the content frame
func (v *Viewer) Backdrop() { v.Close() }

// Frame handles a click inside the content frame. It never reaches the
// backdrop, so the modal stays open.
func (v *Viewer) Frame() {}

// PrevButton handles the previous control
func (v *Viewer) PrevButton() bool { return v.Step(-1) }

// NextButton handles the next control
func (v *Viewer) NextButton() bool { return v.Step(1) }

// Key handles a key press. Keys are ignored while the modal is closed.
// It reports whether the key was consumed.
func (v *Viewer) Key(name string) bool {
	if !v.nav.IsOpen() {
		return false
	}
	switch name {
	case KeyEscape:
		v.Close()
	case KeyArrowLeft:
		v.Step(-1)
	case KeyArrowRight:
		v.Step(1)
	default:
		return false
	}
	return true
}

// TouchStart begins tracking a gesture. Only single-finger touches made
// while the modal is open are tracked.
func (v *Viewer) TouchStart(points ...Point) {
	if !v.nav.IsOpen() {
		return
	}
	v.touch.begin(points)
}

// TouchEnd finishes the gesture and steps on a horizontal swipe
func (v *Viewer) TouchEnd(p Point) Swipe {
	swipe := v.touch.end(p)
	switch swipe {
	case SwipeNext:
		v.Step(1)
	case SwipePrev:
		v.Step(-1)
	}
	return swipe
}

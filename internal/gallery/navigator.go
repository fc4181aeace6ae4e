package gallery

import "time"

// Closed is the navigator position while the modal is hidden
const Closed = -1

// Modal is the projection of the overlay
type Modal struct {
	Open         bool   `json:"open"`
	Index        int    `json:"index"`
	Item         int    `json:"item"`
	Source       string `json:"source,omitempty"`
	Caption      string `json:"caption,omitempty"`
	Alt          string `json:"alt,omitempty"`
	AriaHidden   bool   `json:"aria_hidden"`
	PrevDisabled bool   `json:"prev_disabled"`
	NextDisabled bool   `json:"next_disabled"`
}

func closedModal() Modal {
	return Modal{Index: Closed, Item: Closed, AriaHidden: true}
}

// openCause tells the navigator whether the list must be scrolled after opening
type openCause int

const (
	causeDirect openCause = iota
	causeNavigate
)

// Navigator is the two-state modal machine: Closed or Open on a position
// of the strategy's active sequence.
type Navigator struct {
	catalog  *Catalog
	strategy Strategy
	listener Listener

	autoScroll  bool
	scrollDelay time.Duration
	scroller    Scroller
	scheduler   Scheduler

	current int
	modal   Modal
}

func newNavigator(catalog *Catalog, strategy Strategy, opts Options) *Navigator {
	return &Navigator{
		catalog:     catalog,
		strategy:    strategy,
		listener:    opts.Listener,
		autoScroll:  opts.AutoScroll,
		scrollDelay: opts.ScrollDelay,
		scroller:    opts.Scroller,
		scheduler:   opts.Scheduler,
		current:     Closed,
		modal:       closedModal(),
	}
}

// IsOpen reports whether the modal is shown
func (n *Navigator) IsOpen() bool { return n.current != Closed }

// Current returns the open position in the active sequence, or Closed
func (n *Navigator) Current() int { return n.current }

// Modal returns the overlay projection
func (n *Navigator) Modal() Modal { return n.modal }

// OpenByIndex opens position i of the active sequence with wraparound.
// An empty sequence leaves the navigator closed.
func (n *Navigator) OpenByIndex(i int) bool {
	return n.open(i, causeDirect)
}

func (n *Navigator) open(i int, cause openCause) bool {
	length := len(n.strategy.Active())
	if length == 0 {
		return false
	}

	idx := ((i % length) + length) % length
	n.strategy.Prepare(idx)

	active := n.strategy.Active()
	if idx >= len(active) {
		return false
	}
	itemIdx := active[idx]
	item, ok := n.catalog.At(itemIdx)
	if !ok {
		return false
	}

	n.current = idx
	single := length < 2
	n.modal = Modal{
		Open:         true,
		Index:        idx,
		Item:         itemIdx,
		Source:       item.Source,
		Caption:      item.Caption,
		Alt:          item.Alt(),
		AriaHidden:   false,
		PrevDisabled: single,
		NextDisabled: single,
	}
	n.listener.OnOpen(idx, item)

	if cause == causeNavigate {
		n.scheduleScroll(itemIdx)
	}
	return true
}

// scheduleScroll keeps the thumbnail list in step with the modal. Only the
// batch strategy scrolls; the call is fire-and-forget.
func (n *Navigator) scheduleScroll(itemIdx int) {
	if !n.autoScroll || n.scroller == nil || n.scheduler == nil {
		return
	}
	if n.strategy.Mode() != ModeBatch {
		return
	}
	scroller := n.scroller
	n.scheduler.AfterFunc(n.scrollDelay, func() {
		scrollTo(scroller, itemIdx)
	})
}

// Close hides the modal and drops the loaded source and caption
func (n *Navigator) Close() {
	wasOpen := n.IsOpen()
	n.current = Closed
	n.modal = closedModal()
	if wasOpen {
		n.listener.OnClose()
	}
}

// Step moves by direction (+1 next, -1 previous). Fewer than two navigable
// items make it a no-op.
func (n *Navigator) Step(direction int) bool {
	if len(n.strategy.Active()) < 2 {
		return false
	}
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}
	if !n.open(n.current+direction, causeNavigate) {
		return false
	}
	n.listener.OnStep(direction, n.current)
	return true
}

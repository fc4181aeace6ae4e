package gallery

import "time"

// Options configures a Viewer
type Options struct {
	Mode         Mode
	BatchSize    int
	PerPage      int
	PagerWindow  int
	RevealMargin int

	// InitialBatches is how many batches the batch strategy reveals on creation
	InitialBatches int

	AutoScroll  bool
	ScrollDelay time.Duration
	Scroller    Scroller
	// Scheduler defaults to TimerScheduler, which calls Scroller from
	// another goroutine
	Scheduler Scheduler
	Location  Location
	Listener  Listener
}

// DefaultOptions returns the options of a paged gallery with stock sizes
func DefaultOptions() Options {
	return Options{
		Mode:           ModePaged,
		BatchSize:      DefaultBatchSize,
		PerPage:        DefaultPerPage,
		PagerWindow:    DefaultPagerWindow,
		RevealMargin:   DefaultRevealMargin,
		InitialBatches: 1,
		AutoScroll:     true,
		ScrollDelay:    DefaultScrollDelay,
	}
}

// Card is the projection of one thumbnail
type Card struct {
	Index   int  `json:"index"`
	Item    Item `json:"item"`
	Hidden  bool `json:"hidden"`
	Current bool `json:"current,omitempty"`
}

// View is a snapshot of everything a host needs to render
type View struct {
	Mode         Mode           `json:"mode"`
	Cards        []Card         `json:"cards"`
	Modal        Modal          `json:"modal"`
	ScrollLocked bool           `json:"scroll_locked"`
	LoadMore     LoadMoreState  `json:"load_more"`
	Pager        *PagerControls `json:"pager,omitempty"`
	State        State          `json:"state"`
}

// Viewer is one gallery instance: catalog, disclosure strategy, navigator
// and input tracking. It is not safe for concurrent use; hosts drive it from
// a single event loop or build one per request.
type Viewer struct {
	catalog  *Catalog
	strategy Strategy
	batch    *BatchReveal
	pager    *Pagination
	nav      *Navigator
	touch    touchTracker

	listener Listener
	location Location
}

// New creates a viewer over catalog
func New(catalog *Catalog, opts Options) (*Viewer, error) {
	if catalog == nil {
		catalog = NewCatalog(nil)
	}
	if opts.Mode == "" {
		opts.Mode = ModeAll
	}
	if opts.Listener == nil {
		opts.Listener = NopListener{}
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}
	if opts.ScrollDelay < 0 {
		opts.ScrollDelay = DefaultScrollDelay
	}

	v := &Viewer{
		catalog:  catalog,
		listener: opts.Listener,
		location: opts.Location,
	}

	switch opts.Mode {
	case ModeAll:
		v.strategy = NewShowAll(catalog.Len())
	case ModeBatch:
		v.batch = NewBatchReveal(catalog.Len(), opts.BatchSize, opts.RevealMargin)
		for i := 0; i < opts.InitialBatches; i++ {
			v.batch.RevealBatch()
		}
		v.strategy = v.batch
	case ModePaged:
		v.pager = NewPagination(catalog.Len(), opts.PerPage, opts.PagerWindow)
		v.strategy = v.pager
	default:
		return nil, ErrUnknownMode
	}

	v.nav = newNavigator(catalog, v.strategy, opts)
	return v, nil
}

// SetListener replaces the listener. Hosts that rebuild a viewer from a
// State attach theirs after Restore so the replay is not reported.
func (v *Viewer) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	v.listener = l
	v.nav.listener = l
}

// Mode returns the disclosure mode
func (v *Viewer) Mode() Mode { return v.strategy.Mode() }

// Catalog returns the item source
func (v *Viewer) Catalog() *Catalog { return v.catalog }

// Strategy returns the active disclosure strategy
func (v *Viewer) Strategy() Strategy { return v.strategy }

// IsOpen reports whether the modal is shown
func (v *Viewer) IsOpen() bool { return v.nav.IsOpen() }

// Current returns the open position in the active sequence, or Closed
func (v *Viewer) Current() int { return v.nav.Current() }

// Modal returns the overlay projection
func (v *Viewer) Modal() Modal { return v.nav.Modal() }

// OpenByIndex opens position i of the active sequence
func (v *Viewer) OpenByIndex(i int) bool {
	before := v.Shown()
	opened := v.nav.OpenByIndex(i)
	v.notifyReveal(before)
	return opened
}

// Close hides the modal
func (v *Viewer) Close() { v.nav.Close() }

// Step moves the modal forward (+1) or backward (-1) with wraparound
func (v *Viewer) Step(direction int) bool {
	before := v.Shown()
	stepped := v.nav.Step(direction)
	v.notifyReveal(before)
	return stepped
}

// Shown returns the number of revealed items. Strategies without
// incremental reveal report every item that is visible.
func (v *Viewer) Shown() int {
	if v.batch != nil {
		return v.batch.Shown()
	}
	return len(v.strategy.Active())
}

// RevealBatch reveals the next batch. It is a no-op outside batch mode and
// once everything is shown.
func (v *Viewer) RevealBatch() bool {
	if v.batch == nil {
		return false
	}
	before := v.batch.Shown()
	v.batch.RevealBatch()
	return v.notifyReveal(before)
}

// LoadMore handles the load-more control
func (v *Viewer) LoadMore() bool { return v.RevealBatch() }

// Observe forwards an intersection signal for the reveal trigger
func (v *Viewer) Observe(distance int) bool {
	if v.batch == nil {
		return false
	}
	before := v.batch.Shown()
	v.batch.Observe(distance)
	return v.notifyReveal(before)
}

func (v *Viewer) notifyReveal(before int) bool {
	if v.batch == nil || v.batch.Shown() == before {
		return false
	}
	v.listener.OnReveal(v.batch.Shown())
	return true
}

// Page returns the current page; 1 outside paged mode
func (v *Viewer) Page() int {
	if v.pager == nil {
		return 1
	}
	return v.pager.Page()
}

// TotalPages returns the number of pages; 1 outside paged mode
func (v *Viewer) TotalPages() int {
	if v.pager == nil {
		return 1
	}
	return v.pager.TotalPages()
}

// SetPage selects page p, clamped to the valid range. A page change closes
// the modal first because positions are not transferable between pages.
// The location is rewritten on every call.
func (v *Viewer) SetPage(p int) int {
	if v.pager == nil {
		return 1
	}
	target := v.pager.Clamp(p)
	changed := target != v.pager.Page()
	if changed && v.nav.IsOpen() {
		v.nav.Close()
	}
	v.pager.SetPage(target)
	if v.location != nil {
		v.location.Replace(target)
	}
	if changed {
		v.listener.OnPage(target)
	}
	return target
}

// PrevPage moves one page back
func (v *Viewer) PrevPage() int { return v.SetPage(v.Page() - 1) }

// NextPage moves one page forward
func (v *Viewer) NextPage() int { return v.SetPage(v.Page() + 1) }

// activePosition maps a catalog index onto the active sequence
func (v *Viewer) activePosition(itemIdx int) (int, bool) {
	for pos, idx := range v.strategy.Active() {
		if idx == itemIdx {
			return pos, true
		}
	}
	return -1, false
}

// State returns the serialisable viewer state
func (v *Viewer) State() State {
	s := State{}
	if v.pager != nil {
		s.Page = v.pager.Page()
	}
	if v.batch != nil {
		s.Shown = v.batch.Shown()
	}
	if v.nav.IsOpen() {
		s.Open = v.nav.Modal().Source
	}
	return s
}

// Restore reapplies a state produced by State. Out-of-range values are
// clamped and an unknown or hidden open source leaves the modal closed.
func (v *Viewer) Restore(s State) {
	if v.pager != nil && s.Page > 0 {
		v.SetPage(s.Page)
	}
	if v.batch != nil && s.Shown > 0 {
		before := v.batch.Shown()
		v.batch.RevealTo(s.Shown)
		v.notifyReveal(before)
	}
	if s.Open == "" {
		return
	}
	if itemIdx, ok := v.catalog.IndexOfBySource(s.Open); ok && v.strategy.Visible(itemIdx) {
		if pos, ok := v.activePosition(itemIdx); ok {
			v.nav.open(pos, causeDirect)
		}
	}
}

// Snapshot projects the current state for rendering
func (v *Viewer) Snapshot() View {
	modal := v.nav.Modal()
	cards := make([]Card, 0, v.catalog.Len())
	for i, item := range v.catalog.ListAll() {
		cards = append(cards, Card{
			Index:   i,
			Item:    item,
			Hidden:  !v.strategy.Visible(i),
			Current: modal.Open && modal.Item == i,
		})
	}

	view := View{
		Mode:         v.strategy.Mode(),
		Cards:        cards,
		Modal:        modal,
		ScrollLocked: modal.Open,
		State:        v.State(),
	}
	if v.batch != nil {
		view.LoadMore = v.batch.LoadMore()
	}
	if v.pager != nil {
		controls := v.pager.Controls()
		view.Pager = &controls
	}
	return view
}

package gallery

import (
	"fmt"
	"time"
)

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Source:  fmt.Sprintf("/images/%02d.jpg", i),
			Caption: fmt.Sprintf("Image %d", i),
		}
	}
	return items
}

func newTestViewer(n int, opts Options) *Viewer {
	v, err := New(NewCatalog(testItems(n)), opts)
	if err != nil {
		panic(err)
	}
	return v
}

// manualScheduler queues callbacks until run is called
type manualScheduler struct {
	delays  []time.Duration
	pending []func()
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) {
	s.delays = append(s.delays, d)
	s.pending = append(s.pending, fn)
}

func (s *manualScheduler) run() {
	pending := s.pending
	s.pending = nil
	for _, fn := range pending {
		fn()
	}
}

type scrollCall struct {
	index  int
	smooth bool
}

type recordingScroller struct {
	noSmooth bool
	scrolls  []scrollCall
	focused  []int
}

func (s *recordingScroller) ScrollIntoView(index int, smooth bool) error {
	s.scrolls = append(s.scrolls, scrollCall{index: index, smooth: smooth})
	if smooth && s.noSmooth {
		return ErrSmoothScrollUnsupported
	}
	return nil
}

func (s *recordingScroller) Focus(index int) {
	s.focused = append(s.focused, index)
}

type recordingListener struct {
	events []string
}

func (l *recordingListener) OnOpen(index int, item Item) {
	l.events = append(l.events, fmt.Sprintf("open:%d:%s", index, item.Source))
}

func (l *recordingListener) OnClose() { l.events = append(l.events, "close") }

func (l *recordingListener) OnStep(direction, index int) {
	l.events = append(l.events, fmt.Sprintf("step:%d:%d", direction, index))
}

func (l *recordingListener) OnReveal(shown int) {
	l.events = append(l.events, fmt.Sprintf("reveal:%d", shown))
}

func (l *recordingListener) OnPage(page int) {
	l.events = append(l.events, fmt.Sprintf("page:%d", page))
}

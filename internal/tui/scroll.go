package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gallery-viewer/internal/gallery"
)

// rowPixels is how far one terminal row counts towards the reveal margin
const rowPixels = 100

// scrollMsg carries a scheduled scroll back into the update loop
type scrollMsg struct {
	run func()
}

// tickScheduler turns viewer callbacks into tea.Tick commands so they run
// on the program's event loop instead of a timer goroutine.
type tickScheduler struct {
	pending []tea.Cmd
}

func (s *tickScheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return scrollMsg{run: fn}
	}))
}

// drain returns the commands queued since the last call
func (s *tickScheduler) drain() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// listState is the scrollable list of visible thumbnails. Rows hold
// catalog indices.
type listState struct {
	rows    []int
	cursor  int
	offset  int
	height  int
	focused int
}

func newListState(height int) *listState {
	return &listState{height: height, focused: -1}
}

// ScrollIntoView moves the viewport so the row of index is shown. The
// terminal cannot animate, so smooth requests are refused.
func (l *listState) ScrollIntoView(index int, smooth bool) error {
	if smooth {
		return gallery.ErrSmoothScrollUnsupported
	}
	pos := l.position(index)
	if pos < 0 {
		return nil
	}
	switch {
	case pos < l.offset:
		l.offset = pos
	case pos >= l.offset+l.height:
		l.offset = pos - l.height + 1
	}
	return nil
}

// Focus moves the cursor onto index without touching the viewport
func (l *listState) Focus(index int) {
	if pos := l.position(index); pos >= 0 {
		l.cursor = pos
		l.focused = index
	}
}

func (l *listState) position(index int) int {
	for pos, idx := range l.rows {
		if idx == index {
			return pos
		}
	}
	return -1
}

// setRows replaces the rows and keeps cursor and viewport in range
func (l *listState) setRows(rows []int) {
	l.rows = rows
	if l.cursor >= len(rows) {
		l.cursor = len(rows) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampOffset()
}

func (l *listState) setHeight(h int) {
	if h < 1 {
		h = 1
	}
	l.height = h
	l.clampOffset()
}

func (l *listState) move(delta int) {
	if len(l.rows) == 0 {
		return
	}
	l.cursor = min(max(l.cursor+delta, 0), len(l.rows)-1)
	switch {
	case l.cursor < l.offset:
		l.offset = l.cursor
	case l.cursor >= l.offset+l.height:
		l.offset = l.cursor - l.height + 1
	}
}

func (l *listState) clampOffset() {
	maxOffset := max(len(l.rows)-l.height, 0)
	l.offset = min(max(l.offset, 0), maxOffset)
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
}

// selected returns the catalog index under the cursor
func (l *listState) selected() (int, bool) {
	if l.cursor < 0 || l.cursor >= len(l.rows) {
		return 0, false
	}
	return l.rows[l.cursor], true
}

// sentinelDistance is how far below the viewport the reveal trigger sits
func (l *listState) sentinelDistance() int {
	below := len(l.rows) - (l.offset + l.height)
	return max(below, 0) * rowPixels
}

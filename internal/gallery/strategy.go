package gallery

import (
	"fmt"
	"strings"
)

// Mode selects the disclosure strategy of a viewer
type Mode string

const (
	ModeAll   Mode = "all"
	ModeBatch Mode = "batch"
	ModePaged Mode = "paged"
)

// ParseMode converts a configuration string into a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAll:
		return ModeAll, nil
	case ModeBatch:
		return ModeBatch, nil
	case ModePaged:
		return ModePaged, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Strategy decides which catalog items are visible and which sequence the
// navigator walks through.
type Strategy interface {
	// Mode identifies the strategy
	Mode() Mode

	// Visible reports whether the catalog item at i is currently shown
	Visible(i int) bool

	// Active returns the catalog indices the navigator steps through, in order
	Active() []int

	// Prepare runs before the navigator opens the active position i
	Prepare(i int)
}

// visibility is the explicit visibility set: entry i is true iff the
// thumbnail of catalog item i is not hidden.
type visibility []bool

func newVisibility(total int) visibility {
	return make(visibility, total)
}

func (v visibility) has(i int) bool {
	return i >= 0 && i < len(v) && v[i]
}

// showRange marks [start, end) visible and everything else hidden
func (v visibility) showRange(start, end int) {
	for i := range v {
		v[i] = i >= start && i < end
	}
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// ShowAll keeps every item visible at all times
type ShowAll struct {
	total int
}

// NewShowAll creates the show-all strategy for total items
func NewShowAll(total int) *ShowAll {
	return &ShowAll{total: total}
}

func (s *ShowAll) Mode() Mode { return ModeAll }

func (s *ShowAll) Visible(i int) bool { return i >= 0 && i < s.total }

func (s *ShowAll) Active() []int { return identity(s.total) }

func (s *ShowAll) Prepare(int) {}

package gallery

const (
	DefaultPerPage     = 12
	DefaultPagerWindow = 7
)

// PageButton is one entry of the page selector. Ellipsis entries carry no page.
type PageButton struct {
	Page     int  `json:"page,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PagerControls is the projection of the page selector
type PagerControls struct {
	Page         int          `json:"page"`
	TotalPages   int          `json:"total_pages"`
	Buttons      []PageButton `json:"buttons"`
	PrevDisabled bool         `json:"prev_disabled"`
	NextDisabled bool         `json:"next_disabled"`
}

// Pagination shows one fixed-size page of items at a time
type Pagination struct {
	visible visibility
	perPage int
	window  int
	page    int
}

// NewPagination creates a paged strategy positioned on page 1
func NewPagination(total, perPage, window int) *Pagination {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if window <= 0 {
		window = DefaultPagerWindow
	}
	p := &Pagination{
		visible: newVisibility(total),
		perPage: perPage,
		window:  window,
	}
	p.SetPage(1)
	return p
}

func (p *Pagination) Mode() Mode { return ModePaged }

func (p *Pagination) Visible(i int) bool { return p.visible.has(i) }

// Active returns the catalog indices of the current page
func (p *Pagination) Active() []int {
	start, end := p.Range()
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

func (p *Pagination) Prepare(int) {}

// Page returns the current 1-based page
func (p *Pagination) Page() int { return p.page }

// PerPage returns the page size
func (p *Pagination) PerPage() int { return p.perPage }

// TotalPages returns ceil(total/perPage), never less than 1
func (p *Pagination) TotalPages() int {
	pages := (len(p.visible) + p.perPage - 1) / p.perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp limits n to the valid page range
func (p *Pagination) Clamp(n int) int {
	if n < 1 {
		return 1
	}
	if total := p.TotalPages(); n > total {
		return total
	}
	return n
}

// SetPage moves to page n (clamped) and recomputes the visibility set.
// It returns the page actually selected.
func (p *Pagination) SetPage(n int) int {
	p.page = p.Clamp(n)
	start, end := p.Range()
	p.visible.showRange(start, end)
	return p.page
}

// Range returns the half-open catalog range [start, end) of the current page
func (p *Pagination) Range() (int, int) {
	start := (p.page - 1) * p.perPage
	end := p.page * p.perPage
	if start > len(p.visible) {
		start = len(p.visible)
	}
	if end > len(p.visible) {
		end = len(p.visible)
	}
	return start, end
}

// Controls regenerates the page selector for the current page
func (p *Pagination) Controls() PagerControls {
	total := p.TotalPages()
	return PagerControls{
		Page:         p.page,
		TotalPages:   total,
		Buttons:      PageWindow(p.page, total, p.window),
		PrevDisabled: p.page <= 1,
		NextDisabled: p.page >= total,
	}
}

// PageWindow returns the numbered buttons around current. The first and last
// pages are always present; an ellipsis marks a gap between them and the window.
func PageWindow(current, total, window int) []PageButton {
	if total < 1 {
		return nil
	}
	if window <= 0 {
		window = DefaultPagerWindow
	}

	button := func(n int) PageButton {
		return PageButton{Page: n, Current: n == current}
	}

	if total <= window {
		buttons := make([]PageButton, 0, total)
		for n := 1; n <= total; n++ {
			buttons = append(buttons, button(n))
		}
		return buttons
	}

	start := current - window/2
	if start < 1 {
		start = 1
	}
	end := start + window - 1
	if end > total {
		end = total
		start = end - window + 1
	}

	buttons := make([]PageButton, 0, window+4)
	if start > 1 {
		buttons = append(buttons, button(1))
		if start > 2 {
			buttons = append(buttons, PageButton{Ellipsis: true})
		}
	}
	for n := start; n <= end; n++ {
		buttons = append(buttons, button(n))
	}
	if end < total {
		if end < total-1 {
			buttons = append(buttons, PageButton{Ellipsis: true})
		}
		buttons = append(buttons, button(total))
	}
	return buttons
}

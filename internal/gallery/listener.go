package gallery

// Listener is notified of viewer transitions. Hosts register one to render,
// log or record metrics without the viewer knowing about them.
type Listener interface {
	OnOpen(index int, item Item)
	OnClose()
	OnStep(direction, index int)
	OnReveal(shown int)
	OnPage(page int)
}

// NopListener ignores every notification
type NopListener struct{}

func (NopListener) OnOpen(int, Item) {}
func (NopListener) OnClose()         {}
func (NopListener) OnStep(int, int)  {}
func (NopListener) OnReveal(int)     {}
func (NopListener) OnPage(int)       {}

// Listeners fans notifications out in registration order
type Listeners []Listener

func (ls Listeners) OnOpen(index int, item Item) {
	for _, l := range ls {
		l.OnOpen(index, item)
	}
}

func (ls Listeners) OnClose() {
	for _, l := range ls {
		l.OnClose()
	}
}

func (ls Listeners) OnStep(direction, index int) {
	for _, l := range ls {
		l.OnStep(direction, index)
	}
}

func (ls Listeners) OnReveal(shown int) {
	for _, l := range ls {
		l.OnReveal(shown)
	}
}

func (ls Listeners) OnPage(page int) {
	for _, l := range ls {
		l.OnPage(page)
	}
}

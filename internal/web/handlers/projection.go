package handlers

import (
	"context"
	"net/url"
	"time"

	"gallery-viewer/internal/gallery"
)

// ScrollRequest is the thumbnail scroll the viewer scheduled while handling
// an input. Clients wait DelayMS, scroll, then focus the card.
type ScrollRequest struct {
	Index   int   `json:"index"`
	Smooth  bool  `json:"smooth"`
	DelayMS int64 `json:"delay_ms"`
}

// scrollRecorder captures the scroll instead of performing it. A request
// has no screen to scroll, so the result travels back in the response.
// delay is the wait the navigator scheduled the scroll with.
type scrollRecorder struct {
	delay   time.Duration
	request *ScrollRequest
}

func (s *scrollRecorder) ScrollIntoView(index int, smooth bool) error {
	s.request = &ScrollRequest{Index: index, Smooth: smooth, DelayMS: s.delay.Milliseconds()}
	return nil
}

// Focus is left to the client, which focuses ScrollRequest.Index
func (s *scrollRecorder) Focus(int) {}

// AfterFunc runs fn at once, keeping d for the response
func (s *scrollRecorder) AfterFunc(d time.Duration, fn func()) {
	s.delay = d
	fn()
}

// session is a viewer rebuilt from request state
type session struct {
	viewer *gallery.Viewer
	scroll *scrollRecorder
	// page is the last page the input wrote through the Location hook,
	// 0 if none
	page int
}

// location is the gallery address for the page the input moved to, empty
// when the input did not touch the page
func (s *session) location() string {
	if s.page == 0 {
		return ""
	}
	return gallery.WithPage(&url.URL{Path: galleryPath}, s.page).String()
}

// restore rebuilds a viewer from state. The listener is attached after the
// replay so only the new input is reported.
func (h *Handler) restore(state gallery.State, listener gallery.Listener) (*session, error) {
	s := &session{}

	opts := h.options
	s.scroll = &scrollRecorder{}
	opts.Scroller = s.scroll
	opts.Scheduler = s.scroll
	opts.Location = gallery.LocationFunc(func(page int) { s.page = page })
	opts.Listener = nil

	v, err := gallery.New(h.catalog, opts)
	if err != nil {
		return nil, err
	}
	v.Restore(state)
	v.SetListener(listener)
	s.page = 0

	s.viewer = v
	return s, nil
}

// transition applies input to a copy of state and returns the resulting
// state and any scroll it scheduled. Used to compute link targets.
func (h *Handler) transition(state gallery.State, input func(v *gallery.Viewer)) (gallery.State, *ScrollRequest) {
	s, err := h.restore(state, nil)
	if err != nil {
		return state, nil
	}
	input(s.viewer)
	return s.viewer.State(), s.scroll.request
}

// listener returns the per-request metrics listener
func (h *Handler) listener(ctx context.Context) gallery.Listener {
	return h.galleryMetrics.Listener(ctx, h.logger, "http")
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"gallery-viewer/internal/gallery"
)

const maxInputBody = 64 << 10

// Input event types accepted by the input endpoint
const (
	EventClick    = "click"
	EventOpen     = "open"
	EventClose    = "close"
	EventBackdrop = "backdrop"
	EventFrame    = "frame"
	EventPrev     = "prev"
	EventNext     = "next"
	EventKey      = "key"
	EventSwipe    = "swipe"
	EventLoadMore = "load_more"
	EventObserve  = "observe"
	EventPage     = "page"
	EventPrevPage = "prev_page"
	EventNextPage = "next_page"
)

var errUnknownEvent = errors.New("unknown event type")

// InputEvent is one user interaction
type InputEvent struct {
	Type string `json:"type"`

	// Source identifies the clicked thumbnail
	Source string `json:"source,omitempty"`
	// Index is the active position for open
	Index int `json:"index,omitempty"`
	// Key is a key name such as Escape or ArrowLeft
	Key string `json:"key,omitempty"`
	// Page is the requested page
	Page int `json:"page,omitempty"`
	// Distance is the load trigger's distance to the viewport, in pixels
	Distance int `json:"distance,omitempty"`
	// Touches are the points at touch start; End is the release point
	Touches []gallery.Point `json:"touches,omitempty"`
	End     gallery.Point   `json:"end,omitempty"`
}

// InputRequest carries the client's current state and the event to apply
type InputRequest struct {
	State gallery.State `json:"state"`
	Event InputEvent    `json:"event"`
}

// InputResponse is the state after the event and its projection
type InputResponse struct {
	State    gallery.State  `json:"state"`
	View     gallery.View   `json:"view"`
	Handled  bool           `json:"handled"`
	Swipe    string         `json:"swipe,omitempty"`
	Scroll   *ScrollRequest `json:"scroll,omitempty"`
	Location string         `json:"location,omitempty"` // replaces the client's address after a page change
}

// ItemsResponse lists the catalog
type ItemsResponse struct {
	Title      string         `json:"title"`
	Items      []gallery.Item `json:"items"`
	TotalCount int            `json:"total_count"`
}

func (h *Handler) listItemsHandler(w http.ResponseWriter, r *http.Request) {
	items := h.catalog.ListAll()
	writeJSON(w, http.StatusOK, ItemsResponse{
		Title:      h.title,
		Items:      items,
		TotalCount: len(items),
	})
}

// viewHandler returns the projection for the state in the query string
func (h *Handler) viewHandler(w http.ResponseWriter, r *http.Request) {
	s, err := h.restore(gallery.StateFromQuery(r.URL.Query()), nil)
	if err != nil {
		http.Error(w, "Failed to build gallery", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s.viewer.Snapshot())
}

// inputHandler applies one event to the posted state
func (h *Handler) inputHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GalleryInput")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxInputBody)

	var req InputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request body")
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.String("gallery.event", req.Event.Type))

	s, err := h.restore(req.State, h.listener(ctx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build viewer")
		h.logger.Error(ctx).Err(err).Msg("Failed to build viewer")
		http.Error(w, "Failed to build gallery", http.StatusInternalServerError)
		return
	}

	handled, swipe, err := applyEvent(s.viewer, req.Event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.logger.Warn(ctx).Str("event", req.Event.Type).Msg("Rejected gallery input")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := InputResponse{
		State:    s.viewer.State(),
		View:     s.viewer.Snapshot(),
		Handled:  handled,
		Scroll:   s.scroll.request,
		Location: s.location(),
	}
	if req.Event.Type == EventSwipe {
		resp.Swipe = swipe.String()
	}

	writeJSON(w, http.StatusOK, resp)
}

// applyEvent routes an event to the matching input adapter
func applyEvent(v *gallery.Viewer, ev InputEvent) (bool, gallery.Swipe, error) {
	switch ev.Type {
	case EventClick:
		return v.Click(ev.Source), gallery.SwipeNone, nil
	case EventOpen:
		return v.OpenByIndex(ev.Index), gallery.SwipeNone, nil
	case EventClose:
		open := v.IsOpen()
		v.CloseButton()
		return open, gallery.SwipeNone, nil
	case EventBackdrop:
		open := v.IsOpen()
		v.Backdrop()
		return open, gallery.SwipeNone, nil
	case EventFrame:
		v.Frame()
		return false, gallery.SwipeNone, nil
	case EventPrev:
		return v.PrevButton(), gallery.SwipeNone, nil
	case EventNext:
		return v.NextButton(), gallery.SwipeNone, nil
	case EventKey:
		return v.Key(ev.Key), gallery.SwipeNone, nil
	case EventSwipe:
		v.TouchStart(ev.Touches...)
		swipe := v.TouchEnd(ev.End)
		return swipe != gallery.SwipeNone, swipe, nil
	case EventLoadMore:
		return v.LoadMore(), gallery.SwipeNone, nil
	case EventObserve:
		return v.Observe(ev.Distance), gallery.SwipeNone, nil
	case EventPage:
		before := v.Page()
		return v.SetPage(ev.Page) != before, gallery.SwipeNone, nil
	case EventPrevPage:
		before := v.Page()
		return v.PrevPage() != before, gallery.SwipeNone, nil
	case EventNextPage:
		before := v.Page()
		return v.NextPage() != before, gallery.SwipeNone, nil
	default:
		return false, gallery.SwipeNone, fmt.Errorf("%w: %q", errUnknownEvent, ev.Type)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // Best effort response
}

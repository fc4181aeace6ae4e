package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"gallery-viewer/internal/gallery"
)

const galleryPath = "/gallery"

type cardView struct {
	gallery.Card
	Href string
}

type modalView struct {
	gallery.Modal
	CloseHref string
	PrevHref  string
	NextHref  string
}

type pageButtonView struct {
	gallery.PageButton
	Href string
}

type pagerView struct {
	gallery.PagerControls
	Buttons  []pageButtonView
	PrevHref string
	NextHref string
}

type loadMoreView struct {
	gallery.LoadMoreState
	Href string
}

type pageData struct {
	Title        string
	Mode         gallery.Mode
	Total        int
	Cards        []cardView
	Modal        modalView
	ScrollLocked bool
	LoadMore     loadMoreView
	Pager        *pagerView
}

// galleryHandler renders the viewer for the state in the query string. Every
// control is a link to the state the matching input would produce.
func (h *Handler) galleryHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RenderGallery")
	defer span.End()

	query := r.URL.Query()
	s, err := h.restore(gallery.StateFromQuery(query), nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build viewer")
		h.logger.Error(ctx).Err(err).Msg("Failed to build viewer")
		http.Error(w, "Failed to build gallery", http.StatusInternalServerError)
		return
	}
	v := s.viewer

	// An out-of-range page is rewritten rather than rendered
	if raw := query.Get(gallery.ParamPage); raw != "" && v.Mode() == gallery.ModePaged {
		if page := gallery.PageFromQuery(query, v.TotalPages()); raw != strconv.Itoa(page) {
			target := gallery.WithPage(r.URL, page)
			h.logger.Debug(ctx).Str("requested", raw).Int("page", page).Msg("Rewriting page parameter")
			http.Redirect(w, r, target.RequestURI(), http.StatusFound)
			return
		}
	}

	span.SetAttributes(
		attribute.String("gallery.mode", string(v.Mode())),
		attribute.Int("gallery.page", v.Page()),
		attribute.Int("gallery.shown", v.Shown()),
		attribute.Bool("gallery.modal_open", v.IsOpen()),
	)

	data := h.buildPage(r.URL, v.Snapshot())

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to render template")
		h.logger.Error(ctx).Err(err).Msg("Failed to render gallery")
		http.Error(w, "Failed to render gallery", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w) //nolint:errcheck // client went away
}

func (h *Handler) buildPage(base *url.URL, view gallery.View) pageData {
	state := view.State
	data := pageData{
		Title:        h.title,
		Mode:         view.Mode,
		Total:        len(view.Cards),
		Cards:        make([]cardView, 0, len(view.Cards)),
		ScrollLocked: view.ScrollLocked,
		Modal:        modalView{Modal: view.Modal},
		LoadMore:     loadMoreView{LoadMoreState: view.LoadMore},
	}

	for _, c := range view.Cards {
		card := cardView{Card: c}
		if !c.Hidden {
			target := state
			target.Open = c.Item.Source
			card.Href = link(base, target, "")
		}
		data.Cards = append(data.Cards, card)
	}

	if view.Modal.Open {
		closed := state
		closed.Open = ""
		data.Modal.CloseHref = link(base, closed, cardAnchor(view.Modal.Item))
		data.Modal.PrevHref = h.transitionLink(base, state, func(v *gallery.Viewer) { v.PrevButton() })
		data.Modal.NextHref = h.transitionLink(base, state, func(v *gallery.Viewer) { v.NextButton() })
	}

	if view.LoadMore.Visible {
		data.LoadMore.Href = h.transitionLink(base, state, func(v *gallery.Viewer) { v.LoadMore() })
	}

	if view.Pager != nil {
		pager := &pagerView{PagerControls: *view.Pager}
		for _, b := range view.Pager.Buttons {
			button := pageButtonView{PageButton: b}
			if !b.Ellipsis && !b.Current {
				page := b.Page
				button.Href = h.transitionLink(base, state, func(v *gallery.Viewer) { v.SetPage(page) })
			}
			pager.Buttons = append(pager.Buttons, button)
		}
		if !view.Pager.PrevDisabled {
			pager.PrevHref = h.transitionLink(base, state, func(v *gallery.Viewer) { v.PrevPage() })
		}
		if !view.Pager.NextDisabled {
			pager.NextHref = h.transitionLink(base, state, func(v *gallery.Viewer) { v.NextPage() })
		}
		data.Pager = pager
	}

	return data
}

// transitionLink links to the state produced by input. A scheduled scroll
// becomes a fragment pointing at the card.
func (h *Handler) transitionLink(base *url.URL, state gallery.State, input func(v *gallery.Viewer)) string {
	next, scroll := h.transition(state, input)
	fragment := ""
	if scroll != nil {
		fragment = cardAnchor(scroll.Index)
	}
	return link(base, next, fragment)
}

func link(base *url.URL, state gallery.State, fragment string) string {
	u := state.URL(&url.URL{Path: galleryPath, RawQuery: base.RawQuery})
	u.Fragment = fragment
	return u.String()
}

func cardAnchor(index int) string {
	if index < 0 {
		return ""
	}
	return fmt.Sprintf("card-%d", index)
}

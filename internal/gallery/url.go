package gallery

import (
	"net/url"
	"strconv"
)

// Query parameter names used to carry viewer state in a URL
const (
	ParamPage  = "page"
	ParamShown = "shown"
	ParamOpen  = "open"
)

// Location receives the current page whenever it changes. Implementations
// rewrite the visible address in place without adding a history entry.
type Location interface {
	Replace(page int)
}

// LocationFunc adapts a function to Location
type LocationFunc func(page int)

func (f LocationFunc) Replace(page int) { f(page) }

// PageFromQuery reads the 1-based page parameter, defaulting to 1 and
// clamping to [1, totalPages]. Unparseable values count as 1.
func PageFromQuery(values url.Values, totalPages int) int {
	page, err := strconv.Atoi(values.Get(ParamPage))
	if err != nil || page < 1 {
		page = 1
	}
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page
}

// WithPage returns a copy of u whose page parameter is set to page. Every
// other parameter and the fragment are kept.
func WithPage(u *url.URL, page int) *url.URL {
	out := *u
	values := out.Query()
	values.Set(ParamPage, strconv.Itoa(page))
	out.RawQuery = values.Encode()
	return &out
}

// State is the serialisable part of a viewer: enough to rebuild it
type State struct {
	Page  int    `json:"page,omitempty"`
	Shown int    `json:"shown,omitempty"`
	Open  string `json:"open,omitempty"`
}

// StateFromQuery decodes viewer state from URL parameters. Missing or
// malformed numbers decode as zero and are clamped by Restore.
func StateFromQuery(values url.Values) State {
	page, _ := strconv.Atoi(values.Get(ParamPage))
	shown, _ := strconv.Atoi(values.Get(ParamShown))
	return State{
		Page:  page,
		Shown: shown,
		Open:  values.Get(ParamOpen),
	}
}

// Apply writes the state into values, removing parameters that are unset
func (s State) Apply(values url.Values) {
	setOrDel := func(key, value string, ok bool) {
		if ok {
			values.Set(key, value)
		} else {
			values.Del(key)
		}
	}
	setOrDel(ParamPage, strconv.Itoa(s.Page), s.Page > 0)
	setOrDel(ParamShown, strconv.Itoa(s.Shown), s.Shown > 0)
	setOrDel(ParamOpen, s.Open, s.Open != "")
}

// URL returns a copy of u carrying the state, keeping unrelated parameters
func (s State) URL(u *url.URL) *url.URL {
	out := *u
	values := out.Query()
	s.Apply(values)
	out.RawQuery = values.Encode()
	return &out
}
